package ledger

import (
	"io"
	"log/slog"

	"github.com/luca-patrignani/vote-ledger/hasher"
)

type config struct {
	policy   HashPolicy
	hash     hasher.Func
	capacity int
	logger   *slog.Logger
}

func defaultConfig() config {
	return config{
		policy: PerBlock,
		hash:   hasher.Sum,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

type Option func(config) config

// WithHashPolicy fixes the hash policy for the lifetime of the chain.
func WithHashPolicy(policy HashPolicy) Option {
	return func(c config) config {
		c.policy = policy
		return c
	}
}

// WithHasher replaces the default polynomial hasher.
func WithHasher(h hasher.Func) Option {
	return func(c config) config {
		if h != nil {
			c.hash = h
		}
		return c
	}
}

// WithCapacity bounds the number of blocks the chain can hold. Appending past
// the bound fails with ErrOutOfMemory. Zero means unbounded.
func WithCapacity(n int) Option {
	return func(c config) config {
		c.capacity = n
		return c
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c config) config {
		if logger != nil {
			c.logger = logger
		}
		return c
	}
}
