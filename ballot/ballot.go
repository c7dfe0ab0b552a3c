// Package ballot supplies the votes recorded in the ledger: a fixed set of
// parties and a random generator that picks among them.
package ballot

import (
	"encoding/binary"
	"errors"
	"iter"
	"math/big"
	"slices"
	"time"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"

	"github.com/luca-patrignani/vote-ledger/ledger"
)

var ErrNoParties = errors.New("ballot: no parties")

// Party is the label of a vote.
type Party string

const (
	GoodParty     Party = "GOOD PARTY"
	MediocreParty Party = "MEDIOCRE PARTY"
	EvilParty     Party = "EVIL PARTY"
)

// Parties is an immutable, ordered set of parties.
type Parties struct {
	labels []Party
}

// NewParties builds a party set. Duplicate labels are dropped, keeping the
// first occurrence.
func NewParties(labels ...Party) (Parties, error) {
	var unique []Party
	for _, l := range labels {
		if !slices.Contains(unique, l) {
			unique = append(unique, l)
		}
	}
	if len(unique) == 0 {
		return Parties{}, ErrNoParties
	}
	return Parties{labels: unique}, nil
}

func DefaultParties() Parties {
	return Parties{labels: []Party{GoodParty, MediocreParty, EvilParty}}
}

func (ps Parties) Len() int {
	return len(ps.labels)
}

// Labels returns a copy of the labels in order.
func (ps Parties) Labels() []Party {
	return slices.Clone(ps.labels)
}

func (ps Parties) Contains(p Party) bool {
	return slices.Contains(ps.labels, p)
}

var suite suites.Suite = suites.MustFind("Ed25519")

type option func(Generator) Generator

// Generator picks parties uniformly at random from a stream seeded once at
// construction.
type Generator struct {
	parties Parties
	seed    []byte
	stream  kyber.XOF
}

// NewGenerator returns a generator over parties. Without options the seed is
// derived from the current wall-clock time.
func NewGenerator(parties Parties, opts ...option) (*Generator, error) {
	if parties.Len() == 0 {
		return nil, ErrNoParties
	}
	g := Generator{parties: parties}
	g = WithTimeSeed(time.Now())(g)
	for _, opt := range opts {
		g = opt(g)
	}
	g.stream = suite.XOF(g.seed)
	return &g, nil
}

// WithSeed makes the generator reproducible: equal seeds yield equal vote
// sequences.
func WithSeed(seed []byte) option {
	return func(g Generator) Generator {
		g.seed = slices.Clone(seed)
		return g
	}
}

// WithTimeSeed derives the seed from t.
func WithTimeSeed(t time.Time) option {
	seed := make([]byte, 8)
	binary.BigEndian.PutUint64(seed, uint64(t.UnixNano()))
	return WithSeed(seed)
}

// Seed returns the seed the generator was built with.
func (g *Generator) Seed() []byte {
	return slices.Clone(g.seed)
}

// Next returns the next vote.
func (g *Generator) Next() Party {
	n := big.NewInt(int64(g.parties.Len()))
	return g.parties.labels[random.Int(n, g.stream).Int64()]
}

// Count is the number of votes a party received.
type Count struct {
	Party Party
	Votes int
}

// Tally counts the votes in blocks per party, in party order. Payloads that
// do not name a known party are counted under the empty Party, appended
// last, and only when present.
func (ps Parties) Tally(blocks iter.Seq2[int, ledger.Block]) []Count {
	counts := make(map[Party]int, len(ps.labels))
	unknown := 0
	for _, b := range blocks {
		p := Party(b.Payload)
		if ps.Contains(p) {
			counts[p]++
		} else {
			unknown++
		}
	}
	result := make([]Count, 0, len(ps.labels)+1)
	for _, l := range ps.labels {
		result = append(result, Count{Party: l, Votes: counts[l]})
	}
	if unknown > 0 {
		result = append(result, Count{Votes: unknown})
	}
	return result
}
