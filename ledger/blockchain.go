package ledger

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"
)

var (
	ErrOutOfMemory     = errors.New("ledger: out of memory")
	ErrEmptyChain      = errors.New("ledger: empty chain")
	ErrIndexOutOfRange = errors.New("ledger: index out of range")
	ErrIntegrity       = errors.New("ledger: integrity check failed")
)

// Blockchain is an append-only sequence of blocks linked by hash. The zero
// value is not usable, use NewBlockchain.
type Blockchain struct {
	mu      sync.RWMutex
	blocks  []Block
	history []byte // concatenated payloads, only kept under Cumulative
	config
}

// NewBlockchain returns an empty chain. The first Append creates the genesis
// block.
func NewBlockchain(opts ...Option) *Blockchain {
	c := defaultConfig()
	for _, opt := range opts {
		c = opt(c)
	}
	return &Blockchain{
		blocks: make([]Block, 0),
		config: c,
	}
}

// Append records payload as a new block at the tail of the chain and returns
// it. The block's PrevHash is the tail's Hash, or GenesisPrevHash when the
// chain is empty. Its Hash is computed under the chain's HashPolicy.
//
// Reading the tail and writing the new block happen under one lock, so
// concurrent writers cannot link two blocks to the same predecessor. On error
// the chain is left unchanged.
func (bc *Blockchain) Append(payload string) (Block, error) {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	if bc.capacity > 0 && len(bc.blocks) >= bc.capacity {
		return Block{}, fmt.Errorf("cannot append block %d: %w", len(bc.blocks), ErrOutOfMemory)
	}

	prevHash := GenesisPrevHash
	if n := len(bc.blocks); n > 0 {
		prevHash = bc.blocks[n-1].Hash
	}

	var history []byte
	effective := []byte(payload)
	if bc.policy == Cumulative {
		history = append(slices.Clip(bc.history), payload...)
		effective = history
	}

	block := Block{
		PrevHash: prevHash,
		Hash:     bc.hash(effective),
		Payload:  payload,
	}

	bc.blocks = append(bc.blocks, block)
	if bc.policy == Cumulative {
		bc.history = history
	}

	bc.logger.Debug("block appended",
		"index", len(bc.blocks)-1,
		"prev_hash", block.PrevHash,
		"hash", block.Hash,
		"policy", bc.policy.String(),
	)
	return block, nil
}

// Len returns the number of blocks in the chain in constant time.
func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return len(bc.blocks)
}

// Policy returns the hash policy the chain was created with.
func (bc *Blockchain) Policy() HashPolicy {
	return bc.policy
}

// All returns the blocks oldest first, paired with their index. Each call
// iterates over the chain as it was when All was called; blocks appended
// afterwards are not visited. The sequence can be ranged over any number of
// times.
func (bc *Blockchain) All() iter.Seq2[int, Block] {
	bc.mu.RLock()
	snapshot := bc.blocks[:len(bc.blocks):len(bc.blocks)]
	bc.mu.RUnlock()

	return func(yield func(int, Block) bool) {
		for i, b := range snapshot {
			if !yield(i, b) {
				return
			}
		}
	}
}

// Blocks returns a copy of the chain, oldest first.
func (bc *Blockchain) Blocks() []Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return slices.Clone(bc.blocks)
}

// Latest returns the most recently appended block.
func (bc *Blockchain) Latest() (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return Block{}, ErrEmptyChain
	}
	return bc.blocks[len(bc.blocks)-1], nil
}

// At returns the block at position index, genesis being 0.
func (bc *Blockchain) At(index int) (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index < 0 || index >= len(bc.blocks) {
		return Block{}, fmt.Errorf("block %d of %d: %w", index, len(bc.blocks), ErrIndexOutOfRange)
	}
	return bc.blocks[index], nil
}

// Verify walks the whole chain and checks the genesis sentinel, every block's
// own hash under the chain's policy, and the linkage of every adjacent pair.
// An empty chain is valid.
func (bc *Blockchain) Verify() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return nil
	}
	if !bc.blocks[0].IsGenesis() {
		return fmt.Errorf("invalid genesis block: prev hash %d: %w", bc.blocks[0].PrevHash, ErrIntegrity)
	}

	var history []byte
	for i, current := range bc.blocks {
		effective := []byte(current.Payload)
		if bc.policy == Cumulative {
			history = append(history, current.Payload...)
			effective = history
		}
		if expected := bc.hash(effective); current.Hash != expected {
			return fmt.Errorf("block %d: invalid hash: expected %d, got %d: %w", i, expected, current.Hash, ErrIntegrity)
		}
		if i == 0 {
			continue
		}
		if previous := bc.blocks[i-1]; current.PrevHash != previous.Hash {
			return fmt.Errorf("block %d: invalid prev hash: expected %d, got %d: %w", i, previous.Hash, current.PrevHash, ErrIntegrity)
		}
	}
	return nil
}

// IsValid reports whether Verify succeeds.
func (bc *Blockchain) IsValid() bool {
	return bc.Verify() == nil
}
