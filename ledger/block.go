package ledger

import "github.com/luca-patrignani/vote-ledger/hasher"

// GenesisPrevHash is the previous hash recorded in the first block of every
// chain.
const GenesisPrevHash hasher.Digest = 0

// Block is a single record in the chain. Blocks are handed out by value and
// never change once appended.
type Block struct {
	PrevHash hasher.Digest `json:"prev_hash"`
	Hash     hasher.Digest `json:"hash"`
	Payload  string        `json:"payload"` // one cast vote
}

// IsGenesis reports whether b carries the genesis sentinel.
func (b Block) IsGenesis() bool {
	return b.PrevHash == GenesisPrevHash
}

// HashPolicy selects what a block's own hash is computed over.
type HashPolicy int

const (
	// PerBlock hashes only the block's own payload.
	PerBlock HashPolicy = iota
	// Cumulative hashes the concatenation of every payload appended so far,
	// this block's included.
	Cumulative
)

func (p HashPolicy) String() string {
	switch p {
	case PerBlock:
		return "per-block"
	case Cumulative:
		return "cumulative"
	default:
		return "unknown"
	}
}
