package ledger

import (
	"encoding/binary"
	"errors"
	"fmt"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/sign/schnorr"
	"go.dedis.ch/kyber/v4/suites"

	"github.com/luca-patrignani/vote-ledger/hasher"
)

var ErrSealMismatch = errors.New("ledger: seal does not match chain")

// Seal attests that a chain had a given length and tail at signing time.
type Seal struct {
	Length    int           `json:"length"`
	TailHash  hasher.Digest `json:"tail_hash"`
	Signature []byte        `json:"sig"`
}

// serialize returns the signed part of the seal.
func (s Seal) serialize() []byte {
	b := make([]byte, 12)
	binary.BigEndian.PutUint64(b[:8], uint64(s.Length))
	binary.BigEndian.PutUint32(b[8:], uint32(s.TailHash))
	return b
}

// Seal signs the current length and tail hash of the chain with a Schnorr
// signature under priv.
func (bc *Blockchain) Seal(suite suites.Suite, priv kyber.Scalar) (Seal, error) {
	bc.mu.RLock()
	n := len(bc.blocks)
	if n == 0 {
		bc.mu.RUnlock()
		return Seal{}, ErrEmptyChain
	}
	s := Seal{
		Length:   n,
		TailHash: bc.blocks[n-1].Hash,
	}
	bc.mu.RUnlock()

	sig, err := schnorr.Sign(suite, priv, s.serialize())
	if err != nil {
		return Seal{}, fmt.Errorf("failed to sign seal: %w", err)
	}
	s.Signature = sig
	return s, nil
}

// VerifySeal checks the signature on s against pub and that the chain still
// has the sealed length and tail.
func (bc *Blockchain) VerifySeal(suite suites.Suite, pub kyber.Point, s Seal) error {
	if len(s.Signature) == 0 {
		return errors.New("missing signature")
	}
	if err := schnorr.Verify(suite, pub, s.serialize(), s.Signature); err != nil {
		return fmt.Errorf("invalid seal signature: %w", err)
	}

	bc.mu.RLock()
	defer bc.mu.RUnlock()
	if len(bc.blocks) == 0 {
		return ErrEmptyChain
	}
	if len(bc.blocks) != s.Length {
		return fmt.Errorf("length %d, sealed %d: %w", len(bc.blocks), s.Length, ErrSealMismatch)
	}
	if tail := bc.blocks[len(bc.blocks)-1]; tail.Hash != s.TailHash {
		return fmt.Errorf("tail hash %d, sealed %d: %w", tail.Hash, s.TailHash, ErrSealMismatch)
	}
	return nil
}
