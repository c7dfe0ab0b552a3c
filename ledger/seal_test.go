package ledger

import (
	"errors"
	"testing"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/suites"
)

var testSuite = suites.MustFind("Ed25519")

func newKeyPair() (kyber.Scalar, kyber.Point) {
	priv := testSuite.Scalar().Pick(testSuite.RandomStream())
	return priv, testSuite.Point().Mul(priv, nil)
}

// TestSealRoundTrip verifies that a seal produced over a chain verifies
// against the same chain and key.
func TestSealRoundTrip(t *testing.T) {
	bc := NewBlockchain()
	appendAll(t, bc, "GOOD PARTY", "EVIL PARTY")
	priv, pub := newKeyPair()

	seal, err := bc.Seal(testSuite, priv)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	if seal.Length != 2 {
		t.Fatalf("expected sealed length 2, got %d", seal.Length)
	}
	if err := bc.VerifySeal(testSuite, pub, seal); err != nil {
		t.Fatalf("VerifySeal failed: %v", err)
	}
}

// TestSealEmptyChain verifies that an empty chain cannot be sealed.
func TestSealEmptyChain(t *testing.T) {
	priv, _ := newKeyPair()
	if _, err := NewBlockchain().Seal(testSuite, priv); !errors.Is(err, ErrEmptyChain) {
		t.Fatalf("expected ErrEmptyChain, got %v", err)
	}
}

// TestSealStaleAfterAppend verifies that appending after sealing makes the
// seal fail to match.
func TestSealStaleAfterAppend(t *testing.T) {
	bc := NewBlockchain()
	appendAll(t, bc, "GOOD PARTY")
	priv, pub := newKeyPair()

	seal, err := bc.Seal(testSuite, priv)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	appendAll(t, bc, "EVIL PARTY")

	if err := bc.VerifySeal(testSuite, pub, seal); !errors.Is(err, ErrSealMismatch) {
		t.Fatalf("expected ErrSealMismatch, got %v", err)
	}
}

// TestSealWrongKey verifies that a seal does not verify under another key.
func TestSealWrongKey(t *testing.T) {
	bc := NewBlockchain()
	appendAll(t, bc, "GOOD PARTY")
	priv, _ := newKeyPair()
	_, otherPub := newKeyPair()

	seal, err := bc.Seal(testSuite, priv)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	if err := bc.VerifySeal(testSuite, otherPub, seal); err == nil {
		t.Fatal("seal should not verify under a different key")
	}
}

// TestSealTampered verifies that editing the sealed fields invalidates the
// signature.
func TestSealTampered(t *testing.T) {
	bc := NewBlockchain()
	appendAll(t, bc, "GOOD PARTY", "EVIL PARTY")
	priv, pub := newKeyPair()

	seal, err := bc.Seal(testSuite, priv)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	seal.TailHash++
	if err := bc.VerifySeal(testSuite, pub, seal); err == nil {
		t.Fatal("tampered seal should not verify")
	}

	seal.Signature = nil
	if err := bc.VerifySeal(testSuite, pub, seal); err == nil {
		t.Fatal("seal without signature should not verify")
	}
}
