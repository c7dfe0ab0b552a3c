package hasher

import "testing"

// TestSumDeterministic verifies that hashing the same input twice yields the
// same digest, including the empty input.
func TestSumDeterministic(t *testing.T) {
	inputs := [][]byte{nil, {}, []byte("GOOD PARTY"), []byte("GOOD PARTYEVIL PARTY")}
	for _, in := range inputs {
		if Sum(in) != Sum(in) {
			t.Fatalf("Sum(%q) is not deterministic", in)
		}
		if Murmur3(in) != Murmur3(in) {
			t.Fatalf("Murmur3(%q) is not deterministic", in)
		}
	}
}

// TestSumEmptyInput pins the digest of the empty input to the seed value.
func TestSumEmptyInput(t *testing.T) {
	if got := Sum(nil); got != 5381 {
		t.Fatalf("expected Sum(nil) = 5381, got %d", got)
	}
	if Sum(nil) != Sum([]byte{}) {
		t.Fatal("nil and empty slice should hash the same")
	}
	if got := Murmur3(nil); got != 0 {
		t.Fatalf("expected Murmur3(nil) = 0, got %d", got)
	}
}

// TestSumKnownValues pins a few short inputs computed by hand.
func TestSumKnownValues(t *testing.T) {
	cases := map[string]Digest{
		"a":  5381*33 + 'a',
		"ab": (5381*33+'a')*33 + 'b',
	}
	for in, want := range cases {
		if got := SumString(in); got != want {
			t.Fatalf("SumString(%q): expected %d, got %d", in, want, got)
		}
	}
}

// TestSumWrapsAround verifies that long inputs overflow silently instead of
// failing.
func TestSumWrapsAround(t *testing.T) {
	long := make([]byte, 1<<16)
	for i := range long {
		long[i] = 0xff
	}
	_ = Sum(long)
}

// TestSumDistinguishesParties checks that the default party labels do not
// collide, which the report relies on to be readable.
func TestSumDistinguishesParties(t *testing.T) {
	seen := map[Digest]string{}
	for _, s := range []string{"GOOD PARTY", "MEDIOCRE PARTY", "EVIL PARTY"} {
		d := SumString(s)
		if other, ok := seen[d]; ok {
			t.Fatalf("%q and %q collide on %d", s, other, d)
		}
		seen[d] = s
	}
}
