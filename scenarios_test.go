package ffdh

import (
	"math/big"
	"testing"
)

// The tests in this file mirror the literal end-to-end scenarios named in
// spec.md §8 (S1-S6), one test per scenario, for direct traceability.

func TestScenarioS1RegistryParity(t *testing.T) {
	if Oakley1().ModulusSize() != 768 {
		t.Fatalf("oakley_1 modulus size = %d, want 768 (see DESIGN.md resolved S1 discrepancy)", Oakley1().ModulusSize())
	}
	if Oakley14().ModulusSize() != 2048 {
		t.Fatalf("oakley_14 modulus size = %d, want 2048", Oakley14().ModulusSize())
	}
	if Oakley18().ModulusSize() != 8192 {
		t.Fatalf("oakley_18 modulus size = %d, want 8192", Oakley18().ModulusSize())
	}
}

func TestScenarioS2DegeneratePeer(t *testing.T) {
	g := FFDHE2048()
	secret, _, err := GenKey(g, NewCryptoRand(), 0)
	if err != nil {
		t.Fatalf("GenKey: %v", err)
	}
	pMinus1 := new(big.Int).Sub(g.p, big.NewInt(1))
	degenerate := [][]byte{
		big.NewInt(1).Bytes(),
		pMinus1.Bytes(),
		g.gg.Bytes(), // encode(2)
		{0},
	}
	for i, peer := range degenerate {
		if _, ok := Shared(g, secret, peer); ok {
			t.Errorf("case %d: expected Shared to reject degenerate peer element", i)
		}
	}
}

func TestScenarioS3KATRoundTrip(t *testing.T) {
	g := Oakley14()
	secretA, pubA, err := KeyOfSecret(g, big.NewInt(2).Bytes())
	if err != nil {
		t.Fatalf("KeyOfSecret(xA=2): %v", err)
	}
	secretB, pubB, err := KeyOfSecret(g, big.NewInt(3).Bytes())
	if err != nil {
		t.Fatalf("KeyOfSecret(xB=3): %v", err)
	}
	if new(big.Int).SetBytes(pubA).Int64() != 4 {
		t.Fatalf("A = 2^2 mod p = %d, want 4", new(big.Int).SetBytes(pubA).Int64())
	}
	if new(big.Int).SetBytes(pubB).Int64() != 8 {
		t.Fatalf("B = 2^3 mod p = %d, want 8", new(big.Int).SetBytes(pubB).Int64())
	}
	kA, ok := Shared(g, secretA, pubB)
	if !ok {
		t.Fatal("shared(G, secretA, B) unexpectedly rejected")
	}
	kB, ok := Shared(g, secretB, pubA)
	if !ok {
		t.Fatal("shared(G, secretB, A) unexpectedly rejected")
	}
	if new(big.Int).SetBytes(kA).Int64() != 64 {
		t.Fatalf("shared secret from A's side = %d, want 64", new(big.Int).SetBytes(kA).Int64())
	}
	if new(big.Int).SetBytes(kB).Int64() != 64 {
		t.Fatalf("shared secret from B's side = %d, want 64", new(big.Int).SetBytes(kB).Int64())
	}
}

func TestScenarioS4InvalidSecret(t *testing.T) {
	g := Oakley14()
	pMinus1 := new(big.Int).Sub(g.p, big.NewInt(1))
	for _, x := range []*big.Int{big.NewInt(0), pMinus1} {
		if _, _, err := KeyOfSecret(g, x.Bytes()); err != ErrInvalidPublicKey {
			t.Errorf("KeyOfSecret(x=%v) = err %v, want ErrInvalidPublicKey", x, err)
		}
	}
}

func TestScenarioS5ExponentCap(t *testing.T) {
	g := RFC5114_1()
	secret, _, err := GenKey(g, NewCryptoRand(), 800)
	if err != nil {
		t.Fatalf("GenKey: %v", err)
	}
	if secret.x.BitLen() > g.q.BitLen() {
		t.Fatalf("secret bit length %d exceeds rfc_5114_1's 160-bit subgroup order", secret.x.BitLen())
	}
}

func TestScenarioS6GroupGeneration(t *testing.T) {
	g, err := GenGroup(NewCryptoRand(), 64)
	if err != nil {
		t.Fatalf("gen_group(rng, 64): %v", err)
	}
	if g.ModulusSize() != 64 && g.ModulusSize() != 65 {
		t.Fatalf("bit_length(p) = %d, want 64 or 65", g.ModulusSize())
	}
	if g.gg.Int64() != 2 {
		t.Fatalf("gg = %d, want 2", g.gg.Int64())
	}
	if new(big.Int).Exp(big.NewInt(2), g.q, g.p).Cmp(big.NewInt(1)) != 0 {
		t.Fatal("2^q mod p != 1")
	}
	wantQ := new(big.Int).Sub(g.p, big.NewInt(1))
	wantQ.Rsh(wantQ, 1)
	if g.q.Cmp(wantQ) != 0 {
		t.Fatal("q != (p-1)/2")
	}

	if _, err := GenGroup(NewCryptoRand(), 7); err == nil {
		t.Fatal("gen_group(rng, 7) should raise invalid-argument")
	}
}
