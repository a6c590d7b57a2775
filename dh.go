// Package ffdh implements finite-field Diffie–Hellman key agreement: group
// generation and validation, short-exponent key derivation, and shared
// secret computation over a prime-order or safe-prime multiplicative group.
//
// The package exposes no process-wide mutable state beyond the lazily
// parsed registry of named groups in the groups_*.go files; every operation here is a
// pure function of its arguments plus the caller-supplied Rand.
package ffdh

import (
	"math/big"

	log "github.com/golang/glog"
)

// Group is an immutable Diffie–Hellman group: a prime modulus p, a
// generator gg in [2, p-2], and an optional subgroup order q with
// gg^q mod p = 1.
//
// A Group is never mutated after construction and is safe to share by
// reference across goroutines.
type Group struct {
	p  *big.Int
	gg *big.Int
	q  *big.Int // nil when no subgroup order is known
}

// ModulusSize returns the bit length of the group's modulus.
func (g *Group) ModulusSize() int {
	return g.p.BitLen()
}

// Secret holds a single DH exponent. Callers must pair it with the Group it
// was generated for; the binding is not enforced structurally.
type Secret struct {
	x *big.Int
}

// Reveal hands fn the big-endian encoding of the secret exponent for the
// duration of the call, then zeroes the buffer it was given. fn must not
// retain the slice past return.
func (s *Secret) Reveal(fn func([]byte)) {
	b := encodeBE(s.x)
	defer zero(b)
	fn(b)
}

// Destroy zeroes the secret's backing limbs in place. Safe to call more than
// once; a destroyed Secret must not be used again.
func (s *Secret) Destroy() {
	if s.x == nil {
		return
	}
	zeroBigInt(s.x)
	s.x = nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// zeroBigInt overwrites a big.Int's internal limb storage. math/big does not
// promise this survives future reallocation (e.g. a subsequent SetBytes that
// grows the slice), which is the limit of "zeroize on drop" achievable
// without a fork of math/big; see DESIGN.md.
func zeroBigInt(x *big.Int) {
	limbs := x.Bits()
	for i := range limbs {
		limbs[i] = 0
	}
	x.SetInt64(0)
}

func encodeBE(x *big.Int) []byte {
	return x.Bytes()
}

func decodeBE(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// badPublicKey implements the §4.1 degenerate-element predicate: y<=1,
// y>=p-1, or y==gg.
func badPublicKey(g *Group, y *big.Int) bool {
	one := big.NewInt(1)
	if y.Cmp(one) <= 0 {
		return true
	}
	pMinus1 := new(big.Int).Sub(g.p, one)
	if y.Cmp(pMinus1) >= 0 {
		return true
	}
	if y.Cmp(g.gg) == 0 {
		log.V(2).Infoln("ffdh: rejecting peer element equal to generator (interop hazard, see DESIGN.md)")
		return true
	}
	return false
}

// ValidatePublicKey decodes peerBytes and applies the §4.1 predicate,
// returning ErrInvalidPublicKey when the element is degenerate. It performs
// no exponentiation; callers that only need the cheap checks (e.g. before
// queueing an expensive Shared call) can use this directly.
func (g *Group) ValidatePublicKey(peerBytes []byte) error {
	y := decodeBE(peerBytes)
	if badPublicKey(g, y) {
		return ErrInvalidPublicKey
	}
	return nil
}

// keyFromExponent computes y = gg^x mod p and reports whether it passed the
// degenerate-element check. It never raises; callers decide whether a
// rejection means "retry" (GenKey) or "fail" (KeyOfSecret).
func keyFromExponent(g *Group, x *big.Int) (y *big.Int, ok bool) {
	y = new(big.Int).Exp(g.gg, x, g.p)
	return y, !badPublicKey(g, y)
}

// KeyOfSecret is the deterministic variant of key derivation: it interprets
// secretBytes as a big-endian exponent and computes the matching public
// element, failing with ErrInvalidPublicKey if that element is degenerate.
func KeyOfSecret(g *Group, secretBytes []byte) (*Secret, []byte, error) {
	x := decodeBE(secretBytes)
	y, ok := keyFromExponent(g, x)
	if !ok {
		return nil, nil, ErrInvalidPublicKey
	}
	return &Secret{x: x}, encodeBE(y), nil
}

// expSizeBits picks the exponent bit length GenKey should draw, capped by
// the group's known subgroup order (or the modulus itself when q is
// absent), per §4.3 step 2.
func expSizeBits(g *Group, bitsHint int) int {
	pBits := g.ModulusSize()
	sBits := bitsHint
	if sBits <= 0 {
		sBits = ExpSize(pBits)
	}
	orderCap := pBits
	if g.q != nil {
		orderCap = g.q.BitLen()
	}
	if sBits > orderCap {
		sBits = orderCap
	}
	return sBits
}

// GenKey draws a fresh short exponent and computes its public element,
// retrying on a degenerate draw. bitsHint <= 0 means "use the recommended
// size for this modulus" (ExpSize); a positive bitsHint is honored but
// silently capped at the group's subgroup-order bit length when q is known
// (see SPEC_FULL.md §4.3's "distribution quirk").
func GenKey(g *Group, rng Rand, bitsHint int) (*Secret, []byte, error) {
	sBits := expSizeBits(g, bitsHint)
	for {
		x, err := rng.GenBits(sBits, true)
		if err != nil {
			return nil, nil, err
		}
		y, ok := keyFromExponent(g, x)
		if !ok {
			log.V(1).Infoln("ffdh: degenerate public element drawn, retrying")
			continue
		}
		return &Secret{x: x}, encodeBE(y), nil
	}
}

// Shared computes the DH shared secret from a local Secret and a peer's
// public element. It returns (nil, false) rather than an error when
// peerBytes decodes to a degenerate element: an adversarial or malformed
// peer contribution is a normal, recoverable protocol outcome, not a bug.
func Shared(g *Group, secret *Secret, peerBytes []byte) ([]byte, bool) {
	y := decodeBE(peerBytes)
	if badPublicKey(g, y) {
		log.V(1).Infoln("ffdh: rejecting degenerate peer public element")
		return nil, false
	}
	k := new(big.Int).Exp(y, secret.x, g.p)
	return encodeBE(k), true
}
