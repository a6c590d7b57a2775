package ffdh

import (
	"math/big"
	"strings"
)

// stripHexWhitespace removes embedded spaces, tabs, and newlines from a hex
// literal, following the whitespace-tolerant parsing convention the pack's
// own IKE DH code uses (msgboxio-ike's trim, via strings.Map) so the
// registry's hex blocks can be copied verbatim out of their RFCs, line
// wraps and all.
func stripHexWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}

func parseHexInt(hex string) (*big.Int, error) {
	clean := stripHexWhitespace(hex)
	n, ok := new(big.Int).SetString(clean, 16)
	if !ok {
		return nil, exceptionInvalidArgument.Apply("malformed hex literal")
	}
	return n, nil
}

// NewSafePrimeGroup builds a Group from a safe prime's hex modulus alone,
// setting gg=2 and q=(p-1)/2 — the s_group constructor of SPEC_FULL.md §4.6.
func NewSafePrimeGroup(pHex string) (*Group, error) {
	p, err := parseHexInt(pHex)
	if err != nil {
		return nil, err
	}
	q := new(big.Int).Sub(p, big.NewInt(1))
	q.Rsh(q, 1)
	return &Group{p: p, gg: big.NewInt(2), q: q}, nil
}

// NewGroup builds a Group from explicit p, gg, and optional q hex literals
// — the general group constructor of SPEC_FULL.md §4.6. qHex == "" means
// the subgroup order is not asserted.
func NewGroup(pHex, ggHex, qHex string) (*Group, error) {
	p, err := parseHexInt(pHex)
	if err != nil {
		return nil, err
	}
	gg, err := parseHexInt(ggHex)
	if err != nil {
		return nil, err
	}
	var q *big.Int
	if qHex != "" {
		q, err = parseHexInt(qHex)
		if err != nil {
			return nil, err
		}
	}
	return &Group{p: p, gg: gg, q: q}, nil
}
