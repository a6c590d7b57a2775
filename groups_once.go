package ffdh

import "sync"

// groupOnce lazily parses a single safe-prime group's hex modulus on first
// access and memoizes the result, so package init pays nothing for the
// registry groups a caller never touches.
type groupOnce struct {
	once sync.Once
	g    *Group
}

func (o *groupOnce) get(pHex string) *Group {
	o.once.Do(func() {
		g, err := NewSafePrimeGroup(pHex)
		if err != nil {
			// The hex tables are compiled-in constants; a parse failure
			// here means the registry itself is corrupt, not caller error.
			panic("ffdh: malformed registry constant: " + err.Error())
		}
		o.g = g
	})
	return o.g
}

// groupOnce3 is the three-parameter variant for groups with an explicit
// generator and subgroup order (RFC 5114).
type groupOnce3 struct {
	once sync.Once
	g    *Group
}

func (o *groupOnce3) get(pHex, ggHex, qHex string) *Group {
	o.once.Do(func() {
		g, err := NewGroup(pHex, ggHex, qHex)
		if err != nil {
			panic("ffdh: malformed registry constant: " + err.Error())
		}
		o.g = g
	})
	return o.g
}
