package ffdh

import (
	"math/big"

	log "github.com/golang/glog"
)

// GenGroup produces a fresh safe-prime group with generator 2, retrying the
// underlying safe-prime draw until 2 generates the order-q subgroup (i.e.
// 2^q mod p == 1). bits must be >= 8.
func GenGroup(rng Rand, bits int) (*Group, error) {
	if bits < 8 {
		return nil, ErrInvalidArgument
	}
	two := big.NewInt(2)
	for {
		q, p, err := rng.SafePrime(bits)
		if err != nil {
			return nil, err
		}
		if new(big.Int).Exp(two, q, p).Cmp(big.NewInt(1)) != 0 {
			log.V(1).Infoln("ffdh: safe prime drawn but 2 is not a generator of its subgroup, retrying")
			continue
		}
		return &Group{p: p, gg: two, q: q}, nil
	}
}
