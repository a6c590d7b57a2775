package ffdh

import "github.com/spance/ffdh/exception"

var (
	// ErrInvalidPublicKey is returned by KeyOfSecret when the derived
	// public element is degenerate per the bad-public-key predicate. It
	// signals a pathological secret/group pairing, not an adversarial
	// peer; GenKey absorbs the equivalent internal failure by retrying
	// and never surfaces it.
	ErrInvalidPublicKey = exception.New("ffdh: invalid public key")

	// exceptionInvalidArgument backs ErrInvalidArgument and is also used
	// internally by CryptoRand for malformed bit-length requests.
	exceptionInvalidArgument = exception.New("ffdh: invalid argument")

	// ErrInvalidArgument is returned by GenGroup when bits < 8.
	ErrInvalidArgument = exceptionInvalidArgument
)
