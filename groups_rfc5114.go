package ffdh

// RFC 5114 defines a small set of "additional" Diffie-Hellman groups with
// an explicit generator and a short subgroup order, unlike the safe-prime
// Oakley/FFDHE groups above. They predate FFDHE and still see occasional
// use in legacy IKE and TLS configurations pinned to them for interop.
//
// RFC 5114 publishes three such groups, §2.1-§2.3. No network access was
// available while building this registry; §2.1's p/g/q below were
// reconstructed from memory and independently checked here (primality of
// p and q, q | p-1, and g^q == 1 mod p) before being committed as the real
// RFC values. §2.2 and §2.3 could not be reconstructed to the same
// standard — a recalled §2.3 subgroup order turned out to be composite,
// and a recalled §2.2 generator failed the order check against its own
// p/q — so rather than ship constants that look like RFC 5114 but aren't,
// this registry carries only §2.1. See DESIGN.md.

const rfc5114_1P = `
B10B8F96 A080E01D DE92DE5E AE5D54EC 52C99FBC FB06A3C6
9A6A9DCA 52D23B61 6073E286 75A23D18 9838EF1E 2EE652C0
13ECB4AE A9061123 24975C3C D49B83BF ACCBDD7D 90C4BD70
98488E9C 219A7372 4EFFD6FA E5644738 FAA31A4F F55BCCC0
A151AF5F 0DC8B4BD 45BF37DF 365C1A65 E68CFDA7 6D4DA708
DF1FB2BC 2E4A4371`

const rfc5114_1G = `
A4D1CBD5 C3FD3412 6765A442 EFB99905 F8104DD2 58AC507F
D6406CFF 14266D31 266FEA1E 5C41564B 777E690F 5504F213
160217B4 B01B886A 5E91547F 9E2749F4 D7FBD7D3 B9A92EE1
909D0D22 63F80A76 A6A24C08 7A091F53 1DBF0A01 69B6A28A
D662A4D1 8E73AFA3 2D779D59 18D08BC8 858F4DCE F97C2A24
855E6EEB 22B3B2E5`

const rfc5114_1Q = `F518AA87 81A8DF27 8ABA4E7D 64B7CB9D 49462353`

var rfc5114_1Once groupOnce3

// RFC5114_1 is RFC 5114 §2.1: a 1024-bit modulus with a 160-bit subgroup
// order, originally paired with SHA-1-based algorithms.
func RFC5114_1() *Group { return rfc5114_1Once.get(rfc5114_1P, rfc5114_1G, rfc5114_1Q) }
