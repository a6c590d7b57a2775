package ffdh

// expSizeTable maps a modulus bit-length ceiling to a recommended exponent
// bit length. Scanned in order; the first entry whose bound is >= the
// requested modulus size wins; sizes above the last bound get
// expSizeAboveTable.
var expSizeTable = []struct {
	modulusBitsLE int
	exponentBits  int
}{
	{1024, 180},
	{2048, 225},
	{3072, 275},
	{4096, 325},
	{6144, 375},
	{8192, 400},
}

const expSizeAboveTable = 512

// ExpSize returns the recommended exponent bit length for a modulus of the
// given bit length, per the symmetric-equivalent sizing table.
func ExpSize(modulusBits int) int {
	for _, row := range expSizeTable {
		if modulusBits <= row.modulusBitsLE {
			return row.exponentBits
		}
	}
	return expSizeAboveTable
}
