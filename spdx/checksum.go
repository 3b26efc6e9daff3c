package spdx

import (
	"strings"

	"github.com/doubleopen-project/spdx-go/errors"
)

// Algorithm is a checksum algorithm accepted in package and file
// checksums. The values match the SPDX wire format.
type Algorithm string

const (
	SHA1       Algorithm = "SHA1"
	SHA224     Algorithm = "SHA224"
	SHA256     Algorithm = "SHA256"
	SHA384     Algorithm = "SHA384"
	SHA512     Algorithm = "SHA512"
	MD2        Algorithm = "MD2"
	MD4        Algorithm = "MD4"
	MD5        Algorithm = "MD5"
	MD6        Algorithm = "MD6"
	SHA3_256   Algorithm = "SHA3-256"
	SHA3_384   Algorithm = "SHA3-384"
	SHA3_512   Algorithm = "SHA3-512"
	BLAKE2b256 Algorithm = "BLAKE2b-256"
	BLAKE2b384 Algorithm = "BLAKE2b-384"
	BLAKE2b512 Algorithm = "BLAKE2b-512"
	BLAKE3     Algorithm = "BLAKE3"
	ADLER32    Algorithm = "ADLER32"
)

// algorithms is the authoritative token set for checksum algorithms.
var algorithms = map[string]Algorithm{
	"SHA1":        SHA1,
	"SHA224":      SHA224,
	"SHA256":      SHA256,
	"SHA384":      SHA384,
	"SHA512":      SHA512,
	"MD2":         MD2,
	"MD4":         MD4,
	"MD5":         MD5,
	"MD6":         MD6,
	"SHA3-256":    SHA3_256,
	"SHA3-384":    SHA3_384,
	"SHA3-512":    SHA3_512,
	"BLAKE2b-256": BLAKE2b256,
	"BLAKE2b-384": BLAKE2b384,
	"BLAKE2b-512": BLAKE2b512,
	"BLAKE3":      BLAKE3,
	"ADLER32":     ADLER32,
}

// ParseAlgorithm matches a checksum algorithm token against the fixed
// token set.
func ParseAlgorithm(s string) (Algorithm, error) {
	if algorithm, ok := algorithms[s]; ok {
		return algorithm, nil
	}
	return "", errors.Wrapf(errors.ErrInvalidInput, "unknown checksum algorithm %q", s)
}

// Checksum is a package or file checksum. SHA1 is mandatory per the SPDX
// specification but this is not enforced here.
type Checksum struct {
	Algorithm Algorithm `json:"algorithm" yaml:"algorithm"`
	Value     string    `json:"checksumValue" yaml:"checksumValue"`
}

// NewChecksum creates a checksum, normalizing the value to lower case.
func NewChecksum(algorithm Algorithm, value string) Checksum {
	return Checksum{
		Algorithm: algorithm,
		Value:     strings.ToLower(value),
	}
}
