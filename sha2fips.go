// Package sha2fips computes SHA-2 family message digests (FIPS 180-4) over
// in-memory byte inputs. Each of the six variants is a pure function from a
// byte slice to a lowercase hexadecimal digest string; there is no
// incremental/streaming interface and no shared state between calls.
package sha2fips

import (
	"errors"
	"fmt"

	"github.com/coredigest/sha2fips/internal/bits32"
	"github.com/coredigest/sha2fips/internal/bits64"
)

// ErrUnknownVariant is the sentinel cause of the error Sum returns when
// called with a Variant name that doesn't match one of the six known
// variants, mirroring wire/shahash.go's ErrHashStrSize: callers match
// against this value with errors.Is rather than against message text.
var ErrUnknownVariant = errors.New("sha2fips: unknown variant")

// SHA224 returns the 56-character SHA-224 digest of data.
func SHA224(data []byte) string { return bits32.Sum(bits32.SHA224, data) }

// SHA256 returns the 64-character SHA-256 digest of data.
func SHA256(data []byte) string { return bits32.Sum(bits32.SHA256, data) }

// SHA384 returns the 96-character SHA-384 digest of data.
func SHA384(data []byte) string { return bits64.Sum(bits64.SHA384, data) }

// SHA512 returns the 128-character SHA-512 digest of data.
func SHA512(data []byte) string { return bits64.Sum(bits64.SHA512, data) }

// SHA512224 returns the 56-character SHA-512/224 digest of data.
func SHA512224(data []byte) string { return bits64.Sum(bits64.SHA512224, data) }

// SHA512256 returns the 64-character SHA-512/256 digest of data.
func SHA512256(data []byte) string { return bits64.Sum(bits64.SHA512256, data) }

// Variant names one of the six digest algorithms for dynamic dispatch (used
// by the CLI, which selects a variant by flag value rather than at compile
// time).
type Variant string

const (
	VariantSHA224     Variant = "sha224"
	VariantSHA256     Variant = "sha256"
	VariantSHA384     Variant = "sha384"
	VariantSHA512     Variant = "sha512"
	VariantSHA512_224 Variant = "sha512-224"
	VariantSHA512_256 Variant = "sha512-256"
)

// Variants lists every supported Variant, in FIPS 180-4's own ordering of
// the six SHA-2 functions.
var Variants = []Variant{
	VariantSHA224, VariantSHA256, VariantSHA384, VariantSHA512,
	VariantSHA512_224, VariantSHA512_256,
}

// Sum computes the digest named by variant. It returns an error if variant
// is not one of the six known names.
func Sum(variant Variant, data []byte) (string, error) {
	switch variant {
	case VariantSHA224:
		return SHA224(data), nil
	case VariantSHA256:
		return SHA256(data), nil
	case VariantSHA384:
		return SHA384(data), nil
	case VariantSHA512:
		return SHA512(data), nil
	case VariantSHA512_224:
		return SHA512224(data), nil
	case VariantSHA512_256:
		return SHA512256(data), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
}
