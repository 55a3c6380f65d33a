package sha2fips_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coredigest/sha2fips"
	"github.com/coredigest/sha2fips/internal/vectors"
)

func TestKnownAnswerVectors(t *testing.T) {
	for _, v := range vectors.KnownAnswer {
		t.Run(v.Name, func(t *testing.T) {
			got, err := sha2fips.Sum(v.Variant, v.Input)
			require.NoError(t, err)
			assert.Equal(t, v.Want, got)
		})
	}
}

func TestDirectFunctions(t *testing.T) {
	assert.Equal(t, sha2fips.SHA256([]byte("abc")), "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
	assert.Equal(t, sha2fips.SHA224([]byte("abc")), "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7")
	assert.Equal(t, sha2fips.SHA512([]byte("abc")), "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f")
	assert.Equal(t, sha2fips.SHA384([]byte("abc")), "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7")
	assert.Equal(t, sha2fips.SHA512224([]byte("abc")), "4634270f707b6a54daae7530460842e20e37ed265ceee9a43e8924aa")
	assert.Equal(t, sha2fips.SHA512256([]byte("abc")), "53048e2681941ef99b2e29b76b4c7dabe4c2d0c634fc6d46e0e2f13107e7af23")
}

func TestOutputShape(t *testing.T) {
	fns := map[sha2fips.Variant]func([]byte) string{
		sha2fips.VariantSHA224:     sha2fips.SHA224,
		sha2fips.VariantSHA256:     sha2fips.SHA256,
		sha2fips.VariantSHA384:     sha2fips.SHA384,
		sha2fips.VariantSHA512:     sha2fips.SHA512,
		sha2fips.VariantSHA512_224: sha2fips.SHA512224,
		sha2fips.VariantSHA512_256: sha2fips.SHA512256,
	}
	for _, variant := range sha2fips.Variants {
		got := fns[variant]([]byte("shape probe"))
		for _, c := range got {
			assert.True(t, (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f'))
		}
	}
}

// TestSensitivity checks that all six variants produce distinct outputs
// across a bounded sample of single-byte inputs.
func TestSensitivity(t *testing.T) {
	seen := map[sha2fips.Variant]map[string]bool{}
	for _, variant := range sha2fips.Variants {
		seen[variant] = map[string]bool{}
	}
	for b := 0; b < 256; b++ {
		input := []byte{byte(b)}
		for _, variant := range sha2fips.Variants {
			digest, err := sha2fips.Sum(variant, input)
			require.NoError(t, err)
			require.False(t, seen[variant][digest], "collision for variant %s at byte %d", variant, b)
			seen[variant][digest] = true
		}
	}
}

func TestUnknownVariant(t *testing.T) {
	_, err := sha2fips.Sum("md5", []byte("x"))
	assert.True(t, errors.Is(err, sha2fips.ErrUnknownVariant))
}

func TestEmptyInput(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", sha2fips.SHA256(nil))
}
