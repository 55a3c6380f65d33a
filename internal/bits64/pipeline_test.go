package bits64

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumKnownAnswer(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		input   string
		want    string
	}{
		{"sha512/empty", SHA512, "", "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"},
		{"sha384/empty", SHA384, "", "38b060a751ac96384cd9327eb1b1e36a21fdb71114be07434c0cc7bf63f6e1da274edebfe76f65fbd51ad2f14898b95b"},
		{"sha512-224/empty", SHA512224, "", "6ed0dd02806fa89e25de060c19d3ac86cabb87d6a0ddd05c333b84f4"},
		{"sha512-256/empty", SHA512256, "", "c672b8d1ef56ed28ab87c3622c5114069bdd3ad7b8f9737498d0c01ecef0967a"},
		{"sha512/abc", SHA512, "abc", "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
		{"sha384/abc", SHA384, "abc", "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"},
		{"sha512-224/abc", SHA512224, "abc", "4634270f707b6a54daae7530460842e20e37ed265ceee9a43e8924aa"},
		{"sha512-256/abc", SHA512256, "abc", "53048e2681941ef99b2e29b76b4c7dabe4c2d0c634fc6d46e0e2f13107e7af23"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sum(tt.variant, []byte(tt.input))
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, tt.variant.HexSize)
		})
	}
}

func TestSumTwoBlockBoundary(t *testing.T) {
	msg := "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu"
	got := Sum(SHA512, []byte(msg))
	assert.Equal(t, "8e959b75dae313da8cf4f72814fc143f8f7779c6eb9f7fa17299aeadb6889018501d289e4900f7e4331b99dec4b5433ac7d329eeb6dd26545e96e55b874be909", got)
}

func TestSumTruncationConsistency(t *testing.T) {
	input := []byte("truncation consistency probe")
	full := Sum(SHA512224, input)

	untruncated := Sum(Variant{Name: "trunc", IV: SHA512224.IV, HexSize: SHA512.HexSize}, input)
	assert.Equal(t, full, untruncated[:SHA512224.HexSize])
}

func TestPadLengthLaw(t *testing.T) {
	for _, n := range []int{0, 1, 111, 112, 127, 128, 129, 256, 2000} {
		input := make([]byte, n)
		p := pad(input)
		assert.Equal(t, 0, len(p)%blockSize)
		diff := len(p) - n
		assert.GreaterOrEqual(t, diff, 1+16)
		assert.LessOrEqual(t, diff, blockSize+16)
	}
}

func TestSumDeterministic(t *testing.T) {
	input := []byte("same input, same output")
	assert.Equal(t, Sum(SHA512, input), Sum(SHA512, input))
}
