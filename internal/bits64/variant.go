package bits64

// Variant is a plain-value description of a 64-bit SHA-2 algorithm: its
// initial chaining state and the length, in hex characters, of its final
// output. Everything else (block size, round count, round constants) is
// shared by every 64-bit variant and lives in const.go.
type Variant struct {
	Name    string
	IV      [8]uint64
	HexSize int
}

// SHA384, SHA512, SHA512224, and SHA512256 are the four variants of the
// 64-bit pipeline; SHA384, SHA512224, and SHA512256 are truncating variants
// of SHA-512, differing from it only in IV and HexSize.
var (
	SHA384    = Variant{Name: "SHA-384", IV: iv384, HexSize: 96}
	SHA512    = Variant{Name: "SHA-512", IV: iv512, HexSize: 128}
	SHA512224 = Variant{Name: "SHA-512/224", IV: iv512_224, HexSize: 56}
	SHA512256 = Variant{Name: "SHA-512/256", IV: iv512_256, HexSize: 64}
)
