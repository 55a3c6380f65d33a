package bits32

// Variant is a plain-value description of a 32-bit SHA-2 algorithm: its
// initial chaining state and the length, in hex characters, of its final
// output. Everything else (block size, round count, round constants) is
// shared by every 32-bit variant and lives in const.go.
type Variant struct {
	Name    string
	IV      [8]uint32
	HexSize int
}

// SHA224 and SHA256 are the two variants of the 32-bit pipeline.
var (
	SHA224 = Variant{Name: "SHA-224", IV: iv224, HexSize: 56}
	SHA256 = Variant{Name: "SHA-256", IV: iv256, HexSize: 64}
)
