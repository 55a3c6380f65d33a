// Package bits32 implements the 32-bit SHA-2 pipeline shared by SHA-224 and
// SHA-256: padding, block decode, message schedule, compression, and
// finalization, all parametrized by a Variant so that the two algorithms
// differ only in their IV and output length.
package bits32
