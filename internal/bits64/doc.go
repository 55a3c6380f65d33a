// Package bits64 implements the 64-bit SHA-2 pipeline shared by SHA-384,
// SHA-512, SHA-512/224, and SHA-512/256: padding, block decode, message
// schedule, compression, and finalization, parametrized by a Variant so the
// four algorithms differ only in IV and output length.
package bits64
