// Package vectors holds the known-answer digests used both by the root
// package's test suite (sha2fips_test.go) and by the "verify" subcommand of
// cmd/sha2cli, so both consumers assert against one source of truth.
package vectors

import "github.com/coredigest/sha2fips"

// Vector is one input/expected-digest pair for a single variant.
type Vector struct {
	Name    string
	Variant sha2fips.Variant
	Input   []byte
	Want    string
}

const (
	twoBlock256 = "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"
	twoBlock512 = "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu"
)

// KnownAnswer is the full FIPS/NIST known-answer test set: the empty
// string, the one-block "abc" message, and the standard two-block boundary
// messages for each word width, run against every variant, plus the classic
// pangram message for SHA-256 only.
var KnownAnswer = []Vector{
	{Name: "empty/sha256", Variant: sha2fips.VariantSHA256, Input: []byte(""),
		Want: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	{Name: "empty/sha224", Variant: sha2fips.VariantSHA224, Input: []byte(""),
		Want: "d14a028c2a3a2bc9476102bb288234c415a2b01f828ea62ac5b3e42f"},
	{Name: "empty/sha512", Variant: sha2fips.VariantSHA512, Input: []byte(""),
		Want: "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"},
	{Name: "empty/sha384", Variant: sha2fips.VariantSHA384, Input: []byte(""),
		Want: "38b060a751ac96384cd9327eb1b1e36a21fdb71114be07434c0cc7bf63f6e1da274edebfe76f65fbd51ad2f14898b95b"},
	{Name: "empty/sha512-224", Variant: sha2fips.VariantSHA512_224, Input: []byte(""),
		Want: "6ed0dd02806fa89e25de060c19d3ac86cabb87d6a0ddd05c333b84f4"},
	{Name: "empty/sha512-256", Variant: sha2fips.VariantSHA512_256, Input: []byte(""),
		Want: "c672b8d1ef56ed28ab87c3622c5114069bdd3ad7b8f9737498d0c01ecef0967a"},

	{Name: "abc/sha256", Variant: sha2fips.VariantSHA256, Input: []byte("abc"),
		Want: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	{Name: "abc/sha224", Variant: sha2fips.VariantSHA224, Input: []byte("abc"),
		Want: "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
	{Name: "abc/sha512", Variant: sha2fips.VariantSHA512, Input: []byte("abc"),
		Want: "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
	{Name: "abc/sha384", Variant: sha2fips.VariantSHA384, Input: []byte("abc"),
		Want: "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"},
	{Name: "abc/sha512-224", Variant: sha2fips.VariantSHA512_224, Input: []byte("abc"),
		Want: "4634270f707b6a54daae7530460842e20e37ed265ceee9a43e8924aa"},
	{Name: "abc/sha512-256", Variant: sha2fips.VariantSHA512_256, Input: []byte("abc"),
		Want: "53048e2681941ef99b2e29b76b4c7dabe4c2d0c634fc6d46e0e2f13107e7af23"},

	{Name: "pangram/sha256", Variant: sha2fips.VariantSHA256, Input: []byte("The quick brown fox jumps over the lazy dog"),
		Want: "d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592"},

	{Name: "two-block/sha256", Variant: sha2fips.VariantSHA256, Input: []byte(twoBlock256),
		Want: "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"},
	{Name: "two-block/sha224", Variant: sha2fips.VariantSHA224, Input: []byte(twoBlock256),
		Want: "75388b16512776cc5dba5da1fd890150b0c6455cb4f58b1952522525"},
	{Name: "two-block/sha512", Variant: sha2fips.VariantSHA512, Input: []byte(twoBlock512),
		Want: "8e959b75dae313da8cf4f72814fc143f8f7779c6eb9f7fa17299aeadb6889018501d289e4900f7e4331b99dec4b5433ac7d329eeb6dd26545e96e55b874be909"},
	{Name: "two-block/sha384", Variant: sha2fips.VariantSHA384, Input: []byte(twoBlock512),
		Want: "09330c33f71147e83d192fc782cd1b4753111b173b3b05d22fa08086e3b0f712fcc7c71a557e2db966c3e9fa91746039"},
	{Name: "two-block/sha512-224", Variant: sha2fips.VariantSHA512_224, Input: []byte(twoBlock512),
		Want: "23fec5bb94d60b23308192640b0c453335d664734fe40e7268674af9"},
	{Name: "two-block/sha512-256", Variant: sha2fips.VariantSHA512_256, Input: []byte(twoBlock512),
		Want: "3928e184fb8690f840da3988121d31be65cb9d3ef83ee6146feac861e19b563a"},
}
