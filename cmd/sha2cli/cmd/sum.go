package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/coredigest/sha2fips"
	"github.com/coredigest/sha2fips/internal/logging"
)

var (
	flagVariant string
	flagHex     bool
)

// Sentinel errors for this command's own failure modes, mirroring
// database/memdb/errors.go: readInput's callers can errors.Is against
// these instead of matching on message text.
var (
	ErrReadInput       = errors.New("sha2cli: failed to read input")
	ErrInvalidHexInput = errors.New("sha2cli: input is not valid hex")
)

// sumCmd is a CLI surface over the library's one function per variant:
// read one input, print its digest.
var sumCmd = &cobra.Command{
	Use:   "sum [input|-]",
	Short: "Compute the digest of an input under one SHA-2 variant",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := readInput(args)
		if err != nil {
			logging.CPrint(logging.FATAL, "failed to read input", logging.Fields{"err": err})
		}

		digest, err := sha2fips.Sum(sha2fips.Variant(flagVariant), data)
		if err != nil {
			logging.CPrint(logging.FATAL, "unknown variant", logging.Fields{"variant": flagVariant, "err": err})
		}

		fmt.Println(digest)
	},
}

func init() {
	sumCmd.Flags().StringVar(&flagVariant, "variant", string(sha2fips.VariantSHA256), "digest variant (sha224, sha256, sha384, sha512, sha512-224, sha512-256)")
	sumCmd.Flags().BoolVar(&flagHex, "hex", false, "treat input as a hex-encoded byte string instead of literal text")
}

func readInput(args []string) ([]byte, error) {
	var raw []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw = []byte(args[0])
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, pkgerrors.Wrap(err, "read input"))
	}
	if !flagHex {
		return raw, nil
	}
	decoded, err := hex.DecodeString(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHexInput, pkgerrors.Wrap(err, "decode hex input"))
	}
	return decoded, nil
}
