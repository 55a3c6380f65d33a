package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coredigest/sha2fips"
	"github.com/coredigest/sha2fips/internal/logging"
	"github.com/coredigest/sha2fips/internal/vectors"
)

// verifyCmd runs the FIPS 180-4 known-answer test vectors: it invokes each
// variant on fixed literal inputs and compares the result against
// hard-coded expected digests, exiting 0 only if every vector matched.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run the FIPS known-answer test vectors against every variant",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		failures := 0
		for _, v := range vectors.KnownAnswer {
			got, err := sha2fips.Sum(v.Variant, v.Input)
			if err != nil || got != v.Want {
				failures++
				logging.CPrint(logging.ERROR, "vector failed", logging.Fields{
					"name": v.Name, "want": v.Want, "got": got, "err": err,
				})
				continue
			}
			logging.CPrint(logging.INFO, "vector passed", logging.Fields{"name": v.Name})
		}

		if failures > 0 {
			fmt.Printf("FAILED: %d of %d vectors mismatched\n", failures, len(vectors.KnownAnswer))
			os.Exit(1)
		}
		fmt.Printf("PASSED: %d vectors\n", len(vectors.KnownAnswer))
	},
}
