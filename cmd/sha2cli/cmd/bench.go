package cmd

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/coredigest/sha2fips"
	"github.com/coredigest/sha2fips/internal/logging"
)

var (
	flagBenchSize    int
	flagBenchVariant string
)

// benchCmd measures wall-clock elapsed time around one invocation per
// variant (or a single named variant, via --variant) on a fixed-size input
// and prints the digest alongside the elapsed time.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time one invocation of every variant (or one named variant) over a random fixed-size input",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		data := make([]byte, flagBenchSize)
		if _, err := rand.Read(data); err != nil {
			logging.CPrint(logging.FATAL, "failed to generate bench input", logging.Fields{"err": err})
		}

		variants := sha2fips.Variants
		if flagBenchVariant != "" {
			variants = []sha2fips.Variant{sha2fips.Variant(flagBenchVariant)}
		}

		for _, variant := range variants {
			start := time.Now()
			digest, err := sha2fips.Sum(variant, data)
			elapsed := time.Since(start)
			if err != nil {
				logging.CPrint(logging.FATAL, "bench invocation failed", logging.Fields{"variant": variant, "err": err})
			}
			fmt.Printf("%-12s %s  %v\n", variant, digest, elapsed)
			logging.CPrint(logging.INFO, "bench invocation", logging.Fields{
				"variant": variant, "elapsed_ns": elapsed.Nanoseconds(), "size": flagBenchSize,
			})
		}
	},
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchSize, "size", 1<<20, "size in bytes of the random input to hash")
	benchCmd.Flags().StringVar(&flagBenchVariant, "variant", "", "digest variant to benchmark (default: all variants)")
}
