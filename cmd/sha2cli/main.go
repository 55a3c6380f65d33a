// Command sha2cli is the CLI surface for the sha2fips library: it computes
// digests on demand, runs a known-answer test harness, and times one
// invocation per variant. None of this lives in the core packages
// (internal/bits32, internal/bits64) — it only drives them.
package main

import "github.com/coredigest/sha2fips/cmd/sha2cli/cmd"

func main() {
	cmd.Execute()
}
