package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gotri/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gotri",
	Short: "A CLI tool for constructing, solving and comparing triangles",
	Long: `gotri is a command-line tool for working with labeled triangles in the plane.
It constructs triangles from the classic determination cases (SSS, SAS, ASA,
AAS, HL), resolves side-length constraints while keeping the rest of the
triangle in place, applies plane transformations, and compares triangles
for congruence and similarity.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
