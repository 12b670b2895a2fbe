package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gotri/pkg/triangle"
	"github.com/spf13/cobra"
)

var (
	sidesSSS  string
	sidesName string
	sidesSet  []string
)

var sidesCmd = &cobra.Command{
	Use:   "sides",
	Short: "Resolve side-length constraints on a triangle",
	Long: `Assign new lengths to one, two or three sides of a triangle while the
rest of the triangle stays in place. Sides are named by their endpoints
(AB) or by the lowercase name of the opposite vertex (c). The starting
triangle comes from --sss or falls back to the default placement.`,
	Args: cobra.NoArgs,
	Run:  runSides,
}

func init() {
	rootCmd.AddCommand(sidesCmd)

	sidesCmd.Flags().StringVar(&sidesSSS, "sss", "", "Starting side lengths as a,b,c")
	sidesCmd.Flags().StringVar(&sidesName, "name", "ABC", "Vertex names for the triangle")
	sidesCmd.Flags().StringArrayVar(&sidesSet, "set", nil, "Side constraint as side=length (repeatable)")
}

func parseConstraint(s string) (string, float64, error) {
	token, value, found := strings.Cut(s, "=")
	if !found {
		return "", 0, fmt.Errorf("expected side=length, got %q", s)
	}
	length, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return "", 0, err
	}
	return strings.TrimSpace(token), length, nil
}

func runSides(cmd *cobra.Command, args []string) {
	if len(sidesSet) == 0 {
		fmt.Fprintf(os.Stderr, "Error: at least one --set constraint is required\n")
		os.Exit(1)
	}

	tri := baseTriangle(sidesSSS, sidesName)

	changes := map[string]float64{}
	for _, constraint := range sidesSet {
		token, length, err := parseConstraint(constraint)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing constraint: %v\n", err)
			os.Exit(1)
		}
		if prev, ok := changes[token]; ok && prev != length {
			fmt.Fprintf(os.Stderr, "Error: conflicting lengths %g and %g for side %s\n", prev, length, token)
			os.Exit(1)
		}
		changes[token] = length
	}

	before := tri.VertexSet()
	if err := tri.SetSideLengths(changes); err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving constraints: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Constraint Resolution")
	fmt.Println("=====================")
	printVertices("\nBefore:", before)
	printSideLine(before)
	printVertices("\nAfter:", tri.VertexSet())
	printSideLine(tri.VertexSet())
	printSummary(tri.VertexSet())
}

func printSideLine(vs triangle.VertexSet) {
	s := vs.SideLengths()
	fmt.Printf("  sides: %s=%.6f %s=%.6f %s=%.6f\n", vs.SideName(0), s[0], vs.SideName(1), s[1], vs.SideName(2), s[2])
}
