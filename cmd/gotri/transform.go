package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	transformSSS       string
	transformName      string
	transformTranslate string
	transformMove      string
	transformRotate    float64
	transformScale     float64
	transformReflect   string
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Apply plane transformations to a triangle",
	Long: `Apply translations, rotations, scaling and reflections to a triangle.
Transformations run in a fixed order: translate, move, rotate, scale,
reflect. The starting triangle comes from --sss or falls back to the
default placement.`,
	Args: cobra.NoArgs,
	Run:  runTransform,
}

func init() {
	rootCmd.AddCommand(transformCmd)

	transformCmd.Flags().StringVar(&transformSSS, "sss", "", "Starting side lengths as a,b,c")
	transformCmd.Flags().StringVar(&transformName, "name", "ABC", "Vertex names for the triangle")
	transformCmd.Flags().StringVar(&transformTranslate, "translate", "", "Offsets as dx,dy")
	transformCmd.Flags().StringVar(&transformMove, "move", "", "Single vertex offset as name:dx,dy")
	transformCmd.Flags().Float64Var(&transformRotate, "rotate", 0.0, "Clockwise rotation about the centroid in degrees")
	transformCmd.Flags().Float64Var(&transformScale, "scale", 1.0, "Scale factor about the centroid")
	transformCmd.Flags().StringVar(&transformReflect, "reflect", "", "Mirror line as a,b,c for ax+by+c=0")
}

func runTransform(cmd *cobra.Command, args []string) {
	tri := baseTriangle(transformSSS, transformName)

	fmt.Println("Triangle Transformation")
	fmt.Println("=======================")
	printVertices("\nBefore:", tri.VertexSet())

	if transformTranslate != "" {
		dx, dy, err := parsePair(transformTranslate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing translation: %v\n", err)
			os.Exit(1)
		}
		tri.Translate(dx, dy)
	}

	if transformMove != "" {
		name, offsets, found := strings.Cut(transformMove, ":")
		if !found {
			fmt.Fprintf(os.Stderr, "Error: expected name:dx,dy, got %q\n", transformMove)
			os.Exit(1)
		}
		dx, dy, err := parsePair(offsets)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing move: %v\n", err)
			os.Exit(1)
		}
		if err := tri.TranslatePoint(strings.TrimSpace(name), dx, dy); err != nil {
			fmt.Fprintf(os.Stderr, "Error moving vertex: %v\n", err)
			os.Exit(1)
		}
	}

	if cmd.Flags().Changed("rotate") {
		tri.Rotate(transformRotate)
	}

	if cmd.Flags().Changed("scale") {
		tri.Scale(transformScale)
	}

	if transformReflect != "" {
		a, b, c, err := parseTriple(transformReflect)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing mirror line: %v\n", err)
			os.Exit(1)
		}
		if err := tri.Reflect(geometry.NewLine(a, b, c)); err != nil {
			fmt.Fprintf(os.Stderr, "Error reflecting: %v\n", err)
			os.Exit(1)
		}
	}

	printVertices("\nAfter:", tri.VertexSet())
	printSummary(tri.VertexSet())
}
