package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gotri/pkg/triangle"
	"github.com/spf13/cobra"
)

var (
	newName string
	sssName string
	sasName string
	asaName string
	aasName string
	hlName  string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a triangle with the default placement",
	Long:  "Create an equilateral triangle with the default side length and report its measurements.",
	Args:  cobra.NoArgs,
	Run:   runNew,
}

var sssCmd = &cobra.Command{
	Use:   "sss [a] [b] [c]",
	Short: "Construct a triangle from three side lengths",
	Long: `Construct a triangle from its three side lengths (SSS). Side a is
opposite the first vertex, b the second, and c the third.`,
	Args: cobra.ExactArgs(3),
	Run:  runSSS,
}

var sasCmd = &cobra.Command{
	Use:   "sas [b] [angle] [c]",
	Short: "Construct a triangle from two sides and the included angle",
	Long: `Construct a triangle from two sides and the included angle (SAS).
The angle in degrees sits at the first vertex, between sides b and c.`,
	Args: cobra.ExactArgs(3),
	Run:  runSAS,
}

var asaCmd = &cobra.Command{
	Use:   "asa [angleB] [a] [angleC]",
	Short: "Construct a triangle from two angles and the side between them",
	Long: `Construct a triangle from two angles and the included side (ASA).
The angles in degrees sit at the second and third vertices, joined by side a.`,
	Args: cobra.ExactArgs(3),
	Run:  runASA,
}

var aasCmd = &cobra.Command{
	Use:   "aas [angleA] [angleB] [a]",
	Short: "Construct a triangle from two angles and a non-included side",
	Long: `Construct a triangle from two angles and the side opposite the first
of them (AAS). The angles in degrees sit at the first and second vertices.`,
	Args: cobra.ExactArgs(3),
	Run:  runAAS,
}

var hlCmd = &cobra.Command{
	Use:   "hl [hypotenuse] [leg]",
	Short: "Construct a right triangle from its hypotenuse and one leg",
	Long: `Construct a right triangle from the hypotenuse and one leg (HL).
The right angle sits at the second vertex.`,
	Args: cobra.ExactArgs(2),
	Run:  runHL,
}

func init() {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(sssCmd)
	rootCmd.AddCommand(sasCmd)
	rootCmd.AddCommand(asaCmd)
	rootCmd.AddCommand(aasCmd)
	rootCmd.AddCommand(hlCmd)

	newCmd.Flags().StringVar(&newName, "name", "ABC", "Vertex names for the triangle")
	sssCmd.Flags().StringVar(&sssName, "name", "ABC", "Vertex names for the triangle")
	sasCmd.Flags().StringVar(&sasName, "name", "ABC", "Vertex names for the triangle")
	asaCmd.Flags().StringVar(&asaName, "name", "ABC", "Vertex names for the triangle")
	aasCmd.Flags().StringVar(&aasName, "name", "ABC", "Vertex names for the triangle")
	hlCmd.Flags().StringVar(&hlName, "name", "ABC", "Vertex names for the triangle")
}

func runNew(cmd *cobra.Command, args []string) {
	tri, err := triangle.New(newName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating triangle: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Default Triangle")
	fmt.Println("================")
	printSummary(tri.VertexSet())
}

func runSSS(cmd *cobra.Command, args []string) {
	a := parseFloatArg("side a", args[0])
	b := parseFloatArg("side b", args[1])
	c := parseFloatArg("side c", args[2])

	tri, err := triangle.FromSSS(a, b, c, sssName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error constructing triangle: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Triangle from Three Sides (SSS)")
	fmt.Println("===============================")
	printSummary(tri.VertexSet())
}

func runSAS(cmd *cobra.Command, args []string) {
	b := parseFloatArg("side b", args[0])
	angle := parseFloatArg("angle", args[1])
	c := parseFloatArg("side c", args[2])

	tri, err := triangle.FromSAS(b, angle, c, sasName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error constructing triangle: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Triangle from Side-Angle-Side (SAS)")
	fmt.Println("===================================")
	printSummary(tri.VertexSet())
}

func runASA(cmd *cobra.Command, args []string) {
	angleB := parseFloatArg("angle B", args[0])
	a := parseFloatArg("side a", args[1])
	angleC := parseFloatArg("angle C", args[2])

	tri, err := triangle.FromASA(angleB, a, angleC, asaName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error constructing triangle: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Triangle from Angle-Side-Angle (ASA)")
	fmt.Println("====================================")
	printSummary(tri.VertexSet())
}

func runAAS(cmd *cobra.Command, args []string) {
	angleA := parseFloatArg("angle A", args[0])
	angleB := parseFloatArg("angle B", args[1])
	a := parseFloatArg("side a", args[2])

	tri, err := triangle.FromAAS(angleA, angleB, a, aasName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error constructing triangle: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Triangle from Angle-Angle-Side (AAS)")
	fmt.Println("====================================")
	printSummary(tri.VertexSet())
}

func runHL(cmd *cobra.Command, args []string) {
	hypotenuse := parseFloatArg("hypotenuse", args[0])
	leg := parseFloatArg("leg", args[1])

	tri, err := triangle.FromHL(hypotenuse, leg, hlName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error constructing triangle: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Right Triangle from Hypotenuse-Leg (HL)")
	fmt.Println("=======================================")
	printSummary(tri.VertexSet())
}
