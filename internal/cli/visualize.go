package cli

import (
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/cruxvision/holdscan/internal/detection"
	"github.com/cruxvision/holdscan/internal/render"
)

var visualizeOpts struct {
	input   string
	output  string
	color   string
	overlay bool
	minArea int
}

var visualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Detect holds and write a visualization PNG",
	RunE:  runVisualize,
}

func init() {
	visualizeCmd.Flags().StringVarP(&visualizeOpts.input, "input", "i", "", "Path to wall photo")
	visualizeCmd.Flags().StringVarP(&visualizeOpts.output, "output", "o", "holds.png", "Path to write the visualization PNG")
	visualizeCmd.Flags().StringVarP(&visualizeOpts.color, "color", "c", "", "Hold color to visualize (all colors when omitted)")
	visualizeCmd.Flags().BoolVar(&visualizeOpts.overlay, "overlay", false, "Draw holds over the original photo instead of a black canvas")
	visualizeCmd.Flags().IntVar(&visualizeOpts.minArea, "min-area", detection.DefaultMinArea, "Minimum hold bounding-box area in pixels")
	visualizeCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(visualizeCmd)
}

func runVisualize(cmd *cobra.Command, args []string) error {
	img, err := imaging.Open(visualizeOpts.input)
	if err != nil {
		return fmt.Errorf("open %s: %w", visualizeOpts.input, err)
	}

	var holdsByColor map[string][]detection.Hold
	if visualizeOpts.color == "" {
		routes, err := detection.IdentifyAll(img, visualizeOpts.minArea)
		if err != nil {
			return err
		}
		holdsByColor = routes
	} else {
		c, err := detection.ParseColor(visualizeOpts.color)
		if err != nil {
			return err
		}
		result, err := detection.Identify(img, c, visualizeOpts.minArea)
		if err != nil {
			return err
		}
		holdsByColor = map[string][]detection.Hold{result.Color: result.Holds}
	}

	encoded, err := render.Holds(img, holdsByColor, visualizeOpts.overlay)
	if err != nil {
		return err
	}

	if err := os.WriteFile(visualizeOpts.output, encoded, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", visualizeOpts.output, err)
	}

	fmt.Fprintf(os.Stderr, "wrote %s\n", visualizeOpts.output)
	return nil
}
