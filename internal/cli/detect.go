package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/cruxvision/holdscan/internal/detection"
)

var detectOpts struct {
	input   string
	color   string
	minArea int
}

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect holds in a wall photo and print them as JSON",
	RunE:  runDetect,
}

func init() {
	detectCmd.Flags().StringVarP(&detectOpts.input, "input", "i", "", "Path to wall photo")
	detectCmd.Flags().StringVarP(&detectOpts.color, "color", "c", "", "Hold color to detect (all colors when omitted)")
	detectCmd.Flags().IntVar(&detectOpts.minArea, "min-area", detection.DefaultMinArea, "Minimum hold bounding-box area in pixels")
	detectCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	img, err := imaging.Open(detectOpts.input)
	if err != nil {
		return fmt.Errorf("open %s: %w", detectOpts.input, err)
	}

	var out interface{}
	if detectOpts.color == "" {
		out, err = detection.IdentifyAll(img, detectOpts.minArea)
	} else {
		var c detection.Color
		c, err = detection.ParseColor(detectOpts.color)
		if err != nil {
			return err
		}
		out, err = detection.Identify(img, c, detectOpts.minArea)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
