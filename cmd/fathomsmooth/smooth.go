package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/belalkandil0/FathomOS-sub005/dsp/core"
	"github.com/belalkandil0/FathomOS-sub005/survey"
)

func newSmoothCommand() *cobra.Command {
	var (
		inPath     string
		outPath    string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "smooth",
		Short: "Condition the channels of a survey track and report what moved",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(configPath)
			if err != nil {
				return err
			}

			points, err := readTrack(inPath)
			if err != nil {
				return err
			}

			if err := screenChannels(points); err != nil {
				return err
			}

			result := survey.Smooth(points, opts)

			if outPath != "" {
				if err := writeTrack(outPath, points); err != nil {
					return err
				}
			}

			printResult(cmd.OutOrStdout(), opts, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "input track CSV (required)")
	cmd.Flags().StringVar(&outPath, "out", "", "output CSV with conditioned channels")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML options file")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

// screenChannels rejects tracks with non-finite samples up front; the
// kernels would propagate them silently otherwise.
func screenChannels(points []survey.Point) error {
	channels := map[string][]float64{}
	for _, name := range []string{"easting", "northing", "depth", "altitude"} {
		vals, err := channelValues(points, name)
		if err != nil {
			return err
		}
		channels[name] = vals
	}

	for name, vals := range channels {
		if core.HasNonFinite(vals) {
			return fmt.Errorf("channel %s contains NaN or Inf samples; clean the export first", name)
		}
	}
	return nil
}

func printResult(out io.Writer, opts survey.Options, result survey.Result) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "points\t%d\n", result.TotalPoints)
	fmt.Fprintf(w, "points changed\t%d\n", result.PointsChanged)

	if opts.SmoothPosition {
		fmt.Fprintf(w, "position\tmethod %s, %d modified, max correction %.4f\n",
			opts.PositionMethod, result.PositionPointsModified, result.MaxPositionCorrection)
	}
	if opts.SmoothDepth {
		fmt.Fprintf(w, "depth\tmethod %s, %d modified, max correction %.4f\n",
			opts.VerticalMethod, result.DepthPointsModified, result.MaxDepthCorrection)
	}
	if opts.SmoothAltitude {
		fmt.Fprintf(w, "altitude\tmethod %s, %d modified, max correction %.4f\n",
			opts.VerticalMethod, result.AltitudePointsModified, result.MaxAltitudeCorrection)
	}

	w.Flush()
}
