package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/belalkandil0/FathomOS-sub005/dsp/spike"
)

func newSpikesCommand() *cobra.Command {
	var (
		inPath      string
		channelName string
		window      int
		threshold   float64
	)

	cmd := &cobra.Command{
		Use:   "spikes",
		Short: "List outlier sample indices in one channel without modifying anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := readTrack(inPath)
			if err != nil {
				return err
			}

			vals, err := channelValues(points, channelName)
			if err != nil {
				return err
			}

			indices := spike.Detect(vals, window, threshold)
			if len(indices) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: no spikes in %d samples\n", channelName, len(vals))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d spikes in %d samples\n", channelName, len(indices), len(vals))
			for _, idx := range indices {
				fmt.Fprintf(cmd.OutOrStdout(), "  index %d\tvalue %g\n", idx, vals[idx])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "input track CSV (required)")
	cmd.Flags().StringVar(&channelName, "channel", "depth", "channel to inspect")
	cmd.Flags().IntVar(&window, "window", 5, "detection window size")
	cmd.Flags().Float64Var(&threshold, "threshold", spike.DefaultThreshold, "z-score threshold")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
