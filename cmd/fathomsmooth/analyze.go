package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/belalkandil0/FathomOS-sub005/dsp/spectrum"
	"github.com/belalkandil0/FathomOS-sub005/stats/channel"
)

func newAnalyzeCommand() *cobra.Command {
	var (
		inPath     string
		sampleRate float64
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Print per-channel statistics and dominant frequencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := readTrack(inPath)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "channel\tsamples\tmean\tstddev\trange\tdominant freq")

			for _, name := range []string{"easting", "northing", "depth", "altitude"} {
				vals, err := channelValues(points, name)
				if err != nil {
					return err
				}

				stats := channel.Calculate(vals)
				freq := spectrum.DominantFrequency(vals, sampleRate)

				fmt.Fprintf(w, "%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f\n",
					name, stats.Length, stats.Mean, stats.StdDev, stats.Range, freq)
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "input track CSV (required)")
	cmd.Flags().Float64Var(&sampleRate, "rate", 1.0, "channel sample rate in Hz")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
