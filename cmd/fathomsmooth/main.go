// Command fathomsmooth applies the FathomOS signal-conditioning engine to
// survey point files from the command line.
//
// Usage:
//
//	fathomsmooth smooth -in track.csv -out clean.csv [-config options.yaml]
//	fathomsmooth analyze -in track.csv [-rate 1.0]
//	fathomsmooth spikes -in track.csv -channel depth [-window 5] [-threshold 3]
//
// Input files are CSV with an easting,northing,depth,altitude header. The
// smooth command writes the conditioned channels and prints a change report;
// analyze prints per-channel statistics and dominant frequencies; spikes
// lists detected outlier indices without modifying anything.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "fathomsmooth",
		Short:         "Condition survey channels: smoothing, spike removal, diagnostics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSmoothCommand())
	root.AddCommand(newAnalyzeCommand())
	root.AddCommand(newSpikesCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fathomsmooth:", err)
		os.Exit(1)
	}
}
