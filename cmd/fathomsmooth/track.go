package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/belalkandil0/FathomOS-sub005/survey"
)

// readTrack loads survey points from a CSV file with an
// easting,northing,depth,altitude header row.
func readTrack(path string) ([]survey.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open track: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read track %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("track %s: empty file", path)
	}

	points := make([]survey.Point, 0, len(records)-1)
	for line, rec := range records[1:] {
		if len(rec) < 4 {
			return nil, fmt.Errorf("track %s line %d: want 4 columns, got %d", path, line+2, len(rec))
		}

		var vals [4]float64
		for col := range vals {
			v, err := strconv.ParseFloat(rec[col], 64)
			if err != nil {
				return nil, fmt.Errorf("track %s line %d column %d: %w", path, line+2, col+1, err)
			}
			vals[col] = v
		}

		points = append(points, survey.Point{
			Easting:  vals[0],
			Northing: vals[1],
			Depth:    vals[2],
			Altitude: vals[3],
		})
	}

	return points, nil
}

// writeTrack writes the conditioned channels back out, raw columns first so
// a conditioned file can be re-read as input.
func writeTrack(path string, points []survey.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"easting", "northing", "depth", "altitude",
		"smoothed_easting", "smoothed_northing", "smoothed_depth", "smoothed_altitude",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	for _, p := range points {
		rec := []string{
			formatSample(p.Easting), formatSample(p.Northing),
			formatSample(p.Depth), formatSample(p.Altitude),
			formatSample(p.SmoothedEasting), formatSample(p.SmoothedNorthing),
			formatSample(p.SmoothedDepth), formatSample(p.SmoothedAltitude),
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

func formatSample(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// channelValues extracts one named channel from the points.
func channelValues(points []survey.Point, name string) ([]float64, error) {
	out := make([]float64, len(points))
	switch name {
	case "easting":
		for i, p := range points {
			out[i] = p.Easting
		}
	case "northing":
		for i, p := range points {
			out[i] = p.Northing
		}
	case "depth":
		for i, p := range points {
			out[i] = p.Depth
		}
	case "altitude":
		for i, p := range points {
			out[i] = p.Altitude
		}
	default:
		return nil, fmt.Errorf("unknown channel %q (want easting, northing, depth or altitude)", name)
	}
	return out, nil
}
