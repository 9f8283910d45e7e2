// Package spectrum provides frequency-domain diagnostics for survey
// channels: one-sided power spectra and a dominant-frequency estimate.
//
// These are analysis helpers, not filters. They exist so that operators (and
// the fathomsmooth CLI) can inspect what a channel actually contains before
// choosing a cutoff for the onepole filters or a window for the smoothers.
package spectrum
