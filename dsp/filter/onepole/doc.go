// Package onepole provides single-pole IIR frequency-selective filters for
// survey channels: a low-pass primitive plus high-pass and band-pass forms
// built from it by complement and composition.
//
// These are causal recursive filters parameterized in physical units
// (cutoff in Hz against the channel's sample rate), suitable for separating
// slow platform motion from wave-induced oscillation in heave/altitude
// records. For zero-phase smoothing use package kalman or the windowed
// kernels in package smooth instead.
package onepole
