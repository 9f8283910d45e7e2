// Package core provides numeric conventions shared by every signal kernel:
// parameter clamping, odd-window coercion, copy-on-return helpers, and
// non-finite screening.
//
// The engine favors silent correction over errors. Window sizes below 3 or
// even are widened via [OddWindow]; out-of-range scalar parameters are
// clamped or short-circuit to an unchanged copy inside the kernels
// themselves. NaN and Inf samples propagate through arithmetic unguarded;
// [HasNonFinite] exists for callers that must pre-screen corrupt sensor
// data (for example a dropped GPS fix recorded as NaN).
package core
