// Package resample changes the length of a survey channel by linear
// interpolation over a rescaled sample index.
//
// This is the one kernel in the engine that does not preserve length. It is
// used to align channels captured at different logging rates before joint
// processing; it performs no anti-alias filtering, which is acceptable for
// the slowly varying navigation channels it is applied to.
package resample
