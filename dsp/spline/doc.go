// Package spline provides a cubic-spline smoothing fit for survey channels.
//
// Unlike a pure interpolation pass-through, [Fit] deliberately reduces the
// signal to a sparse set of knots before fitting, so re-evaluating the
// spline at every integer index de-noises the channel while keeping its
// large-scale shape (and its endpoints) intact.
package spline
