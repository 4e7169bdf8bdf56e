// Package elbow selects embedding dimensionality from a scree plot.
//
// FindElbows implements the profile-likelihood method of Zhu & Ghodsi
// (Automatic dimensionality selection from the scree plot via the use of
// profile likelihood, Computational Statistics & Data Analysis 51(2),
// 2006): the descending-sorted values are split into a "signal" prefix
// and "noise" suffix, each modeled as a Normal with its own mean and a
// shared pooled standard deviation, and the split maximizing the total
// likelihood is the elbow. Repeating the procedure on the remaining
// suffix yields further elbows.
//
// The search is deliberately greedy and left-to-right, and the
// likelihood is accumulated as a sum of Normal densities rather than
// log-densities, so elbow positions agree with the widely used
// formulation of the method; a log-likelihood sum would be the
// numerically safer variant.
package elbow
