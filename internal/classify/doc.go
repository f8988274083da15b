// Package classify maps normalized pixels to the three color classes a
// hand-drawn property map uses: the green region marker locating the plot,
// the red boundary contour, and the grey interior of interest.
//
// Classification is purely per-pixel: each class is a conjunction of open
// channel intervals, disjoint by convention under the default thresholds but
// not structurally enforced. Everything that matches no class is background.
package classify
