// Package model implements the geometry tool model observed by
// geomtool.View: pose, size and the per-instrument geometry catalog.
//
// Every mutation notifies observers synchronously, first with the new
// pose values and then with the dirty region covering the old and new
// extent. Close sends the finalization notification and forgets all
// observers.
package model
