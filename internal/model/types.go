// Package model defines shared data structures.
package model

// Options carries session settings resolved from config and flags.
type Options struct {
	ExportFile string
	Places     int
}
