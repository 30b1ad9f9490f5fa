// Package env keeps names of environment variables with special significance
// to Weir.
package env

// Environment variables with special significance to Weir.
//
// Some of these are only significant in special circumstances, such as when
// running unit tests.
const (
	HOME            = "HOME"
	XDG_CONFIG_HOME = "XDG_CONFIG_HOME"
)
