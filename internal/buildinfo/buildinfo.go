// Package buildinfo carries version metadata injected at link time via
// -ldflags "-X".
package buildinfo

var (
	Version   = "dev"
	Revision  = "unknown"
	BuildDate = "unknown"
)
