// Package internal carries build metadata shared by the binaries.
package internal

// Version is the semantic version of the build, overridden at link time
// with -ldflags "-X github.com/vocdoni/dvrf-node/internal.Version=...".
var Version = "dev"
