//go:build !dev

package api

import (
	"embed"
	"io/fs"
)

//go:embed dist/*
var staticFiles embed.FS

// DefaultAssets returns the page assets compiled into the binary.
func DefaultAssets() fs.FS {
	fsys, _ := fs.Sub(staticFiles, "dist")
	return fsys
}
