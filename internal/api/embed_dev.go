//go:build dev

package api

import (
	"io/fs"
	"os"
)

// DevAssetsDir is read on every request in dev builds, so rebuilt wasm and
// edited pages show up without recompiling the server.
const DevAssetsDir = "internal/api/dist"

// DefaultAssets returns the on-disk page assets.
func DefaultAssets() fs.FS {
	return os.DirFS(DevAssetsDir)
}
