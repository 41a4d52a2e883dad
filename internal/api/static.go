package api

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/amterp/shades/internal/session"
)

// Page routes. The app path matches where the generator is hosted on the
// public site so links copied from the preview keep working.
const (
	EmbedPath = "/embed"
	AppPath   = session.AppPath
)

// StaticHandler serves the page assets. /embed gets the frame variant; any
// other extensionless path gets the standalone page.
func StaticHandler(assets fs.FS) http.Handler {
	fileServer := http.FileServer(http.FS(assets))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		switch {
		case path == EmbedPath || strings.HasPrefix(path, EmbedPath+"/"):
			r.URL.Path = "/embed.html"
		case path != "/" && !strings.Contains(path, "."):
			r.URL.Path = "/"
		}
		fileServer.ServeHTTP(w, r)
	})
}
