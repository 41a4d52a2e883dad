package cli

import (
	"context"
	"fmt"
	"io/fs"
	"net"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/amterp/shades/internal/api"
	shaderr "github.com/amterp/shades/internal/errors"
	"github.com/amterp/ra"
)

func registerServe(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("serve")
	cmd.SetDescription("Start the palette page locally")

	ctx.ServePort, _ = ra.NewInt("port").
		SetOptional(true).
		SetDefault(0).
		SetShort("p").
		SetFlagOnly(true).
		SetUsage("Port to listen on, defaults to config (will try incrementally if in use)").
		Register(cmd)

	ctx.ServeNoOpen, _ = ra.NewBool("no-open").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Don't open browser automatically").
		Register(cmd)

	ctx.ServeDir, _ = ra.NewString("dir").
		SetShort("d").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Serve page assets from this directory instead of the built-in ones").
		Register(cmd)

	ctx.ServeWatch, _ = ra.NewBool("watch").
		SetShort("w").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Reload open pages when files under --dir change").
		Register(cmd)

	ctx.ServeUsed, _ = parent.RegisterCmd(cmd)
}

func runServe(runCtx context.Context, port int, noOpen bool, dir string, watch bool) {
	app, err := NewApp(runCtx, false)
	if err != nil {
		Fatal(err)
	}

	if watch && dir == "" {
		Fatal(shaderr.InvalidField("watch", "--watch needs --dir"))
	}

	var assets fs.FS = api.DefaultAssets()
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			Fatal(err)
		}
		assets = os.DirFS(dir)
	}

	watchDir := ""
	if watch {
		watchDir = dir
	}

	if port <= 0 {
		port = app.Config.Port()
	}

	handler := api.NewHandler(app.Pool, app.Config, assets)

	// Find an available port starting from the requested one
	actualPort := findAvailablePort(port)
	server := api.NewServer(handler, actualPort, watchDir, app.Logger)

	url := fmt.Sprintf("http://localhost:%d", actualPort)
	fmt.Printf("Shades running at %s\n", RenderURL(url))
	fmt.Printf("Embed view at %s\n", RenderURL(url+api.EmbedPath))
	if server.LiveReload() {
		PrintInfo("Watching %s for changes", dir)
	}
	fmt.Println("Press Ctrl+C to stop")

	if !noOpen {
		openBrowser(url)
	}

	go func() {
		<-runCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			app.Logger.Warn("shutdown", "err", err)
		}
	}()

	if err := server.Start(); err != nil {
		Fatal(err)
	}
}

// findAvailablePort tries ports starting from startPort until it finds one that's available.
func findAvailablePort(startPort int) int {
	maxAttempts := 100
	for i := 0; i < maxAttempts; i++ {
		port := startPort + i
		if isPortAvailable(port) {
			return port
		}
	}
	// If we couldn't find a port after maxAttempts, return the original and let it fail naturally
	return startPort
}

// isPortAvailable checks if a port is available by attempting to listen on it.
func isPortAvailable(port int) bool {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return false
	}
	listener.Close()
	return true
}

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	}
	if cmd != nil {
		_ = cmd.Start()
	}
}
