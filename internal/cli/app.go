package cli

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/amterp/shades/internal/config"
	shaderr "github.com/amterp/shades/internal/errors"
	"github.com/amterp/shades/internal/model"
	"github.com/amterp/shades/internal/namepool"
	"github.com/amterp/shades/internal/prompt"
	"github.com/amterp/shades/internal/selector"
	"github.com/amterp/shades/internal/service"
	"github.com/amterp/shades/internal/session"
	"github.com/amterp/shades/internal/store"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
)

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return shaderr.Unsupported("clipboard")
	}
	return clipboard.WriteAll(text)
}

// App holds all the dependencies for the CLI.
type App struct {
	Paths       *config.Paths
	GlobalStore store.GlobalStore
	Config      *model.GlobalConfig
	Pool        *namepool.Pool
	Prompter    prompt.Prompter
	Clipboard   Clipboard
	Logger      *log.Logger
}

// NewApp creates a new App with all dependencies wired up.
// If interactive is false, uses NoopPrompter that fails on prompts.
func NewApp(ctx context.Context, interactive bool) (*App, error) {
	logger := loggerFromContext(ctx)
	paths := config.NewPaths()
	globalStore := store.NewGlobalStore(paths)

	// A broken config shouldn't block generating a palette
	cfg, err := globalStore.Load()
	if err != nil {
		PrintWarning("failed to load global config: %v", err)
		cfg = &model.GlobalConfig{}
	}

	pool, err := loadPool(paths, cfg, logger)
	if err != nil {
		return nil, err
	}

	var prompter prompt.Prompter
	if interactive {
		prompter = prompt.NewHuhPrompter()
	} else {
		prompter = &prompt.NoopPrompter{}
	}

	return &App{
		Paths:       paths,
		GlobalStore: globalStore,
		Config:      cfg,
		Pool:        pool,
		Prompter:    prompter,
		Clipboard:   systemClipboard{},
		Logger:      logger,
	}, nil
}

func loadPool(paths *config.Paths, cfg *model.GlobalConfig, logger *log.Logger) (*namepool.Pool, error) {
	path := paths.PoolPath(cfg.PoolFile)
	if path == "" {
		return namepool.Builtin(nil), nil
	}

	pool, err := namepool.LoadFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("load name table %s: %w", path, err)
	}
	logger.Debug("loaded name table", "path", path, "shades", pool.Len())
	return pool, nil
}

// NewPalette creates a palette service over the app's name pool. columns <= 0
// uses the configured count; seed 0 seeds from the clock.
func (a *App) NewPalette(columns int, seed int64) *service.PaletteService {
	if columns <= 0 {
		columns = a.Config.ColumnCount()
	}
	if columns > model.MaxColumnCount {
		columns = model.MaxColumnCount
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.Logger.Debug("new palette", "columns", columns, "seed", seed)

	sel := selector.New(a.Pool, rand.New(rand.NewSource(seed)))
	return service.NewPaletteService(columns, a.Pool, sel, a.Config.UsageBias(), nil)
}

// openURL builds a full-view link from the configured base, or "" when
// open_url isn't set.
func (a *App) openURL(frag string) string {
	if a.Config.OpenURL == "" {
		return ""
	}
	return session.BuildOpenURL(a.Config.OpenURL, "", frag, true)
}

// Fatal prints an error and exits.
func Fatal(err error) {
	PrintError("%v", err)
	os.Exit(1)
}
