package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/amterp/shades/internal/editor"
	"github.com/amterp/shades/internal/model"
	"github.com/amterp/ra"
)

func registerConfig(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("config")
	cmd.SetDescription("Show the global config")

	ctx.ConfigInit, _ = ra.NewBool("init").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Write a config file with default values").
		Register(cmd)

	ctx.ConfigEdit, _ = ra.NewBool("edit").
		SetShort("e").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Open the config file in $VISUAL or $EDITOR").
		Register(cmd)

	ctx.ConfigUsed, _ = parent.RegisterCmd(cmd)
}

func runConfig(runCtx context.Context, initConfig, edit, interactive, jsonOutput bool) {
	app, err := NewApp(runCtx, interactive)
	if err != nil {
		Fatal(err)
	}

	path := app.Paths.GlobalConfigPath()

	if initConfig {
		if err := initGlobalConfig(app, path); err != nil {
			Fatal(err)
		}
	}

	if edit {
		if err := editGlobalConfig(runCtx, app); err != nil {
			Fatal(err)
		}
	}

	exists := fileExists(path)
	if jsonOutput {
		out := ConfigOutput{Path: path, Exists: exists, Config: configToJson(app.Config)}
		if err := printJson(out); err != nil {
			Fatal(err)
		}
		return
	}

	cfg := configToJson(app.Config)
	status := RenderMuted("(not created, showing defaults)")
	if exists {
		status = ""
	}
	fmt.Println(LabelValue("Path", path+" "+status, 10))
	fmt.Println(LabelValue("Columns", strconv.Itoa(cfg.Columns), 10))
	fmt.Println(LabelValue("Bias", strconv.FormatFloat(cfg.Bias, 'g', -1, 64), 10))
	fmt.Println(LabelValue("Port", strconv.Itoa(cfg.ServePort), 10))
	fmt.Println(LabelValue("Names", orDefault(app.Paths.PoolPath(cfg.PoolFile), "built-in"), 10))
	fmt.Println(LabelValue("Open URL", orDefault(cfg.OpenURL, "unset"), 10))
}

func initGlobalConfig(app *App, path string) error {
	if fileExists(path) {
		overwrite, err := app.Prompter.Confirm(fmt.Sprintf("%s exists. Reset to defaults?", path), false)
		if err != nil || !overwrite {
			PrintInfo("Kept existing config")
			return nil
		}
		cfg := model.DefaultGlobalConfig()
		if err := app.GlobalStore.Save(cfg); err != nil {
			return err
		}
		app.Config = cfg
		PrintSuccess("Reset %s", path)
		return nil
	}

	if err := app.GlobalStore.EnsureExists(); err != nil {
		return err
	}
	cfg, err := app.GlobalStore.Load()
	if err != nil {
		return err
	}
	app.Config = cfg
	PrintSuccess("Wrote %s", path)
	return nil
}

// editGlobalConfig opens the config in the user's editor, creating it first
// if needed, and reloads it so problems surface immediately.
func editGlobalConfig(runCtx context.Context, app *App) error {
	if err := app.GlobalStore.EnsureExists(); err != nil {
		return err
	}

	path := app.Paths.GlobalConfigPath()
	logger := loggerFromContext(runCtx)
	logger.Debug("opening editor", "path", path)

	if err := editor.NewEditor().Open(path); err != nil {
		return fmt.Errorf("editor exited: %w", err)
	}

	cfg, err := app.GlobalStore.Load()
	if err != nil {
		PrintWarning("Config no longer parses: %v", err)
		PrintInfo("Run 'shades doctor' for details")
		return nil
	}
	app.Config = cfg
	if _, err := loadPool(app.Paths, cfg, logger); err != nil {
		PrintWarning("Name table failed to load: %v", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return RenderMuted(fallback)
	}
	return s
}
