package cli

import (
	"context"
	"fmt"

	shaderr "github.com/amterp/shades/internal/errors"
	"github.com/amterp/shades/internal/model"
	"github.com/amterp/ra"
)

func registerNames(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("names")
	cmd.SetDescription("List shade names")

	ctx.NamesShade, _ = ra.NewString("shade").
		SetShort("s").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Only names for this shade (hex code or name)").
		SetCompletionFunc(completeNames).
		Register(cmd)

	ctx.NamesUsed, _ = parent.RegisterCmd(cmd)
}

func runNames(runCtx context.Context, shadeFilter string, jsonOutput bool) {
	app, err := NewApp(runCtx, false)
	if err != nil {
		Fatal(err)
	}

	names := app.Pool.Names()
	if shadeFilter != "" {
		shade, err := resolveShade(shadeFilter, app)
		if err != nil {
			Fatal(err)
		}
		names = app.Pool.Synonyms(shade.String())
		if len(names) == 0 {
			Fatal(shaderr.ShadeNotFound(shade.String()))
		}
	}

	if jsonOutput {
		if err := printJson(NewNamesOutput(names, app.Pool)); err != nil {
			Fatal(err)
		}
		return
	}

	for _, name := range names {
		shade, ok := app.Pool.HexFromName(name)
		if !ok {
			app.Logger.Debug("skipping unresolvable name", "name", name)
			continue
		}
		fmt.Printf("%s  %s  %s\n", ColorSwatch(shade.String()), shade, name)
	}
}

func resolveShade(s string, app *App) (model.Shade, error) {
	shades, err := parseShadeList(s, app.Pool)
	if err != nil {
		return "", err
	}
	if len(shades) != 1 {
		return "", shaderr.InvalidField("shade", "expected a single shade")
	}
	return shades[0], nil
}
