package cli

import (
	"context"

	"github.com/amterp/ra"
)

type generateOptions struct {
	columns int
	from    string
	lock    string
	seed    int64
	copy    bool
}

func registerGenerate(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("generate")
	cmd.SetDescription("Generate a palette")

	ctx.GenerateColumns, _ = ra.NewInt("columns").
		SetShort("n").
		SetOptional(true).
		SetDefault(0).
		SetFlagOnly(true).
		SetUsage("Number of columns (1-9, defaults to config)").
		Register(cmd)

	ctx.GenerateFrom, _ = ra.NewString("from").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Start from a fragment, e.g. 0A0A0A-1B1B1B").
		Register(cmd)

	ctx.GenerateLock, _ = ra.NewString("lock").
		SetShort("l").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Columns to keep, e.g. 1,3; the rest are regenerated").
		Register(cmd)

	ctx.GenerateSeed, _ = ra.NewInt("seed").
		SetOptional(true).
		SetDefault(0).
		SetFlagOnly(true).
		SetUsage("Random seed for reproducible palettes").
		Register(cmd)

	ctx.GenerateCopy, _ = ra.NewBool("copy").
		SetShort("c").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Copy the fragment to the clipboard").
		Register(cmd)

	ctx.GenerateUsed, _ = parent.RegisterCmd(cmd)
}

func runGenerate(runCtx context.Context, opts generateOptions, jsonOutput bool) {
	app, err := NewApp(runCtx, false)
	if err != nil {
		Fatal(err)
	}

	palette := app.NewPalette(opts.columns, opts.seed)
	if err := palette.Init(fragmentOf(opts.from)); err != nil {
		Fatal(err)
	}

	// Locks only matter when something gets regenerated around them
	if opts.lock != "" {
		locked, err := parseColumnList(opts.lock, palette.Len())
		if err != nil {
			Fatal(err)
		}
		for _, i := range locked {
			if err := palette.SetLocked(i, true); err != nil {
				Fatal(err)
			}
		}
		if err := palette.Generate(true); err != nil {
			Fatal(err)
		}
	}

	frag := palette.Fragment()
	app.Logger.Debug("generated palette", "fragment", frag, "usage", usageSummary(palette.Usage().Snapshot()))

	if opts.copy {
		if err := app.Clipboard.WriteText(frag); err != nil {
			PrintWarning("copy failed: %v", err)
		} else if !jsonOutput {
			defer PrintSuccess("Copied %s", RenderFragment(frag))
		}
	}

	if jsonOutput {
		if err := printJson(NewPaletteOutput(palette.Columns(), frag, app.openURL(frag))); err != nil {
			Fatal(err)
		}
		return
	}

	printPalette(palette.Columns(), frag)
}
