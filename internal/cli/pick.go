package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/amterp/shades/internal/model"
	"github.com/amterp/shades/internal/namepool"
	"github.com/amterp/shades/internal/prompt"
	"github.com/amterp/shades/internal/service"
	"github.com/amterp/ra"
)

const (
	pickRegenerate = "regenerate"
	pickLocks      = "locks"
	pickCopy       = "copy"
	pickDone       = "done"
)

func registerPick(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("pick")
	cmd.SetDescription("Build a palette interactively, locking the shades you like")

	ctx.PickColumns, _ = ra.NewInt("columns").
		SetShort("n").
		SetOptional(true).
		SetDefault(0).
		SetFlagOnly(true).
		SetUsage("Number of columns (1-9, defaults to config)").
		Register(cmd)

	ctx.PickFrom, _ = ra.NewString("from").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Start from a fragment").
		Register(cmd)

	ctx.PickUsed, _ = parent.RegisterCmd(cmd)
}

func runPick(runCtx context.Context, columns int, from string, interactive bool) {
	app, err := NewApp(runCtx, interactive)
	if err != nil {
		Fatal(err)
	}

	palette := app.NewPalette(columns, 0)
	if err := palette.Init(fragmentOf(from)); err != nil {
		Fatal(err)
	}

	for {
		fmt.Println()
		fmt.Println(PaletteRow(palette.Columns()))
		fmt.Println()

		action, err := app.Prompter.Select("What next?", []prompt.Option{
			{Label: "Regenerate unlocked columns", Value: pickRegenerate},
			{Label: "Lock or unlock columns", Value: pickLocks},
			{Label: "Copy fragment", Value: pickCopy},
			{Label: "Done", Value: pickDone},
		})
		if err != nil {
			Fatal(err)
		}

		switch action {
		case pickRegenerate:
			if err := palette.Generate(true); err != nil {
				Fatal(err)
			}
			app.Logger.Debug("regenerated", "fragment", palette.Fragment(), "usage", usageSummary(palette.Usage().Snapshot()))

		case pickLocks:
			selected, err := app.Prompter.MultiSelect("Locked columns", lockOptions(palette.Columns()))
			if err != nil {
				Fatal(err)
			}
			if err := applyLocks(palette, selected); err != nil {
				Fatal(err)
			}

		case pickCopy:
			if err := app.Clipboard.WriteText(palette.Fragment()); err != nil {
				PrintWarning("copy failed: %v", err)
			} else {
				PrintSuccess("Copied %s", RenderFragment(palette.Fragment()))
			}

		case pickDone:
			fmt.Println(LabelValue("Fragment", RenderFragment(palette.Fragment()), 9))
			if link := app.openURL(palette.Fragment()); link != "" {
				fmt.Println(LabelValue("Link", RenderURL(link), 9))
			}
			return
		}
	}
}

// lockOptions lists every column, preselecting the locked ones.
func lockOptions(cols []model.Column) []prompt.Option {
	opts := make([]prompt.Option, len(cols))
	for i, col := range cols {
		label := fmt.Sprintf("%d  %s  %s", i+1, col.Shade, namepool.DisplayName(col.Name))
		opts[i] = prompt.Option{Label: label, Value: strconv.Itoa(i), Selected: col.Locked}
	}
	return opts
}

// applyLocks locks exactly the selected column indexes.
func applyLocks(palette *service.PaletteService, selected []string) error {
	want := make(map[int]bool, len(selected))
	for _, v := range selected {
		i, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		want[i] = true
	}
	for i := 0; i < palette.Len(); i++ {
		if err := palette.SetLocked(i, want[i]); err != nil {
			return err
		}
	}
	return nil
}
