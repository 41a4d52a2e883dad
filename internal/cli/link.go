package cli

import (
	"context"
	"fmt"

	shaderr "github.com/amterp/shades/internal/errors"
	"github.com/amterp/shades/internal/fragment"
	"github.com/amterp/shades/internal/session"
	"github.com/amterp/ra"
)

func registerLink(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("link")
	cmd.SetDescription("Build a link that opens a palette in the full view")

	ctx.LinkBase, _ = ra.NewString("url").
		SetOptional(true).
		SetUsage("Page URL (defaults to open_url from config)").
		Register(cmd)

	ctx.LinkFrom, _ = ra.NewString("from").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Fragment to link to (generates one if omitted)").
		Register(cmd)

	ctx.LinkNoReplace, _ = ra.NewBool("no-replace").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Don't add history=replace").
		Register(cmd)

	ctx.LinkUsed, _ = parent.RegisterCmd(cmd)
}

func runLink(runCtx context.Context, base, from string, noReplace, interactive, jsonOutput bool) {
	app, err := NewApp(runCtx, interactive)
	if err != nil {
		Fatal(err)
	}

	base, err = resolveBaseURL(app, base)
	if err != nil {
		Fatal(err)
	}

	frag, err := paletteFragment(app, from)
	if err != nil {
		Fatal(err)
	}

	link := session.BuildOpenURL(base, "", frag, !noReplace)

	if jsonOutput {
		if err := printJson(LinkOutput{URL: link, Fragment: frag}); err != nil {
			Fatal(err)
		}
		return
	}

	fmt.Println(link)
}

// resolveBaseURL picks the page URL: the argument, then open_url from
// config, then a prompt.
func resolveBaseURL(app *App, base string) (string, error) {
	if base != "" {
		return base, nil
	}
	if app.Config.OpenURL != "" {
		return app.Config.OpenURL, nil
	}

	base, err := app.Prompter.Input("Page URL", "")
	if err != nil {
		return "", shaderr.InvalidField("url", "no URL given and open_url is not configured")
	}
	if base == "" {
		return "", shaderr.InvalidField("url", "URL cannot be empty")
	}
	return base, nil
}

// paletteFragment canonicalizes from, or generates a fresh palette when
// from is empty.
func paletteFragment(app *App, from string) (string, error) {
	if from == "" {
		palette := app.NewPalette(0, 0)
		if err := palette.Generate(false); err != nil {
			return "", err
		}
		return palette.Fragment(), nil
	}

	shades := fragment.Decode(fragmentOf(from))
	if shades == nil {
		return "", shaderr.InvalidField("from", "no valid shades found")
	}
	return fragment.Encode(shades), nil
}
