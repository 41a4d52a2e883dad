package cli

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	shaderr "github.com/amterp/shades/internal/errors"
	"github.com/amterp/shades/internal/fragment"
	"github.com/amterp/shades/internal/model"
	"github.com/amterp/shades/internal/namepool"
	"github.com/amterp/ra"
)

func registerDecode(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("decode")
	cmd.SetDescription("Show the shades in a fragment")

	ctx.DecodeFragment, _ = ra.NewString("fragment").
		SetUsage("Fragment or full link, e.g. #0A0A0A-1B1B1B").
		Register(cmd)

	ctx.DecodeUsed, _ = parent.RegisterCmd(cmd)
}

func runDecode(runCtx context.Context, frag string, jsonOutput bool) {
	app, err := NewApp(runCtx, false)
	if err != nil {
		Fatal(err)
	}

	shades := fragment.Decode(fragmentOf(frag))
	if shades == nil {
		Fatal(shaderr.InvalidField("fragment", "no valid shades found"))
	}
	canonical := fragment.Encode(shades)

	if jsonOutput {
		if err := printJson(NewShadesOutput(shades, canonical, app.Pool)); err != nil {
			Fatal(err)
		}
		return
	}

	for i, shade := range shades {
		fmt.Printf("%d  %s  %s  %s\n", i+1, ColorSwatch(shade.String()), shade, describeShade(shade, app.Pool))
	}
	fmt.Println()
	fmt.Println(LabelValue("Fragment", RenderFragment(canonical), 9))
}

// fragmentOf accepts a bare fragment or a URL carrying one. Only a URL
// prefix is cut; '#' inside a bare fragment is left for fragment.Decode,
// which allows one per token.
func fragmentOf(s string) string {
	s = strings.TrimSpace(s)
	i := strings.IndexByte(s, '#')
	if i < 0 || !strings.ContainsAny(s[:i], ":/?") {
		return s
	}
	if strings.Contains(s[:i], "://") {
		if u, err := url.Parse(s); err == nil {
			return u.Fragment
		}
	}
	return s[i+1:]
}

func describeShade(shade model.Shade, pool *namepool.Pool) string {
	if !shade.IsGray() {
		return RenderMuted("(not gray)")
	}
	name := pool.CanonicalName(shade.String())
	if name == "" {
		return RenderMuted("(unnamed)")
	}
	out := RenderBold(name)
	if n := len(pool.Synonyms(shade.String())); n > 1 {
		out += " " + RenderMuted(fmt.Sprintf("+%d synonyms", n-1))
	}
	return out
}
