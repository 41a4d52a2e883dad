package cli

import (
	"context"
	"fmt"

	"github.com/amterp/shades/internal/fragment"
	"github.com/amterp/ra"
)

func registerEncode(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("encode")
	cmd.SetDescription("Build a fragment from hex codes or shade names")

	ctx.EncodeShades, _ = ra.NewString("shades").
		SetUsage("Comma or space separated, e.g. \"sable, #1B1B1B, ebony\"").
		SetCompletionFunc(completeNames).
		Register(cmd)

	ctx.EncodeUsed, _ = parent.RegisterCmd(cmd)
}

func runEncode(runCtx context.Context, input string, jsonOutput bool) {
	app, err := NewApp(runCtx, false)
	if err != nil {
		Fatal(err)
	}

	shades, err := parseShadeList(input, app.Pool)
	if err != nil {
		Fatal(err)
	}
	frag := fragment.Encode(shades)

	if jsonOutput {
		if err := printJson(NewShadesOutput(shades, frag, app.Pool)); err != nil {
			Fatal(err)
		}
		return
	}

	fmt.Println(frag)
}
