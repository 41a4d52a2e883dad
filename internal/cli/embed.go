package cli

import (
	"context"
	"fmt"
	"html"
	"strconv"

	"github.com/amterp/shades/internal/id"
	"github.com/amterp/shades/internal/session"
	"github.com/amterp/ra"
)

const defaultEmbedHeight = 320

func registerEmbed(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("embed")
	cmd.SetDescription("Print an iframe snippet for embedding the palette in a page")

	ctx.EmbedBase, _ = ra.NewString("url").
		SetOptional(true).
		SetUsage("Embed page URL (defaults to open_url from config)").
		Register(cmd)

	ctx.EmbedFrom, _ = ra.NewString("from").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Initial palette fragment (generates one if omitted)").
		Register(cmd)

	ctx.EmbedCtx, _ = ra.NewString("ctx").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Label for the embed context, e.g. \"hero palette\"").
		Register(cmd)

	ctx.EmbedHeight, _ = ra.NewInt("height").
		SetOptional(true).
		SetDefault(defaultEmbedHeight).
		SetFlagOnly(true).
		SetUsage("Iframe height in pixels").
		Register(cmd)

	ctx.EmbedUsed, _ = parent.RegisterCmd(cmd)
}

func runEmbed(runCtx context.Context, base, from, label string, height int, interactive, jsonOutput bool) {
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

	ctxID := id.ContextID(label)
	src, err := session.BuildEmbedURL(base, ctxID, frag)
	if err != nil {
		Fatal(err)
	}
	app.Logger.Debug("embed", "ctx", ctxID, "src", src)

	iframe := iframeSnippet(src, height)
	listener := listenerSnippet(ctxID)

	if jsonOutput {
		if err := printJson(EmbedOutput{Ctx: ctxID, Src: src, Iframe: iframe, Listener: listener}); err != nil {
			Fatal(err)
		}
		return
	}

	fmt.Println(iframe)
	fmt.Println()
	fmt.Println(listener)
}

func iframeSnippet(src string, height int) string {
	if height <= 0 {
		height = defaultEmbedHeight
	}
	return fmt.Sprintf(`<iframe src="%s" width="100%%" height="%d" style="border:0" loading="lazy" allow="clipboard-write"></iframe>`,
		html.EscapeString(src), height)
}

// listenerSnippet is host-page script that receives palette updates from
// the frame tagged with ctxID.
func listenerSnippet(ctxID string) string {
	return fmt.Sprintf(`<script>
window.addEventListener("message", function (event) {
  var msg = event.data;
  if (!msg || msg.type !== %s || msg.app !== %s || msg.ctx !== %s) return;
  console.log("palette", msg.shades, msg.hash);
});
</script>`, strconv.Quote(session.MessageType), strconv.Quote(session.AppID), strconv.Quote(ctxID))
}
