package cli

import (
	"context"
	"os"

	"github.com/amterp/ra"
	"github.com/charmbracelet/log"
)

// CommandContext holds parsed values and used flags for all commands.
type CommandContext struct {
	// Global flags
	NonInteractive *bool
	Verbose        *bool
	Json           *bool

	// generate command
	GenerateUsed    *bool
	GenerateColumns *int
	GenerateFrom    *string
	GenerateLock    *string
	GenerateSeed    *int
	GenerateCopy    *bool

	// decode command
	DecodeUsed     *bool
	DecodeFragment *string

	// encode command
	EncodeUsed   *bool
	EncodeShades *string

	// names command
	NamesUsed  *bool
	NamesShade *string

	// link command
	LinkUsed      *bool
	LinkBase      *string
	LinkFrom      *string
	LinkNoReplace *bool

	// embed command
	EmbedUsed   *bool
	EmbedBase   *string
	EmbedFrom   *string
	EmbedCtx    *string
	EmbedHeight *int

	// pick command
	PickUsed    *bool
	PickColumns *int
	PickFrom    *string

	// config command
	ConfigUsed *bool
	ConfigInit *bool
	ConfigEdit *bool

	// doctor command
	DoctorUsed *bool
	DoctorFix  *bool

	// serve command
	ServeUsed   *bool
	ServePort   *int
	ServeNoOpen *bool
	ServeDir    *string
	ServeWatch  *bool

	// completion command
	CompletionUsed  *bool
	CompletionShell *string
}

// Run is the main entry point for the CLI. parent is cancelled on interrupt.
func Run(parent context.Context) {
	ctx := &CommandContext{}

	cmd := ra.NewCmd("shades")
	cmd.SetDescription("Grayscale palette generator")

	ctx.NonInteractive, _ = ra.NewBool("non-interactive").
		SetShort("I").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Fail instead of prompting for missing input").
		Register(cmd, ra.WithGlobal(true))

	ctx.Verbose, _ = ra.NewBool("verbose").
		SetShort("v").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Log debug output to stderr").
		Register(cmd, ra.WithGlobal(true))

	ctx.Json, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Print machine-readable JSON").
		Register(cmd, ra.WithGlobal(true))

	registerGenerate(cmd, ctx)
	registerDecode(cmd, ctx)
	registerEncode(cmd, ctx)
	registerNames(cmd, ctx)
	registerLink(cmd, ctx)
	registerEmbed(cmd, ctx)
	registerPick(cmd, ctx)
	registerConfig(cmd, ctx)
	registerDoctor(cmd, ctx)
	registerServe(cmd, ctx)
	registerCompletion(cmd, ctx)

	cmd.ParseOrExit(os.Args[1:])

	level := log.InfoLevel
	if *ctx.Verbose {
		level = log.DebugLevel
	}
	runCtx := withLogger(parent, newLogger(os.Stderr, level))

	executeCommand(runCtx, ctx, cmd)
}

func executeCommand(runCtx context.Context, ctx *CommandContext, rootCmd *ra.Cmd) {
	interactive := !*ctx.NonInteractive

	switch {
	case *ctx.GenerateUsed:
		runGenerate(runCtx, generateOptions{
			columns: *ctx.GenerateColumns,
			from:    *ctx.GenerateFrom,
			lock:    *ctx.GenerateLock,
			seed:    int64(*ctx.GenerateSeed),
			copy:    *ctx.GenerateCopy,
		}, *ctx.Json)

	case *ctx.DecodeUsed:
		runDecode(runCtx, *ctx.DecodeFragment, *ctx.Json)

	case *ctx.EncodeUsed:
		runEncode(runCtx, *ctx.EncodeShades, *ctx.Json)

	case *ctx.NamesUsed:
		runNames(runCtx, *ctx.NamesShade, *ctx.Json)

	case *ctx.LinkUsed:
		runLink(runCtx, *ctx.LinkBase, *ctx.LinkFrom, *ctx.LinkNoReplace, interactive, *ctx.Json)

	case *ctx.EmbedUsed:
		runEmbed(runCtx, *ctx.EmbedBase, *ctx.EmbedFrom, *ctx.EmbedCtx, *ctx.EmbedHeight, interactive, *ctx.Json)

	case *ctx.PickUsed:
		runPick(runCtx, *ctx.PickColumns, *ctx.PickFrom, interactive)

	case *ctx.ConfigUsed:
		runConfig(runCtx, *ctx.ConfigInit, *ctx.ConfigEdit, interactive, *ctx.Json)

	case *ctx.DoctorUsed:
		runDoctor(runCtx, *ctx.DoctorFix, *ctx.Json)

	case *ctx.ServeUsed:
		runServe(runCtx, *ctx.ServePort, *ctx.ServeNoOpen, *ctx.ServeDir, *ctx.ServeWatch)

	case *ctx.CompletionUsed:
		runCompletion(*ctx.CompletionShell, rootCmd)
	}
}
