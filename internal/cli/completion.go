package cli

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/amterp/shades/internal/config"
	"github.com/amterp/shades/internal/namepool"
	"github.com/amterp/shades/internal/store"
	"github.com/amterp/ra"
)

// completionCtx loads the name table for shell completion. Completion
// functions run during ParseOrExit, before NewApp() is called, so this
// loads just the pool and stays quiet on errors.
type completionCtx struct {
	once sync.Once
	pool *namepool.Pool
}

var compCtx completionCtx

func initCompletionCtx() {
	compCtx.once.Do(func() {
		paths := config.NewPaths()
		cfg, err := store.NewGlobalStore(paths).Load()
		if err != nil || cfg.PoolFile == "" {
			compCtx.pool = namepool.Builtin(nil)
			return
		}

		pool, err := namepool.LoadFile(paths.PoolPath(cfg.PoolFile), nil)
		if err != nil {
			pool = namepool.Builtin(nil)
		}
		compCtx.pool = pool
	})
}

// completeNames returns shade names matching the given prefix. Only the
// last comma-separated item is completed.
func completeNames(toComplete string) ([]string, ra.CompletionDirective) {
	initCompletionCtx()
	return matchNames(compCtx.pool.Names(), toComplete), ra.CompletionDirectiveNoFileComp
}

// matchNames filters names case-insensitively by the last item in
// toComplete, keeping the earlier items as a prefix.
func matchNames(names []string, toComplete string) []string {
	head, last := "", toComplete
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		head, last = toComplete[:i+1], strings.TrimLeft(toComplete[i+1:], " ")
	}
	needle := strings.ToLower(last)

	var result []string
	for _, name := range names {
		if strings.HasPrefix(strings.ToLower(name), needle) {
			result = append(result, head+name)
		}
	}
	return result
}

// registerCompletion adds the "shades completion <shell>" command.
func registerCompletion(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("completion")
	cmd.SetDescription("Output shell completion script")

	ctx.CompletionShell, _ = ra.NewString("shell").
		SetUsage("Shell type").
		SetEnumConstraint([]string{"bash", "zsh"}).
		Register(cmd)

	ctx.CompletionUsed, _ = parent.RegisterCmd(cmd)
}

// runCompletion outputs the shell completion script to stdout.
func runCompletion(shell string, rootCmd *ra.Cmd) {
	var err error
	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(os.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(os.Stdout)
	default:
		Fatal(fmt.Errorf("unsupported shell: %s (supported: bash, zsh)", shell))
	}
	if err != nil {
		Fatal(fmt.Errorf("failed to generate completion script: %w", err))
	}
}
