package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/amterp/shades/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.Run(ctx)
}
