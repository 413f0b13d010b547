package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/hackathon-scout/cmd/scout/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := commands.NewRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
