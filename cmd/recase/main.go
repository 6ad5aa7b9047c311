package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/erraggy/recase/cmd/recase/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := commands.Execute(ctx)
	stop()
	os.Exit(code)
}
