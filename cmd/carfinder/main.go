package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"car_finder/cmd/carfinder/commands"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	code := commands.ExecuteContext(ctx)
	cancel()
	os.Exit(code)
}
