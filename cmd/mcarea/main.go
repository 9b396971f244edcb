package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newApp().Run(ctx, os.Args)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcarea: %v\n", err)
		os.Exit(1)
	}
}
