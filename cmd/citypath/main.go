// Command citypath loads a city distance matrix and finds routes between
// cities with breadth-first and depth-first search.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "citypath:", err)
		stop()
		os.Exit(1)
	}
}
