// Seeder loads listing fixtures into the configured thriftfind storage.
//
//	seeder load testdata/listings.json
//	seeder clear --yes
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(defaultDeps()).ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
