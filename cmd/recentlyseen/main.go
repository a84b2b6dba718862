// Command recentlyseen finds the dragons of a realm that were sighted recently.
//
// Dragons are kept in a Postgres table, sightings as events in a Postgres event log.
//
//	recentlyseen init-schema
//	recentlyseen add-dragon --realm 1 Balthazar Niv-Mizzet
//	recentlyseen sight --realm 1 Niv-Mizzet
//	recentlyseen find --realm 1 --threshold 720h
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCommand().ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
