package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/recently-seen-dragons/core"
	"github.com/AntonStoeckl/recently-seen-dragons/recentlyseen"
)

func newInitSchemaCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init-schema",
		Short: "Create the dragons table and the events table if they don't exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openStores(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer s.close()

			if err = s.createTables(cmd.Context()); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "schema is ready")

			return err
		},
	}
}

func newAddDragonCommand(opts *rootOptions) *cobra.Command {
	var realmID int

	cmd := &cobra.Command{
		Use:   "add-dragon NAME...",
		Short: "Add dragons to a realm",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStores(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer s.close()

			return s.dragons.Add(cmd.Context(), realmID, args[0], args[1:]...)
		},
	}

	cmd.Flags().IntVar(&realmID, flagRealm, core.MainRealmID, "realm the dragons live in")

	return cmd
}

func newSightCommand(opts *rootOptions) *cobra.Command {
	var (
		realmID int
		at      string
	)

	cmd := &cobra.Command{
		Use:   "sight NAME",
		Short: "Record a sighting of a dragon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seenOn := time.Now()
			if at != "" {
				parsed, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("--%s: %w", flagAt, err)
				}

				seenOn = parsed
			}

			s, err := openStores(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer s.close()

			sighting := core.BuildDragonSighting(uuid.New(), args[0], realmID, seenOn)
			if err = s.sightings.Record(cmd.Context(), sighting); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), sighting.SightingID)

			return err
		},
	}

	cmd.Flags().IntVar(&realmID, flagRealm, core.MainRealmID, "realm the dragon was seen in")
	cmd.Flags().StringVar(&at, flagAt, "", "when the dragon was seen, RFC3339 (default now)")

	return cmd
}

func newFindCommand(opts *rootOptions) *cobra.Command {
	var (
		realmID int
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "List the dragons of a realm that were seen within the recency threshold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openStores(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer s.close()

			dragonSource, err := s.dragonSource(opts.cfg.Dragons.Evergreen)
			if err != nil {
				return err
			}

			service, err := recentlyseen.NewService(
				dragonSource,
				s.sightings,
				opts.cfg.Recency.Threshold,
				recentlyseen.WithLogger(opts.logger),
			)
			if err != nil {
				return err
			}

			found, err := service.FindRecentlySeen(cmd.Context(), realmID)
			if err != nil {
				return err
			}

			return printDragons(cmd, found, asJSON)
		},
	}

	cmd.Flags().IntVar(&realmID, flagRealm, core.MainRealmID, "realm to search")
	cmd.Flags().Duration(flagThreshold, 0, "recency threshold (default 720h)")
	cmd.Flags().BoolVar(&asJSON, flagJSON, false, "print the result as a JSON array of names")

	return cmd
}

func printDragons(cmd *cobra.Command, found core.Dragons, asJSON bool) error {
	names := core.DragonNames(found)

	if asJSON {
		output, err := jsoniter.ConfigFastest.MarshalToString(names)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), output)

		return err
	}

	for _, name := range names {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
			return err
		}
	}

	return nil
}
