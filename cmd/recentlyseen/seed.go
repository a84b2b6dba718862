package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/recently-seen-dragons/core"
)

const (
	flagRealms    = "realms"
	flagDragons   = "dragons"
	flagSightings = "sightings"
	flagSpan      = "span"
	flagBatchSize = "batch-size"
	flagSeed      = "seed"
)

type seedOptions struct {
	realms          int
	dragonsPerRealm int
	sightings       int
	span            time.Duration
	batchSize       int
	seed            uint64
}

func newSeedCommand(opts *rootOptions) *cobra.Command {
	seedOpts := seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the database with random dragons and sightings",
		Long: `seed adds dragons named dragon-<realm>-<n> to the realms 1..--realms and records
--sightings random sightings of them, spread evenly over the last --span.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openStores(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer s.close()

			recorded, err := seed(cmd.Context(), s, seedOpts, time.Now())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "recorded %d sightings\n", recorded)

			return err
		},
	}

	cmd.Flags().IntVar(&seedOpts.realms, flagRealms, 3, "number of realms")
	cmd.Flags().IntVar(&seedOpts.dragonsPerRealm, flagDragons, 10, "dragons per realm")
	cmd.Flags().IntVar(&seedOpts.sightings, flagSightings, 1000, "number of sightings")
	cmd.Flags().DurationVar(&seedOpts.span, flagSpan, 90*24*time.Hour, "sightings are spread over this duration before now")
	cmd.Flags().IntVar(&seedOpts.batchSize, flagBatchSize, 500, "sightings appended per statement")
	cmd.Flags().Uint64Var(&seedOpts.seed, flagSeed, uint64(time.Now().UnixNano()), "random seed") //nolint:gosec

	return cmd
}

func seedDragonName(realmID core.RealmID, n int) string {
	return "dragon-" + strconv.Itoa(realmID) + "-" + strconv.Itoa(n)
}

func seed(ctx context.Context, s stores, o seedOptions, now time.Time) (int, error) {
	if o.realms < 1 || o.dragonsPerRealm < 1 || o.batchSize < 1 || o.span <= 0 {
		return 0, fmt.Errorf("seed: --%s, --%s, --%s and --%s must be positive", flagRealms, flagDragons, flagBatchSize, flagSpan)
	}

	for realmID := 1; realmID <= o.realms; realmID++ {
		names := make([]string, 0, o.dragonsPerRealm)
		for n := range o.dragonsPerRealm {
			names = append(names, seedDragonName(realmID, n))
		}

		if err := s.dragons.Add(ctx, realmID, names[0], names[1:]...); err != nil {
			return 0, err
		}
	}

	rnd := rand.New(rand.NewPCG(o.seed, o.seed>>1)) //nolint:gosec
	batch := make([]core.DragonSighting, 0, o.batchSize)
	recorded := 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}

		if err := s.sightings.Record(ctx, batch[0], batch[1:]...); err != nil {
			return err
		}

		recorded += len(batch)
		batch = batch[:0]

		return nil
	}

	for range o.sightings {
		realmID := rnd.IntN(o.realms) + 1
		name := seedDragonName(realmID, rnd.IntN(o.dragonsPerRealm))
		seenOn := now.Add(-time.Duration(rnd.Int64N(int64(o.span))))

		batch = append(batch, core.BuildDragonSighting(uuid.New(), name, realmID, seenOn))

		if len(batch) == o.batchSize {
			if err := flush(); err != nil {
				return recorded, err
			}
		}
	}

	if err := flush(); err != nil {
		return recorded, err
	}

	return recorded, nil
}
