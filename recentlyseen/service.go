package recentlyseen

import (
	"context"
	"errors"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AntonStoeckl/recently-seen-dragons/core"
)

var (
	// ErrNilDragonSource is returned when the Service is constructed without a dragon source.
	ErrNilDragonSource = errors.New("dragon source must not be nil")

	// ErrNilSightingSource is returned when the Service is constructed without a sighting source.
	ErrNilSightingSource = errors.New("sighting source must not be nil")

	// ErrNegativeThreshold is returned when the Service is constructed with a negative recency threshold.
	ErrNegativeThreshold = errors.New("recency threshold must not be negative")

	// ErrNilClock is returned by WithClock for a nil clock function.
	ErrNilClock = errors.New("clock must not be nil")
)

const (
	queryType = "RecentlySeenDragons"

	statusSuccess  = "success"
	statusError    = "error"
	statusCanceled = "canceled"
	statusTimeout  = "timeout"

	logMsgQueryStarted   = "query handler started"
	logMsgQueryCompleted = "query handler completed"
	logMsgQueryFailed    = "query handler failed"

	logAttrQueryType     = "query_type"
	logAttrRealmID       = "realm_id"
	logAttrStatus        = "status"
	logAttrDurationMS    = "duration_ms"
	logAttrDragonCount   = "dragon_count"
	logAttrSightingCount = "sighting_count"
	logAttrResultCount   = "result_count"
	logAttrError         = "error"
)

// Service finds the dragons of a realm that were seen within the configured recency threshold.
// How the data is obtained is fixed at construction, what is asked (the realm) is supplied per call.
//
// Service is a value type and safe for concurrent use as long as both sources are.
type Service struct {
	dragons   FindsDragonsByRealm
	sightings FindsSightingsByRealm
	threshold time.Duration
	now       func() time.Time
	logger    Logger
}

// Option defines a functional option for configuring Service.
type Option func(*Service) error

// WithLogger sets the logger for the Service.
func WithLogger(logger Logger) Option {
	return func(s *Service) error {
		s.logger = logger
		return nil
	}
}

// WithClock replaces time.Now as the source of "now".
func WithClock(now func() time.Time) Option {
	return func(s *Service) error {
		if now == nil {
			return ErrNilClock
		}

		s.now = now

		return nil
	}
}

// NewService creates a new Service.
//
// Plain functions are accepted after wrapping them as DragonsByRealmFunc and SightingsByRealmFunc.
func NewService(
	dragons FindsDragonsByRealm,
	sightings FindsSightingsByRealm,
	threshold time.Duration,
	opts ...Option,
) (Service, error) {

	if dragons == nil {
		return Service{}, ErrNilDragonSource
	}

	if sightings == nil {
		return Service{}, ErrNilSightingSource
	}

	if threshold < 0 {
		return Service{}, ErrNegativeThreshold
	}

	s := Service{
		dragons:   dragons,
		sightings: sightings,
		threshold: threshold,
		now:       time.Now,
	}

	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return Service{}, err
		}
	}

	return s, nil
}

// Threshold returns the configured recency threshold.
func (s Service) Threshold() time.Duration {
	return s.threshold
}

// FindRecentlySeen executes the complete query workflow: fetch dragons and sightings concurrently -> filter.
//
// The first error of either source is returned as is, and the other fetch is canceled.
func (s Service) FindRecentlySeen(ctx context.Context, realmID core.RealmID) (core.Dragons, error) {
	queryStart := time.Now()
	s.logQueryStart(realmID)

	var (
		dragons   core.Dragons
		sightings []core.DragonSighting
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		dragons, err = s.dragons.FindDragonsByRealm(groupCtx, realmID)

		return err
	})

	group.Go(func() error {
		var err error
		sightings, err = s.sightings.FindSightingsByRealm(groupCtx, realmID)

		return err
	})

	if err := group.Wait(); err != nil {
		s.logQueryError(realmID, err, time.Since(queryStart))

		return nil, err
	}

	result := FilterByLastSeenAt(dragons, sightings, s.threshold, s.now())

	s.logQuerySuccess(realmID, len(dragons), len(sightings), len(result), time.Since(queryStart))

	return result, nil
}

func (s Service) logQueryStart(realmID core.RealmID) {
	if s.logger != nil {
		s.logger.Debug(logMsgQueryStarted, logAttrQueryType, queryType, logAttrRealmID, realmID)
	}
}

func (s Service) logQuerySuccess(realmID core.RealmID, dragonCount, sightingCount, resultCount int, duration time.Duration) {
	if s.logger != nil {
		s.logger.Info(
			logMsgQueryCompleted,
			logAttrQueryType, queryType,
			logAttrRealmID, realmID,
			logAttrStatus, statusSuccess,
			logAttrDragonCount, dragonCount,
			logAttrSightingCount, sightingCount,
			logAttrResultCount, resultCount,
			logAttrDurationMS, toMilliseconds(duration),
		)
	}
}

func (s Service) logQueryError(realmID core.RealmID, err error, duration time.Duration) {
	if s.logger != nil {
		s.logger.Error(
			logMsgQueryFailed,
			logAttrQueryType, queryType,
			logAttrRealmID, realmID,
			logAttrStatus, statusFor(err),
			logAttrError, err.Error(),
			logAttrDurationMS, toMilliseconds(duration),
		)
	}
}

func statusFor(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return statusCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return statusTimeout
	default:
		return statusError
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
