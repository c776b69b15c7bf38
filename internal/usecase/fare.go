package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/flight-search/ryanair-api/internal/domain"
	"github.com/flight-search/ryanair-api/internal/infrastructure/timeutil"
)

// FareUseCase defines the fare queries exposed by the API.
type FareUseCase interface {
	// CheapestPerDay returns the provider's cheapest fares for the month containing startDate.
	CheapestPerDay(ctx context.Context, from, to, startDate, currency string) (*domain.CheapestFares, error)

	// DailyFaresInRange returns the bookable fare of each day between startDate and endDate inclusive.
	DailyFaresInRange(ctx context.Context, from, to, startDate, endDate, currency string) ([]domain.Fare, error)

	// CheapestRoundTrip returns up to limit outbound/inbound pairs within the range, cheapest first.
	CheapestRoundTrip(ctx context.Context, from, to, startDate, endDate, currency string, limit int) ([]domain.RoundTrip, error)
}

type fareUseCase struct {
	provider       domain.FareProvider
	maxConcurrency int
	queryTimeout   time.Duration
}

// NewFareUseCase creates a FareUseCase backed by provider.
// If config is nil, default values are used.
func NewFareUseCase(provider domain.FareProvider, config *Config) FareUseCase {
	cfg := config.withDefaults()
	return &fareUseCase{
		provider:       provider,
		maxConcurrency: cfg.MaxConcurrency,
		queryTimeout:   cfg.QueryTimeout,
	}
}

func (uc *fareUseCase) CheapestPerDay(ctx context.Context, from, to, startDate, currency string) (*domain.CheapestFares, error) {
	return uc.provider.CheapestPerDay(ctx, from, to, startDate, currencyOrDefault(currency))
}

func (uc *fareUseCase) DailyFaresInRange(ctx context.Context, from, to, startDate, endDate, currency string) ([]domain.Fare, error) {
	if err := checkRange(startDate, endDate); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.queryTimeout)
	defer cancel()

	return uc.dailyFares(ctx, from, to, startDate, endDate, currencyOrDefault(currency))
}

func (uc *fareUseCase) CheapestRoundTrip(ctx context.Context, from, to, startDate, endDate, currency string, limit int) ([]domain.RoundTrip, error) {
	if err := checkRange(startDate, endDate); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultRoundTripLimit
	}
	currency = currencyOrDefault(currency)

	ctx, cancel := context.WithTimeout(ctx, uc.queryTimeout)
	defer cancel()

	var outbound, inbound []domain.Fare
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		outbound, err = uc.dailyFares(gctx, from, to, startDate, endDate, currency)
		return err
	})
	g.Go(func() error {
		var err error
		inbound, err = uc.dailyFares(gctx, to, from, startDate, endDate, currency)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	trips := make([]domain.RoundTrip, 0)
	for _, out := range outbound {
		for _, in := range inbound {
			if in.Day >= out.Day {
				trips = append(trips, domain.NewRoundTrip(out, in))
			}
		}
	}

	sort.SliceStable(trips, func(i, j int) bool {
		return trips[i].TotalPrice.Value < trips[j].TotalPrice.Value
	})

	if len(trips) > limit {
		trips = trips[:limit]
	}
	return trips, nil
}

// dailyFares fetches every month touched by the range and keeps the bookable days inside it.
func (uc *fareUseCase) dailyFares(ctx context.Context, from, to, startDate, endDate, currency string) ([]domain.Fare, error) {
	start, _ := timeutil.ParseDate(startDate)
	end, _ := timeutil.ParseDate(endDate)
	months := timeutil.MonthsBetween(start, end)

	monthly := make([][]domain.Fare, len(months))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.maxConcurrency)

	for i, month := range months {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("fare query panic: %v", r)
				}
			}()

			fares, err := uc.provider.CheapestPerDay(gctx, from, to, timeutil.FormatDate(month), currency)
			if err != nil {
				return err
			}
			if fares != nil {
				monthly[i] = fares.Outbound.Fares
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]domain.Fare, 0)
	for _, fares := range monthly {
		for _, f := range fares {
			if f.Day >= startDate && f.Day <= endDate && f.Bookable() {
				result = append(result, f)
			}
		}
	}
	return result, nil
}

// checkRange rejects malformed or inverted date ranges.
func checkRange(startDate, endDate string) error {
	start, err := timeutil.ParseDate(startDate)
	if err != nil {
		return domain.NewValidationError("startDate", "Dates must be in YYYY-MM-DD format: startDate")
	}
	end, err := timeutil.ParseDate(endDate)
	if err != nil {
		return domain.NewValidationError("endDate", "Dates must be in YYYY-MM-DD format: endDate")
	}
	if start.After(end) {
		return domain.NewValidationError("", "Start date must be before or equal to end date")
	}
	return nil
}

func currencyOrDefault(currency string) string {
	if currency == "" {
		return domain.DefaultCurrency
	}
	return currency
}
