package diagnostic

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/conneroisu/subsea/internal/logging"
)

type options struct {
	logger logging.Logger
}

// Option configures a Filter or an Analyze call.
type Option func(*options)

// WithLogger routes debug output for filter rounds to logger.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func collectOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = logging.OrNop(o.logger)
	return o
}

// Report holds every value derived from a diagnostic record set.
type Report struct {
	Records               int    `json:"records" yaml:"records"`
	Width                 int    `json:"width" yaml:"width"`
	GammaRate             uint64 `json:"gamma_rate" yaml:"gamma_rate"`
	EpsilonRate           uint64 `json:"epsilon_rate" yaml:"epsilon_rate"`
	PowerConsumption      uint64 `json:"power_consumption" yaml:"power_consumption"`
	OxygenGeneratorRating uint64 `json:"oxygen_generator_rating" yaml:"oxygen_generator_rating"`
	CO2ScrubberRating     uint64 `json:"co2_scrubber_rating" yaml:"co2_scrubber_rating"`
	LifeSupportRating     uint64 `json:"life_support_rating" yaml:"life_support_rating"`

	OxygenTrace *Trace `json:"-" yaml:"-"`
	CO2Trace    *Trace `json:"-" yaml:"-"`
}

// Analyze computes the power consumption and life support figures for
// records. The oxygen and CO2 filters run concurrently over the same
// read-only index; the first failure cancels the other run.
func Analyze(ctx context.Context, records []Record, opts ...Option) (*Report, error) {
	filter, err := NewFilter(records, opts...)
	if err != nil {
		return nil, err
	}

	perf := logging.StartOperation(filter.logger, "analyze")

	table := filter.Frequencies()
	report := &Report{
		Records:          table.Total(),
		Width:            table.Width(),
		GammaRate:        table.GammaRate(),
		EpsilonRate:      table.EpsilonRate(),
		PowerConsumption: table.PowerConsumption(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		trace, err := filter.Trace(gctx, OxygenGenerator)
		if err != nil {
			return err
		}
		report.OxygenTrace = trace
		return nil
	})
	g.Go(func() error {
		trace, err := filter.Trace(gctx, CO2Scrubber)
		if err != nil {
			return err
		}
		report.CO2Trace = trace
		return nil
	})
	if err := g.Wait(); err != nil {
		perf.EndWithError(ctx, err)
		return nil, err
	}

	report.OxygenGeneratorRating = report.OxygenTrace.Value
	report.CO2ScrubberRating = report.CO2Trace.Value
	report.LifeSupportRating = report.OxygenGeneratorRating * report.CO2ScrubberRating

	perf.End(ctx)
	return report, nil
}
