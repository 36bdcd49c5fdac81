package utcore

import (
	"github.com/blockspacer/utcore/distance"
	"github.com/blockspacer/utcore/kmeans"
)

type options struct {
	seedMetric   distance.Metric
	assignMetric distance.Metric
	logger       *Logger
	engineOpts   []kmeans.Option
}

func defaultOptions() options {
	return options{
		seedMetric:   distance.MetricSquaredL2,
		assignMetric: distance.MetricSquaredL2,
		logger:       NoopLogger(),
	}
}

// Option configures a Clusterer.
type Option func(*options)

// WithMetric configures the distance metric used for both seeding and
// assignment.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.seedMetric = m
		o.assignMetric = m
	}
}

// WithSeedMetric configures a separate metric for probability-weighted
// seeding, keeping the assignment metric unchanged.
func WithSeedMetric(m distance.Metric) Option {
	return func(o *options) {
		o.seedMetric = m
	}
}

// WithLogger configures structured logging.
//
// If nil is passed, logging is disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithEngineOptions forwards options to the underlying kmeans engine
// (epsilon, iteration budget, seeding strategy, empty-cluster policy,
// random source).
func WithEngineOptions(optFns ...kmeans.Option) Option {
	return func(o *options) {
		o.engineOpts = append(o.engineOpts, optFns...)
	}
}
