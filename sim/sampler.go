package sim

import (
	"math/rand"
)

// ArrivalSampler generates inter-arrival gaps for the arrival process.
type ArrivalSampler interface {
	// SampleGap returns the next inter-arrival gap in simulation time units.
	// Always returns a positive value.
	SampleGap(rng *rand.Rand) float64
}

// ExponentialArrivals generates exponentially-distributed inter-arrival gaps,
// i.e. a Poisson arrival process with the given rate (customers per time unit).
type ExponentialArrivals struct {
	rate float64
}

// NewExponentialArrivals creates a Poisson arrival sampler.
// Rate must be > 0; Params.Validate enforces this before construction.
func NewExponentialArrivals(rate float64) *ExponentialArrivals {
	return &ExponentialArrivals{rate: rate}
}

func (s *ExponentialArrivals) SampleGap(rng *rand.Rand) float64 {
	// ExpFloat64 has mean 1; dividing by rate gives mean 1/rate.
	return rng.ExpFloat64() / s.rate
}

// ServiceSampler produces per-customer service durations.
type ServiceSampler interface {
	// SampleService returns the next service duration in simulation time units.
	// Always returns a positive value.
	SampleService(rng *rand.Rand) float64
}

// FixedService gives every customer the same service duration. This is the
// default: each checkout takes exactly the configured time, which makes every
// completed customer's system time equal to its wait plus the service time.
type FixedService struct {
	duration float64
}

// NewFixedService creates a constant-duration service sampler.
func NewFixedService(duration float64) *FixedService {
	return &FixedService{duration: duration}
}

func (s *FixedService) SampleService(_ *rand.Rand) float64 {
	return s.duration
}

// ExponentialService draws service durations from an exponential distribution
// with the given mean, turning the model from M/D/c into M/M/c. Selectable
// via scenario files only; the CLI default stays FixedService.
type ExponentialService struct {
	mean float64
}

// NewExponentialService creates an exponential service sampler.
// Mean must be > 0; scenario validation enforces this before construction.
func NewExponentialService(mean float64) *ExponentialService {
	return &ExponentialService{mean: mean}
}

func (s *ExponentialService) SampleService(rng *rand.Rand) float64 {
	return rng.ExpFloat64() * s.mean
}
