package projection

import "github.com/katalvlaran/newton/vector"

// config holds the tunable parameters shared by the iterative projectors in
// this package. Unexported; built only via defaultConfig + Option.
type config struct {
	tolerance     float64
	maxIterations int
}

func defaultConfig() config {
	return config{tolerance: vector.Tolerance, maxIterations: 100}
}

// Option configures a Dykstra/alternating projection call. Options validate
// and panic on invalid input at configuration time; the algorithms
// themselves never panic, matching the functional-options discipline used
// throughout this module's ancestry (matrix.Option, builder.GraphOption).
type Option func(*config)

// WithTolerance overrides the convergence tolerance τ. Panics if tol <= 0.
func WithTolerance(tol float64) Option {
	if tol <= 0 {
		panic("projection: WithTolerance requires tol > 0")
	}
	return func(c *config) { c.tolerance = tol }
}

// WithMaxIterations overrides the iteration cap I_max. Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic("projection: WithMaxIterations requires n > 0")
	}
	return func(c *config) { c.maxIterations = n }
}

func apply(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
