package partition

// Default option values.
const (
	DefaultMaxPasses = 16
	DefaultTolerance = 0.1
)

// defaultSeed replaces a zero seed so the default run is reproducible.
const defaultSeed int64 = 1

// Options configures Bipartition.
//
//   - MaxPasses: upper bound on FM passes; the driver also stops after the
//     first pass without a positive gain.
//   - Tolerance: each part must weigh within W·(0.5 ± Tolerance), where W
//     is the total cell weight.
//   - Initial:   optional starting assignment (0/1 per cell). When nil a
//     seeded random balanced split is used.
//   - Seed:      seed for the random split; 0 selects a fixed default.
//   - OnPass:    optional hook called after every pass.
type Options struct {
	MaxPasses int
	Tolerance float64
	Initial   []int
	Seed      int64
	OnPass    func(PassStats)
}

// Option mutates Options before a run.
type Option func(*Options)

// DefaultOptions returns the settings used when no Option is given.
func DefaultOptions() Options {
	return Options{
		MaxPasses: DefaultMaxPasses,
		Tolerance: DefaultTolerance,
	}
}

// WithMaxPasses bounds the number of passes. Panics if n < 1.
func WithMaxPasses(n int) Option {
	if n < 1 {
		panic("partition: WithMaxPasses(n < 1)")
	}
	return func(o *Options) { o.MaxPasses = n }
}

// WithBalanceTolerance sets the allowed deviation from an even split.
// Panics unless 0 <= tol < 0.5.
func WithBalanceTolerance(tol float64) Option {
	if tol < 0 || tol >= 0.5 {
		panic("partition: WithBalanceTolerance outside [0, 0.5)")
	}
	return func(o *Options) { o.Tolerance = tol }
}

// WithInitial starts from the given assignment instead of a random split.
// The slice is copied when the run starts.
func WithInitial(parts []int) Option {
	return func(o *Options) { o.Initial = parts }
}

// WithSeed seeds the random initial split.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithOnPass registers a hook called after every pass. Panics on nil.
func WithOnPass(fn func(PassStats)) Option {
	if fn == nil {
		panic("partition: WithOnPass(nil)")
	}
	return func(o *Options) { o.OnPass = fn }
}
