package accessibility

import (
	"time"

	"github.com/hashicorp/go-hclog"
)

// Options tunes validation policy.
type Options struct {
	// WarnInformationalPairs emits low-severity warnings for failing
	// secondary/background and accent/background pairs, which are otherwise
	// only recorded in ContrastRatios.
	WarnInformationalPairs bool
}

// Validator runs the scheme, typography and theme checks. It holds no
// per-call state and is safe for concurrent use.
type Validator struct {
	opts   Options
	now    func() time.Time
	logger hclog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithOptions sets the validation policy.
func WithOptions(opts Options) Option {
	return func(v *Validator) { v.opts = opts }
}

// WithClock overrides the clock used for Results.LastValidated.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

// WithLogger sets the logger used for trace output.
func WithLogger(logger hclog.Logger) Option {
	return func(v *Validator) { v.logger = logger.Named("accessibility") }
}

// New creates a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{
		now:    time.Now,
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Options returns the validator's policy.
func (v *Validator) Options() Options {
	return v.opts
}

var defaultValidator = New()
