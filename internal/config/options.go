package config

// Defaults applied to any Options field left at its zero value.
const (
	DefaultBytes      = 56
	DefaultBackoff    = 1.5
	DefaultCount      = 1
	DefaultInterval   = 10
	DefaultPeriod     = 1000
	DefaultRetry      = 3
	DefaultTimeout    = 500
	DefaultDigits     = 3
	DefaultLossDigits = 4
)

// Options tunes a single probe run. The zero value of a field means "use the
// default"; negative values for the soft fields are clamped to zero during
// normalization. Timeout doubles as the loss sentinel: any probe without a
// parseable reply is recorded as Timeout milliseconds.
type Options struct {
	Bytes      int     `yaml:"bytes"`       // payload size in bytes, min 40
	Backoff    float64 `yaml:"backoff"`     // exponential backoff multiplier
	Count      int     `yaml:"count"`       // probes per target, min 1
	Interval   int     `yaml:"interval"`    // ms between sends
	Period     int     `yaml:"period"`      // ms between rounds to one target
	Retry      int     `yaml:"retry"`       // retry attempts per probe
	NoRandom   bool    `yaml:"no_random"`   // disable payload randomization
	Timeout    int     `yaml:"timeout"`     // ms per probe, also the loss sentinel
	Digits     int     `yaml:"digits"`      // decimal places for latency values
	LossDigits int     `yaml:"loss_digits"` // decimal places for the loss fraction, min 2
}

// DefaultOptions returns a fully populated Options value.
func DefaultOptions() Options {
	return Options{
		Bytes:      DefaultBytes,
		Backoff:    DefaultBackoff,
		Count:      DefaultCount,
		Interval:   DefaultInterval,
		Period:     DefaultPeriod,
		Retry:      DefaultRetry,
		Timeout:    DefaultTimeout,
		Digits:     DefaultDigits,
		LossDigits: DefaultLossDigits,
	}
}

// Normalized returns a copy with defaults filled in for zero fields and the
// soft fields clamped to their minimums. The receiver is never mutated, and
// nothing mutates an Options value after construction.
func (o Options) Normalized() Options {
	if o.Bytes == 0 {
		o.Bytes = DefaultBytes
	}
	if o.Backoff == 0 {
		o.Backoff = DefaultBackoff
	}
	if o.Backoff < 0 {
		o.Backoff = 0
	}
	if o.Count == 0 {
		o.Count = DefaultCount
	}
	if o.Interval == 0 {
		o.Interval = DefaultInterval
	} else if o.Interval < 0 {
		o.Interval = 0
	}
	if o.Period == 0 {
		o.Period = DefaultPeriod
	} else if o.Period < 0 {
		o.Period = 0
	}
	if o.Retry == 0 {
		o.Retry = DefaultRetry
	} else if o.Retry < 0 {
		o.Retry = 0
	}
	if o.Timeout == 0 {
		o.Timeout = DefaultTimeout
	} else if o.Timeout < 0 {
		o.Timeout = 0
	}
	if o.Digits == 0 {
		o.Digits = DefaultDigits
	} else if o.Digits < 0 {
		o.Digits = 0
	}
	if o.LossDigits == 0 {
		o.LossDigits = DefaultLossDigits
	}
	return o
}

// Validate checks the hard constraints. Callers should normalize first;
// soft fields are clamped there rather than rejected here.
func (o Options) Validate() error {
	if o.Bytes < 40 {
		return &InvalidOptionError{Reason: "Bytes must be at least 40 bytes"}
	}
	if o.Count <= 0 {
		return &InvalidOptionError{Reason: "Count must be >= 1"}
	}
	if o.LossDigits < 2 {
		return &InvalidOptionError{Reason: "lossDigits must be at least 2"}
	}
	return nil
}

// InvalidOptionError reports an option that violates a hard constraint.
type InvalidOptionError struct {
	Reason string
}

func (e *InvalidOptionError) Error() string {
	return "invalid option: " + e.Reason
}
