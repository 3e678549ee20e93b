package fping

import (
	"math"
	"strconv"
	"strings"

	"batchping/internal/config"
	"batchping/internal/models"
)

// ParseOutput converts the raw text of an fping run into a ResultSet. Each
// line has the shape "<host> : <sample> <sample> ...", one line per target
// that produced any output. Lines without the colon delimiter are dropped;
// parsing is best effort and never fails, so malformed lines never abort the
// run.
func ParseOutput(raw string, opts config.Options) models.ResultSet {
	results := make(models.ResultSet)

	for _, line := range strings.Split(raw, "\n") {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		host := strings.TrimSpace(parts[0])
		data := strings.TrimSpace(parts[1])
		if host == "" {
			continue
		}
		times := parseSamples(data, float64(opts.Timeout))
		results[host] = aggregate(host, times, opts)
	}

	return results
}

// parseSamples splits the data half of an output line on single spaces and
// parses each token as a latency in milliseconds. Any token that is not a
// number (fping prints "-" for an unanswered probe) becomes the timeout
// sentinel, so the sequence keeps one entry per probe sent.
func parseSamples(data string, timeout float64) []float64 {
	if data == "" {
		return nil
	}

	tokens := strings.Split(data, " ")
	times := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			v = timeout
		}
		times[i] = v
	}
	return times
}

// aggregate computes the per-target statistics over the sentinel-inclusive
// sample population. Received counts samples strictly below the timeout, so
// a genuine reply measured at exactly the timeout counts as lost; that
// boundary equivalence is intentional. The standard deviation is computed
// from the unrounded mean and always rounded to 3 digits, independent of the
// Digits option.
func aggregate(host string, times []float64, opts config.Options) models.Result {
	r := models.Result{
		Target: host,
		Sent:   len(times),
		Times:  times,
	}

	timeout := float64(opts.Timeout)
	for _, t := range times {
		if t < timeout {
			r.Received++
		}
	}

	if len(times) == 0 {
		// Zero-sample line: surface sent = 0 with undefined statistics
		// rather than an error.
		r.Loss = math.NaN()
		r.Min = math.NaN()
		r.Avg = math.NaN()
		r.Max = math.NaN()
		r.StdDev = math.NaN()
		return r
	}

	sum := 0.0
	min, max := times[0], times[0]
	for _, t := range times {
		sum += t
		if t < min {
			min = t
		}
		if t > max {
			max = t
		}
	}
	avg := sum / float64(len(times))

	var sq float64
	for _, t := range times {
		d := t - avg
		sq += d * d
	}

	r.Loss = round(1-float64(r.Received)/float64(r.Sent), opts.LossDigits)
	r.StdDev = round(math.Sqrt(sq/float64(len(times))), 3)
	r.Avg = round(avg, opts.Digits)
	r.Min = round(min, opts.Digits)
	r.Max = round(max, opts.Digits)
	for i := range times {
		times[i] = round(times[i], opts.Digits)
	}

	return r
}

// round rounds half away from zero to n fractional digits.
func round(v float64, n int) float64 {
	p := math.Pow(10, float64(n))
	return math.Round(v*p) / p
}
