package fping

import (
	"bytes"
	"context"
	"errors"
	"net/netip"
	"os/exec"
	"strconv"

	"batchping/internal/config"
	"batchping/internal/models"
)

// Binary is the name of the external batch-ping tool resolved on PATH.
const Binary = "fping"

// ValidateTargets checks that every target is a syntactically valid IPv4 or
// IPv6 address and returns the canonical address strings in input order.
// The first invalid target aborts with an InvalidTargetError.
func ValidateTargets(targets []string) ([]string, error) {
	valid := make([]string, 0, len(targets))
	for _, t := range targets {
		addr, err := netip.ParseAddr(t)
		if err != nil {
			return nil, &InvalidTargetError{Target: t, Err: err}
		}
		valid = append(valid, addr.String())
	}
	return valid, nil
}

// BuildArgs assembles the fping argument list for normalized options and
// validated targets, in the tool's expected order.
func BuildArgs(opts config.Options, targets []string) []string {
	args := []string{
		"-A", "-q",
		"-b", strconv.Itoa(opts.Bytes),
		"-B", strconv.FormatFloat(opts.Backoff, 'f', -1, 64),
		"-C", strconv.Itoa(opts.Count),
		"-i", strconv.Itoa(opts.Interval),
		"-p", strconv.Itoa(opts.Period),
		"-r", strconv.Itoa(opts.Retry),
		"-t", strconv.Itoa(opts.Timeout),
	}
	if !opts.NoRandom {
		args = append(args, "-R")
	}
	return append(args, targets...)
}

// Prober runs fping invocations and aggregates their output
type Prober struct {
	runner models.Runner
	look   func(name string) (string, error)
}

// New creates a Prober backed by a real subprocess runner.
func New() *Prober {
	return &Prober{runner: execRunner{}, look: exec.LookPath}
}

// NewWithRunner creates a Prober with a custom runner, so callers can feed
// captured fixture output instead of spawning a subprocess. The PATH lookup
// is skipped since no real binary is involved.
func NewWithRunner(r models.Runner) *Prober {
	return &Prober{
		runner: r,
		look:   func(name string) (string, error) { return name, nil },
	}
}

// Probe validates the options and targets, invokes fping once covering the
// whole target list, and parses its output into a ResultSet. Validation and
// tool-location failures abort before any subprocess is spawned; once the
// tool has run, the call completes with whatever output parsed.
func (p *Prober) Probe(ctx context.Context, targets []string, opts config.Options) (models.ResultSet, error) {
	opts = opts.Normalized()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	valid, err := ValidateTargets(targets)
	if err != nil {
		return nil, err
	}

	path, err := p.look(Binary)
	if err != nil {
		return nil, ErrToolNotFound
	}

	raw, err := p.runner.Run(ctx, path, BuildArgs(opts, valid))
	if err != nil {
		return nil, err
	}

	return ParseOutput(raw, opts), nil
}

// execRunner spawns the tool as a subprocess. fping writes its per-target
// summary to stderr and exits non-zero whenever probes are lost, so stdout
// is preferred when non-empty, stderr otherwise, and exit codes are not
// inspected. Only failures to start the process propagate.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, path string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", err
		}
	}

	if stdout.Len() > 0 {
		return stdout.String(), nil
	}
	return stderr.String(), nil
}
