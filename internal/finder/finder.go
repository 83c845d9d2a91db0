package finder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"flashfind/internal/domain"
)

const (
	flagAbsolutePath = "--absolute-path"
	flagRegex        = "--regex"

	// waitDelay bounds how long Search waits for output pipes after cancellation
	waitDelay = 2 * time.Second
)

// Searcher runs a query and returns the matching paths
type Searcher interface {
	Search(ctx context.Context, q domain.Query) (domain.ResultSet, error)
}

// Options configures an Executor
type Options struct {
	Binary    string   // fd executable name or path
	Dir       string   // working directory for the search, "" = current
	ExtraArgs []string // appended after the generated arguments
	Logger    zerolog.Logger
}

// Executor invokes the external fd binary
type Executor struct {
	binary string
	dir    string
	extra  []string
	log    zerolog.Logger
}

// New creates an executor
func New(opts Options) *Executor {
	binary := opts.Binary
	if binary == "" {
		binary = "fd"
	}
	return &Executor{
		binary: binary,
		dir:    opts.Dir,
		extra:  append([]string(nil), opts.ExtraArgs...),
		log:    opts.Logger,
	}
}

// BuildArgs returns the argument vector for a query, without the program name.
// The pattern comes last, after "--", so fd never reads it as an option.
func BuildArgs(q domain.Query, extra []string) []string {
	args := []string{flagAbsolutePath}
	if q.Regex {
		args = append(args, flagRegex)
	}
	args = append(args, extra...)
	return append(args, "--", q.Pattern)
}

// Search runs fd synchronously and parses its stdout
func (e *Executor) Search(ctx context.Context, q domain.Query) (domain.ResultSet, error) {
	if q.IsEmpty() {
		return nil, domain.ErrEmptyQuery
	}

	path, err := exec.LookPath(e.binary)
	if err != nil {
		e.log.Warn().Str("binary", e.binary).Err(err).Msg("fd not found")
		return nil, fmt.Errorf("%s: %w", e.binary, domain.ErrToolNotFound)
	}

	args := BuildArgs(q, e.extra)
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = e.dir
	cmd.WaitDelay = waitDelay

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	start := time.Now()
	out, err := cmd.Output()
	elapsed := time.Since(start)

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			e.log.Info().Strs("args", args).Dur("elapsed", elapsed).Msg("search cancelled")
			return nil, fmt.Errorf("search cancelled: %w", ctxErr)
		}
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", e.binary, domain.ErrToolNotFound)
		}
		e.log.Error().Strs("args", args).Str("stderr", stderr.String()).Err(err).Msg("search failed")
		return nil, &domain.ExecError{Args: args, Stderr: stderr.String(), Err: err}
	}

	results := ParseOutput(string(out))
	e.log.Info().Strs("args", args).Dur("elapsed", elapsed).Int("results", len(results)).Msg("search finished")
	return results, nil
}

// ParseOutput splits tool output into one result per line.
// Whitespace-only output is no results.
func ParseOutput(out string) domain.ResultSet {
	if strings.TrimSpace(out) == "" {
		return domain.ResultSet{}
	}
	lines := strings.Split(strings.TrimRight(out, "\r\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return domain.ResultSet(lines)
}
