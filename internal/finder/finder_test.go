package finder

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flashfind/internal/domain"
)

// fakeFd writes an executable shell script standing in for fd.
// It records its arguments (one per line) to $FAKE_FD_ARGS before running body.
func fakeFd(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fakes need a unix shell")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "fd")
	script := "#!/bin/sh\nif [ -n \"$FAKE_FD_ARGS\" ]; then printf '%s\\n' \"$@\" > \"$FAKE_FD_ARGS\"; fi\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func argsFile(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "args")
	t.Setenv("FAKE_FD_ARGS", p)
	return p
}

func readArgs(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name  string
		query domain.Query
		extra []string
		want  []string
	}{
		{
			name:  "plain",
			query: domain.Query{Pattern: "report"},
			want:  []string{"--absolute-path", "--", "report"},
		},
		{
			name:  "regex",
			query: domain.Query{Pattern: `^main\.go$`, Regex: true},
			want:  []string{"--absolute-path", "--regex", "--", `^main\.go$`},
		},
		{
			name:  "extra args after generated ones",
			query: domain.Query{Pattern: "x", Regex: true},
			extra: []string{"--hidden"},
			want:  []string{"--absolute-path", "--regex", "--hidden", "--", "x"},
		},
		{
			name:  "shell metacharacters stay literal",
			query: domain.Query{Pattern: "a b;rm -rf"},
			want:  []string{"--absolute-path", "--", "a b;rm -rf"},
		},
		{
			name:  "leading dash is still the pattern",
			query: domain.Query{Pattern: "-H"},
			want:  []string{"--absolute-path", "--", "-H"},
		},
		{
			name:  "long option lookalike",
			query: domain.Query{Pattern: "--exec", Regex: true},
			want:  []string{"--absolute-path", "--regex", "--", "--exec"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildArgs(tt.query, tt.extra)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, got, "--absolute-path")
			assert.Equal(t, tt.query.Regex, contains(got[:len(got)-1], "--regex"))
			assert.Equal(t, tt.query.Pattern, got[len(got)-1])
			assert.Equal(t, "--", got[len(got)-2])
		})
	}
}

func contains(args []string, s string) bool {
	for _, a := range args {
		if a == s {
			return true
		}
	}
	return false
}

func TestParseOutput(t *testing.T) {
	assert.Empty(t, ParseOutput(""))
	assert.Empty(t, ParseOutput("\n  \n"))
	assert.Equal(t, domain.ResultSet{"/a/b.txt", "/c/d.txt"}, ParseOutput("/a/b.txt\n/c/d.txt\n"))
	assert.Equal(t, domain.ResultSet{"/a", "/b"}, ParseOutput("/a\r\n/b\r\n"))
	assert.Equal(t, domain.ResultSet{"/with space/x"}, ParseOutput("/with space/x"))
	assert.Equal(t, domain.ResultSet{"/a", "", "/b"}, ParseOutput("/a\n\n/b\n"))
}

func TestSearchEmptyQueryDoesNotRun(t *testing.T) {
	args := argsFile(t)
	e := New(Options{Binary: fakeFd(t, "echo /should/not/run")})

	_, err := e.Search(context.Background(), domain.NewQuery("   ", true))
	require.ErrorIs(t, err, domain.ErrEmptyQuery)

	_, statErr := os.Stat(args)
	assert.True(t, os.IsNotExist(statErr), "fd must not be invoked for an empty query")
}

func TestSearchToolNotFound(t *testing.T) {
	e := New(Options{Binary: filepath.Join(t.TempDir(), "missing-fd")})

	_, err := e.Search(context.Background(), domain.NewQuery("x", false))
	require.ErrorIs(t, err, domain.ErrToolNotFound)
}

func TestSearchReturnsLines(t *testing.T) {
	args := argsFile(t)
	e := New(Options{
		Binary: fakeFd(t, "printf '/tmp/a.txt\\n/tmp/b.txt\\n/tmp/c dir\\n'"),
		Logger: zerolog.Nop(),
	})

	results, err := e.Search(context.Background(), domain.NewQuery("txt", true))
	require.NoError(t, err)
	assert.Equal(t, domain.ResultSet{"/tmp/a.txt", "/tmp/b.txt", "/tmp/c dir"}, results)
	assert.Equal(t, []string{"--absolute-path", "--regex", "--", "txt"}, readArgs(t, args))
}

func TestSearchWithoutRegexFlag(t *testing.T) {
	args := argsFile(t)
	e := New(Options{Binary: fakeFd(t, "true")})

	_, err := e.Search(context.Background(), domain.NewQuery("notes", false))
	require.NoError(t, err)
	assert.Equal(t, []string{"--absolute-path", "--", "notes"}, readArgs(t, args))
}

func TestSearchDashPatternIsNotAnOption(t *testing.T) {
	// Reports options and the positional pattern the way fd's parser sees them
	e := New(Options{Binary: fakeFd(t, `while [ $# -gt 0 ]; do
  case "$1" in
    --) shift; echo "pattern: $1"; shift ;;
    -*) echo "option: $1"; shift ;;
    *) echo "pattern: $1"; shift ;;
  esac
done`)})

	for _, pattern := range []string{"--version", "-H", "-x"} {
		results, err := e.Search(context.Background(), domain.NewQuery(pattern, false))
		require.NoError(t, err)
		assert.Equal(t, domain.ResultSet{"option: --absolute-path", "pattern: " + pattern}, results)
	}
}

func TestSearchEmptyOutput(t *testing.T) {
	e := New(Options{Binary: fakeFd(t, "exit 0")})

	results, err := e.Search(context.Background(), domain.NewQuery("nothing", false))
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchNonZeroExit(t *testing.T) {
	e := New(Options{Binary: fakeFd(t, "echo 'regex parse error' >&2\nexit 2")})

	_, err := e.Search(context.Background(), domain.NewQuery("[", true))
	require.Error(t, err)

	var execErr *domain.ExecError
	require.True(t, errors.As(err, &execErr))
	assert.Contains(t, execErr.Stderr, "regex parse error")
	assert.Contains(t, err.Error(), "exit status 2")
}

func TestSearchRunsInConfiguredDir(t *testing.T) {
	dir := t.TempDir()
	e := New(Options{Binary: fakeFd(t, "pwd"), Dir: dir})

	results, err := e.Search(context.Background(), domain.NewQuery("x", false))
	require.NoError(t, err)
	require.Len(t, results, 1)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(results[0])
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSearchCancelled(t *testing.T) {
	e := New(Options{Binary: fakeFd(t, "exec sleep 5")})

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	start := time.Now()
	_, err := e.Search(ctx, domain.NewQuery("slow", false))
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 4*time.Second)
}
