package platform

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{"linux", "xdg-open", []string{"/tmp/x"}},
		{"freebsd", "xdg-open", []string{"/tmp/x"}},
		{"darwin", "open", []string{"/tmp/x"}},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", "/tmp/x"}},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args := OpenCommand(tt.goos, "/tmp/x")
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestSystemOpenerOpen(t *testing.T) {
	var gotName string
	var gotArgs []string
	o := &SystemOpener{
		goos: "linux",
		log:  zerolog.Nop(),
		start: func(name string, args ...string) error {
			gotName, gotArgs = name, args
			return nil
		},
	}

	require.NoError(t, o.Open("/home/me/report.pdf"))
	assert.Equal(t, "xdg-open", gotName)
	assert.Equal(t, []string{"/home/me/report.pdf"}, gotArgs)
}

func TestSystemOpenerOpenError(t *testing.T) {
	o := &SystemOpener{
		goos:  "darwin",
		log:   zerolog.Nop(),
		start: func(string, ...string) error { return errors.New("boom") },
	}

	err := o.Open("/x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open /x with open")
}
