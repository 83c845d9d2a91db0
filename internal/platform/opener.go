package platform

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/rs/zerolog"
)

// Opener hands a path to the operating system's default application
type Opener interface {
	Open(path string) error
}

// SystemOpener opens paths with the desktop's default handler
type SystemOpener struct {
	goos  string
	start func(name string, args ...string) error
	log   zerolog.Logger
}

// NewSystemOpener creates an opener for the running OS
func NewSystemOpener(log zerolog.Logger) *SystemOpener {
	o := &SystemOpener{goos: runtime.GOOS, log: log}
	o.start = o.startDetached
	return o
}

// OpenCommand returns the program and arguments used to open path on goos
func OpenCommand(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}

// Open launches the default handler for path without waiting for it to exit
func (o *SystemOpener) Open(path string) error {
	name, args := OpenCommand(o.goos, path)
	if err := o.start(name, args...); err != nil {
		return fmt.Errorf("open %s with %s: %w", path, name, err)
	}
	o.log.Debug().Str("path", path).Str("opener", name).Msg("opened")
	return nil
}

func (o *SystemOpener) startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			o.log.Warn().Str("opener", name).Strs("args", args).Err(err).Msg("opener exited with error")
		}
	}()
	return nil
}
