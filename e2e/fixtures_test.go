//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateTestWorkspace creates a temporary directory the app runs in
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	tf.dir = tmpDir
	return tmpDir, nil
}

// CreateFiles creates empty files in the workspace and returns their absolute paths
func (tf *TUITestFramework) CreateFiles(names ...string) ([]string, error) {
	if tf.workspace == "" {
		return nil, fmt.Errorf("workspace not created")
	}

	var paths []string
	for _, name := range names {
		p := filepath.Join(tf.workspace, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return nil, err
		}
		if err := os.WriteFile(p, []byte(name+"\n"), 0o644); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// CreateFakeFd writes an fd stand-in that prints the given lines and
// records its arguments next to itself
func (tf *TUITestFramework) CreateFakeFd(lines ...string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	binDir := filepath.Join(tf.workspace, ".bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return "", err
	}

	var script strings.Builder
	script.WriteString("#!/bin/sh\n")
	fmt.Fprintf(&script, "printf '%%s\\n' \"$@\" > '%s'\n", filepath.Join(binDir, "fd.args"))
	for _, line := range lines {
		fmt.Fprintf(&script, "printf '%%s\\n' '%s'\n", line)
	}

	path := filepath.Join(binDir, "fd")
	if err := os.WriteFile(path, []byte(script.String()), 0o755); err != nil {
		return "", err
	}
	return path, nil
}

// FakeFdArgs returns the arguments of the last fake fd run
func (tf *TUITestFramework) FakeFdArgs() ([]string, error) {
	data, err := os.ReadFile(filepath.Join(tf.workspace, ".bin", "fd.args"))
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n"), nil
}

// ConfigPath is the config file used by StartWithFd
func (tf *TUITestFramework) ConfigPath() string {
	return filepath.Join(tf.workspace, ".config", "flashfind", "config.toml")
}

// StartWithFd starts the app against the workspace using the given fd binary
func (tf *TUITestFramework) StartWithFd(fd string, args ...string) error {
	base := []string{"--fd", fd, "-d", tf.workspace, "--config", tf.ConfigPath()}
	return tf.StartApp(append(base, args...)...)
}
