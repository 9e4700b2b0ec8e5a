// Package launch hands files and links to the operating system's default
// application.
package launch

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Launcher opens a file or URL with whatever the OS associates with it.
type Launcher interface {
	Launch(target string) error
}

// LauncherFunc adapts a function to Launcher.
type LauncherFunc func(target string) error

// Launch calls f(target).
func (f LauncherFunc) Launch(target string) error {
	return f(target)
}

// System launches through the platform opener and does not wait for it.
type System struct {
	// GOOS overrides runtime.GOOS; empty means the running platform.
	GOOS string
}

// Command builds the opener command for target without starting it.
func (s System) Command(target string) (*exec.Cmd, error) {
	goos := s.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	switch goos {
	case "darwin":
		return exec.Command("open", target), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", target), nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return exec.Command("xdg-open", target), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

// Launch starts the opener and releases it.
func (s System) Launch(target string) error {
	cmd, err := s.Command(target)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap in the background so the opener never lingers as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}

// Check reports whether the platform opener is installed.
func (s System) Check() error {
	cmd, err := s.Command("")
	if err != nil {
		return err
	}
	if _, err := exec.LookPath(cmd.Args[0]); err != nil {
		return fmt.Errorf("%s not found on PATH", cmd.Args[0])
	}
	return nil
}
