// Package browser wraps headless Chromium behind a small engine
// interface so probes can be tested without a real browser process.
package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Engine launches headless browser instances.
type Engine interface {
	Launch(ctx context.Context) (Instance, error)
}

// Instance is a single running browser, torn down with Close.
type Instance interface {
	Version() (string, error)
	Navigate(url string, timeout time.Duration) error
	Close() error
}

// RodEngine launches headless Chromium via go-rod.
type RodEngine struct {
	Bin string // optional browser binary override
}

// Launch starts a headless browser and connects to it.
func (e *RodEngine) Launch(ctx context.Context) (Instance, error) {
	l := launcher.New().Headless(true)
	if e.Bin != "" {
		l = l.Bin(e.Bin)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	b := rod.New().ControlURL(controlURL).Context(ctx)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connect to browser: %w", err)
	}

	return &rodInstance{browser: b, launcher: l}, nil
}

type rodInstance struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

// Version reports the browser product string, e.g. "Chrome/120.0.6099.109".
func (i *rodInstance) Version() (string, error) {
	v, err := i.browser.Version()
	if err != nil {
		return "", err
	}
	return v.Product, nil
}

// Navigate opens a fresh page and loads url, waiting at most timeout
// for the navigation and load event together.
func (i *rodInstance) Navigate(url string, timeout time.Duration) error {
	page, err := i.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return fmt.Errorf("open page: %w", err)
	}
	defer func() { _ = page.Close() }()

	page = page.Timeout(timeout)
	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	return page.WaitLoad()
}

// Close shuts the browser down and cleans up the launcher's resources.
func (i *rodInstance) Close() error {
	err := i.browser.Close()
	i.launcher.Cleanup()
	return err
}
