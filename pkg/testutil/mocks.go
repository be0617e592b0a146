package testutil

import (
	"context"
	"strings"
	"time"

	"github.com/verneri/envdoctor/pkg/browser"
)

// FakeEngine is a test double for browser.Engine.
type FakeEngine struct {
	LaunchErr error
	Instance  *FakeInstance
	Launches  int
}

func (e *FakeEngine) Launch(_ context.Context) (browser.Instance, error) {
	e.Launches++
	if e.LaunchErr != nil {
		return nil, e.LaunchErr
	}
	if e.Instance == nil {
		e.Instance = &FakeInstance{}
	}
	return e.Instance, nil
}

// FakeInstance is a test double for browser.Instance.
type FakeInstance struct {
	VersionValue string
	VersionErr   error
	NavigateErr  error
	CloseErr     error

	NavigatedURL    string
	NavigateTimeout time.Duration
	Closed          bool
}

func (i *FakeInstance) Version() (string, error) {
	return i.VersionValue, i.VersionErr
}

func (i *FakeInstance) Navigate(url string, timeout time.Duration) error {
	i.NavigatedURL = url
	i.NavigateTimeout = timeout
	return i.NavigateErr
}

func (i *FakeInstance) Close() error {
	i.Closed = true
	return i.CloseErr
}

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}
