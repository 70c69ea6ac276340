// Package wallpaper applies an image file as the desktop background,
// with a registry-write fallback when the direct system call fails.
package wallpaper

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// ApplyResult carries the outcome of the boolean-success win32 apply call,
// with the failure reason made explicit instead of an implicit last-error.
type ApplyResult struct {
	OK     bool
	Reason string
}

// applyAPI is the OS surface the setter drives. The Windows implementation
// lives behind the windows build tag; tests substitute a fake.
type applyAPI interface {
	// SetDesktopWallpaper invokes the direct wallpaper-apply system call,
	// requesting immediate application and persistence across sessions.
	SetDesktopWallpaper(path string) ApplyResult

	// WriteWallpaperSetting writes the path into the user's
	// desktop-background configuration store.
	WriteWallpaperSetting(path string) error

	// ReloadUserParameters forces running desktop sessions to reload their
	// per-user system parameters from the store.
	ReloadUserParameters() error
}

// settleDelay gives the configuration-store write time to land before the
// reload call on the fallback path.
const settleDelay = 500 * time.Millisecond

type setter struct {
	api    applyAPI
	settle time.Duration
	log    *logrus.Entry
}

func newSetter(api applyAPI, settle time.Duration) *setter {
	return &setter{
		api:    api,
		settle: settle,
		log:    logrus.WithField("component", "wallpaper"),
	}
}

// set applies the image at path as the desktop background. The direct call
// is always attempted first; the fallback runs only when it reports failure.
func (s *setter) set(path string) error {
	res := s.api.SetDesktopWallpaper(path)
	if res.OK {
		return nil
	}

	s.log.WithField("reason", res.Reason).Warn("wallpaper API failed, trying alternate method")

	if err := s.api.WriteWallpaperSetting(path); err != nil {
		return fmt.Errorf("failed to write wallpaper setting: %w", err)
	}
	time.Sleep(s.settle)
	if err := s.api.ReloadUserParameters(); err != nil {
		return fmt.Errorf("failed to reload user parameters: %w", err)
	}

	return nil
}
