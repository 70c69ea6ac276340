//go:build windows

// Package main provides the netwall command-line tool. It collects the
// active adapter's network configuration and the host identity, renders
// them as a text block onto a bitmap, and applies it as the desktop
// background. One run, no daemon: intended for a login task.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"netwall/netinfo"
	"netwall/render"
	"netwall/report"
	"netwall/sysinfo"
	"netwall/wallpaper"
)

// outputName is the fixed file name under the temp directory, overwritten
// on each run.
const outputName = "netinfo_wallpaper.bmp"

func main() {
	// CLI flags
	defaults := render.DefaultOptions()
	width := flag.Int("width", defaults.Width, "canvas width in pixels")
	height := flag.Int("height", defaults.Height, "canvas height in pixels")
	marginRight := flag.Int("margin-right", defaults.MarginRight, "right margin of the text block in pixels")
	marginBottom := flag.Int("margin-bottom", defaults.MarginBottom, "bottom margin of the text block in pixels")
	out := flag.String("out", "", "output image path (default: netinfo_wallpaper.bmp in the temp directory)")
	verbose := flag.Bool("verbose", false, "enable debug output")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	opts := render.Options{
		Width:        *width,
		Height:       *height,
		MarginRight:  *marginRight,
		MarginBottom: *marginBottom,
	}

	path := *out
	if path == "" {
		path = filepath.Join(os.TempDir(), outputName)
	}

	if err := run(path, opts); err != nil {
		logrus.WithError(err).Fatal("netwall failed")
	}
}

// run drives the pipeline: collect network configuration, abort when no
// adapter qualifies, collect host identity, compose the text block, render
// the bitmap and apply it as wallpaper.
func run(path string, opts render.Options) error {
	info, ok, err := netinfo.Collect()
	if err != nil {
		return fmt.Errorf("failed to query network configuration: %w", err)
	}
	if !ok {
		// A normal outcome, not an error: nothing useful to display.
		logrus.Warn("no active network found")
		return nil
	}
	logrus.WithFields(logrus.Fields{
		"ip":      info.IP,
		"gateway": info.Gateway,
	}).Debug("selected adapter")

	sys := sysinfo.Collect(sysinfo.FromHost())
	text := report.Compose(*info, sys)

	if err := render.RenderToFile(text, path, opts); err != nil {
		return fmt.Errorf("failed to render wallpaper image: %w", err)
	}

	if err := wallpaper.Set(path); err != nil {
		return fmt.Errorf("failed to set wallpaper: %w", err)
	}

	logrus.Infof("wallpaper set: %s", path)
	return nil
}
