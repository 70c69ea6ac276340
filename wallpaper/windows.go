//go:build windows
// +build windows

// Package wallpaper - Windows-specific implementation
package wallpaper

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

var (
	moduser32 = windows.NewLazySystemDLL("user32.dll")

	procSystemParametersInfoW         = moduser32.NewProc("SystemParametersInfoW")
	procUpdatePerUserSystemParameters = moduser32.NewProc("UpdatePerUserSystemParameters")
)

const (
	spiSetDeskWallpaper  = 0x0014
	spifUpdateINIFile    = 0x0001
	spifSendWinIniChange = 0x0002
)

// desktopKeyPath is the per-user desktop-background configuration store.
const desktopKeyPath = `Control Panel\Desktop`

// Set applies the image at path as the desktop background, falling back to
// a registry write plus a forced parameter reload if the direct call fails.
func Set(path string) error {
	return newSetter(winAPI{}, settleDelay).set(path)
}

// winAPI implements applyAPI against user32.dll and the registry.
type winAPI struct{}

var _ applyAPI = winAPI{}

func (winAPI) SetDesktopWallpaper(path string) ApplyResult {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return ApplyResult{Reason: err.Error()}
	}

	ret, _, callErr := procSystemParametersInfoW.Call(
		uintptr(spiSetDeskWallpaper),
		0,
		uintptr(unsafe.Pointer(p)),
		uintptr(spifUpdateINIFile|spifSendWinIniChange),
	)
	if ret == 0 {
		reason := "SystemParametersInfoW returned FALSE"
		if callErr != nil && callErr != syscall.Errno(0) {
			reason = callErr.Error()
		}
		return ApplyResult{Reason: reason}
	}

	return ApplyResult{OK: true}
}

func (winAPI) WriteWallpaperSetting(path string) error {
	k, err := registry.OpenKey(registry.CURRENT_USER, desktopKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to open desktop key: %w", err)
	}
	defer func() { _ = k.Close() }()

	if err := k.SetStringValue("Wallpaper", path); err != nil {
		return fmt.Errorf("failed to set Wallpaper value: %w", err)
	}
	return nil
}

func (winAPI) ReloadUserParameters() error {
	// Same entry point rundll32 user32.dll,UpdatePerUserSystemParameters uses.
	ret, _, callErr := procUpdatePerUserSystemParameters.Call(uintptr(1), uintptr(1))
	if ret == 0 {
		if callErr != nil && callErr != syscall.Errno(0) {
			return fmt.Errorf("UpdatePerUserSystemParameters failed: %w", callErr)
		}
		return fmt.Errorf("UpdatePerUserSystemParameters returned FALSE")
	}
	return nil
}
