//go:build windows
// +build windows

// Package sysinfo - Windows-specific implementation
package sysinfo

import (
	"os"
	"strings"
	"time"

	"golang.org/x/sys/windows/registry"
)

// FromHost reads the raw host facts from the process environment and OS
// metadata. It is called once at startup; the result feeds Collect.
func FromHost() Source {
	src := Source{
		User:   os.Getenv("USERNAME"),
		Domain: os.Getenv("USERDOMAIN"),
		OSName: getOSCaption(),
	}

	if hostname, err := os.Hostname(); err == nil {
		src.Hostname = hostname
	}

	return src
}

// getOSCaption retrieves the OS display name.
//
// Returns:
//   - The caption from WMI Win32_OperatingSystem (e.g., "Microsoft Windows 11 Pro")
//   - The registry ProductName as fallback if the CIM query fails
//   - "Windows" if both methods fail
func getOSCaption() string {
	// Try PowerShell/CIM first (recommended over WMIC) and parse JSON
	psCmd := "Get-CimInstance Win32_OperatingSystem | Select-Object -First 1 -Property Caption | ConvertTo-Json -Compress"
	var osInfo struct {
		Caption string
	}
	if _, err := runPowerShellJSON(psCmd, 1500*time.Millisecond, &osInfo); err == nil {
		if caption := strings.TrimSpace(osInfo.Caption); caption != "" {
			return caption
		}
	}

	// Try registry as fallback
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return "Windows"
	}
	defer func() { _ = k.Close() }()

	productName, _, err := k.GetStringValue("ProductName")
	if err != nil || productName == "" {
		return "Windows"
	}

	return productName
}
