// Package sysinfo provides host identity information: hostname, user,
// domain and the operating system display name.
package sysinfo

import "strings"

// vendorPrefix is the vendor name token stripped from the OS display name.
const vendorPrefix = "microsoft"

// SystemInfo represents the identity of the host and session.
type SystemInfo struct {
	// Hostname is the computer's network name
	Hostname string

	// User is the current logged-in user's name
	User string

	// Domain is the domain or workgroup name
	Domain string

	// OS is the operating system display name, vendor prefix stripped
	OS string
}

// Source holds the raw host facts, read once at startup so Collect stays
// testable without a real OS environment.
type Source struct {
	Hostname string
	User     string
	Domain   string
	OSName   string
}

// Collect builds a SystemInfo from raw host facts. The OS display name
// has the vendor prefix removed; empty fields degrade to "Unknown".
func Collect(src Source) SystemInfo {
	info := SystemInfo{
		Hostname: src.Hostname,
		User:     src.User,
		Domain:   src.Domain,
		OS:       StripVendorPrefix(src.OSName),
	}

	if info.Hostname == "" {
		info.Hostname = "Unknown"
	}
	if info.User == "" {
		info.User = "Unknown"
	}
	if info.Domain == "" {
		info.Domain = "Unknown"
	}
	if info.OS == "" {
		info.OS = "Unknown"
	}

	return info
}

// StripVendorPrefix removes the vendor name token from an OS display name,
// case-insensitively, and collapses the surrounding whitespace.
//
// Example: StripVendorPrefix("Microsoft Windows 11 Pro") returns
// "Windows 11 Pro".
func StripVendorPrefix(name string) string {
	idx := strings.Index(strings.ToLower(name), vendorPrefix)
	if idx < 0 {
		return strings.TrimSpace(name)
	}

	before := strings.TrimSpace(name[:idx])
	after := strings.TrimSpace(name[idx+len(vendorPrefix):])

	if before == "" {
		return after
	}
	if after == "" {
		return before
	}
	return before + " " + after
}
