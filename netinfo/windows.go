//go:build windows
// +build windows

// Package netinfo - Windows adapter enumeration
package netinfo

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// IP_ADAPTER_DHCP_ENABLED bit in IpAdapterAddresses.Flags (not exported
// by x/sys/windows).
const ipAdapterDHCPEnabled = 0x00000004

// Collect queries the OS adapter table and returns the configuration of
// the first adapter that is operationally up and has an IPv4 default
// gateway. Adapters keep the OS enumeration order; no tie-break is applied
// on multi-homed hosts.
//
// Returns:
//   - The collected NetworkInfo, or nil when no adapter qualifies
//   - false when no adapter qualifies (a normal outcome, not an error)
//   - An error only when the underlying OS query fails
func Collect() (*NetworkInfo, bool, error) {
	adapters, err := enumerateAdapters()
	if err != nil {
		return nil, false, err
	}
	return firstActive(adapters)
}

// enumerateAdapters walks the Windows IPv4 adapter table via
// GetAdaptersAddresses and returns one snapshot per adapter, in OS order.
//
// Returns:
//   - A slice of adapter snapshots (loopback adapters excluded)
//   - An error if the iphlpapi query fails
func enumerateAdapters() ([]adapter, error) {
	const flags = windows.GAA_FLAG_INCLUDE_PREFIX | windows.GAA_FLAG_INCLUDE_GATEWAYS

	// Start with a 16 KiB buffer and grow to whatever the API asks for.
	size := uint32(16 * 1024)
	var buf []byte
	for attempt := 0; ; attempt++ {
		buf = make([]byte, size)
		err := windows.GetAdaptersAddresses(windows.AF_INET, flags, 0,
			(*windows.IpAdapterAddresses)(unsafe.Pointer(&buf[0])), &size)
		if err == nil {
			break
		}
		if err != windows.ERROR_BUFFER_OVERFLOW || attempt >= 2 {
			return nil, fmt.Errorf("GetAdaptersAddresses failed: %w", err)
		}
	}
	if size == 0 {
		return nil, nil
	}

	var adapters []adapter
	for aa := (*windows.IpAdapterAddresses)(unsafe.Pointer(&buf[0])); aa != nil; aa = aa.Next {
		if aa.IfType == windows.IF_TYPE_SOFTWARE_LOOPBACK {
			continue
		}

		a := adapter{
			up:          aa.OperStatus == windows.IfOperStatusUp,
			dhcpEnabled: aa.Flags&ipAdapterDHCPEnabled != 0,
		}

		if gw := aa.FirstGatewayAddress; gw != nil {
			if ip4 := gw.Address.IP().To4(); ip4 != nil {
				a.gateway = ip4.String()
			}
		}

		// First bound IPv4 address and its on-link prefix length.
		for ua := aa.FirstUnicastAddress; ua != nil; ua = ua.Next {
			ip4 := ua.Address.IP().To4()
			if ip4 == nil {
				continue
			}
			a.ip = ip4.String()
			a.prefix = int(ua.OnLinkPrefixLength)
			break
		}

		for dns := aa.FirstDnsServerAddress; dns != nil && len(a.dns) < 2; dns = dns.Next {
			if ip4 := dns.Address.IP().To4(); ip4 != nil {
				a.dns = append(a.dns, ip4.String())
			}
		}

		if a.dhcpEnabled {
			if ip4 := aa.Dhcpv4Server.IP().To4(); ip4 != nil {
				a.dhcpServer = ip4.String()
			}
		}

		adapters = append(adapters, a)
	}

	return adapters, nil
}
