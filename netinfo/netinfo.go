// Package netinfo collects IPv4 configuration for the active network
// adapter: gateway, address, subnet mask, DNS and DHCP servers.
package netinfo

// None is the sentinel for a value the adapter does not report.
// Absent fields always carry this sentinel, never an empty string.
const None = "None"

// NetworkInfo holds the IPv4 configuration of the selected adapter.
// All fields are plain display strings; absent values hold None.
type NetworkInfo struct {
	// Gateway is the default gateway next-hop address
	Gateway string

	// IP is the first IPv4 address bound to the adapter
	IP string

	// Mask is the dotted-decimal subnet mask derived from the prefix length
	Mask string

	// DNS1 is the preferred DNS server, or None
	DNS1 string

	// DNS2 is the alternate DNS server, or None
	DNS2 string

	// DHCP is the DHCP server address, or None when the adapter is
	// statically configured
	DHCP string
}

// adapter is a platform-neutral snapshot of one network adapter, produced
// by the OS-specific enumeration and consumed by firstActive.
type adapter struct {
	up          bool
	gateway     string
	ip          string
	prefix      int
	dns         []string
	dhcpEnabled bool
	dhcpServer  string
}

// firstActive selects the first up adapter with a gateway and maps it to
// a NetworkInfo, applying the None sentinel for absent DNS/DHCP values.
func firstActive(adapters []adapter) (*NetworkInfo, bool, error) {
	for _, a := range adapters {
		if !a.up || a.gateway == "" {
			continue
		}

		mask, err := MaskFromPrefix(a.prefix)
		if err != nil {
			return nil, false, err
		}

		info := &NetworkInfo{
			Gateway: a.gateway,
			IP:      a.ip,
			Mask:    mask,
			DNS1:    None,
			DNS2:    None,
			DHCP:    None,
		}
		if len(a.dns) > 0 && a.dns[0] != "" {
			info.DNS1 = a.dns[0]
		}
		if len(a.dns) > 1 && a.dns[1] != "" {
			info.DNS2 = a.dns[1]
		}
		if a.dhcpEnabled && a.dhcpServer != "" {
			info.DHCP = a.dhcpServer
		}
		return info, true, nil
	}

	return nil, false, nil
}
