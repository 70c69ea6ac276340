// Package report composes the collected network and system facts into the
// fixed labeled text block drawn onto the wallpaper.
package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"netwall/netinfo"
	"netwall/sysinfo"
)

// labelWidth is the display column the ": " separator is aligned to.
const labelWidth = 10

// DNS lines carry a static role hint after the value.
const (
	hintPreferred = "foretrukket"
	hintAlternate = "alternativ"
)

// Compose formats the collected fields into the fixed ten-line block, one
// labeled line per field, in a fixed order. The layout is a compatibility
// surface: line count and content drive the rendered image sizing.
//
// Parameters:
//   - n: Collected network configuration
//   - s: Collected host identity
//
// Returns:
//   - A multi-line string with column-aligned labels
func Compose(n netinfo.NetworkInfo, s sysinfo.SystemInfo) string {
	lines := []string{
		line("Gateway", n.Gateway),
		line("IP", n.IP),
		line("Mask", n.Mask),
		line("DNS 1", dnsValue(n.DNS1, hintPreferred)),
		line("DNS 2", dnsValue(n.DNS2, hintAlternate)),
		line("DHCP", n.DHCP),
		line("Hostname", s.Hostname),
		line("User", s.User),
		line("Domain", s.Domain),
		line("OS", s.OS),
	}

	return strings.Join(lines, "\n")
}

// line pads the label to the fixed column using display width so the
// separators align even for non-ASCII labels.
func line(label, value string) string {
	return runewidth.FillRight(label, labelWidth) + ": " + value
}

// dnsValue appends the role hint after the (padded) server address, e.g.
// "None   (alternativ)".
func dnsValue(value, hint string) string {
	return fmt.Sprintf("%-6s (%s)", value, hint)
}
