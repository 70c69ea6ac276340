package netinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstActiveNoAdapters(t *testing.T) {
	info, ok, err := firstActive(nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, info)
}

func TestFirstActiveNoneQualifies(t *testing.T) {
	// Up without a gateway, and a gateway on a downed link: neither counts.
	adapters := []adapter{
		{up: true, ip: "169.254.10.4", prefix: 16},
		{up: false, gateway: "192.168.1.1", ip: "192.168.1.50", prefix: 24},
	}

	info, ok, err := firstActive(adapters)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, info)
}

func TestFirstActiveSelectsFirstMatch(t *testing.T) {
	adapters := []adapter{
		{up: true, ip: "169.254.10.4", prefix: 16},
		{
			up:          true,
			gateway:     "192.168.1.1",
			ip:          "192.168.1.50",
			prefix:      24,
			dns:         []string{"8.8.8.8", "1.1.1.1"},
			dhcpEnabled: true,
			dhcpServer:  "192.168.1.1",
		},
		{up: true, gateway: "10.0.0.1", ip: "10.0.0.5", prefix: 8},
	}

	info, ok, err := firstActive(adapters)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "192.168.1.1", info.Gateway)
	assert.Equal(t, "192.168.1.50", info.IP)
	assert.Equal(t, "255.255.255.0", info.Mask)
	assert.Equal(t, "8.8.8.8", info.DNS1)
	assert.Equal(t, "1.1.1.1", info.DNS2)
	assert.Equal(t, "192.168.1.1", info.DHCP)
}

func TestFirstActiveSentinels(t *testing.T) {
	tests := []struct {
		name string
		a    adapter
		dns1 string
		dns2 string
		dhcp string
	}{
		{
			name: "no dns, static",
			a:    adapter{up: true, gateway: "10.0.0.1", ip: "10.0.0.5", prefix: 24},
			dns1: None, dns2: None, dhcp: None,
		},
		{
			name: "single dns",
			a: adapter{up: true, gateway: "10.0.0.1", ip: "10.0.0.5", prefix: 24,
				dns: []string{"10.0.0.1"}},
			dns1: "10.0.0.1", dns2: None, dhcp: None,
		},
		{
			name: "empty first dns entry",
			a: adapter{up: true, gateway: "10.0.0.1", ip: "10.0.0.5", prefix: 24,
				dns: []string{"", "10.0.0.1"}},
			dns1: None, dns2: "10.0.0.1", dhcp: None,
		},
		{
			name: "dhcp server without dhcp enabled",
			a: adapter{up: true, gateway: "10.0.0.1", ip: "10.0.0.5", prefix: 24,
				dhcpServer: "10.0.0.1"},
			dns1: None, dns2: None, dhcp: None,
		},
		{
			name: "dhcp enabled without server address",
			a: adapter{up: true, gateway: "10.0.0.1", ip: "10.0.0.5", prefix: 24,
				dhcpEnabled: true},
			dns1: None, dns2: None, dhcp: None,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info, ok, err := firstActive([]adapter{tc.a})
			require.NoError(t, err)
			require.True(t, ok)

			assert.Equal(t, tc.dns1, info.DNS1)
			assert.Equal(t, tc.dns2, info.DNS2)
			assert.Equal(t, tc.dhcp, info.DHCP)

			// Absent values are the sentinel, never empty strings.
			assert.NotEmpty(t, info.DNS1)
			assert.NotEmpty(t, info.DNS2)
			assert.NotEmpty(t, info.DHCP)
		})
	}
}

func TestFirstActiveInvalidPrefix(t *testing.T) {
	adapters := []adapter{
		{up: true, gateway: "10.0.0.1", ip: "10.0.0.5", prefix: 64},
	}

	_, _, err := firstActive(adapters)
	assert.Error(t, err)
}
