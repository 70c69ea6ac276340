package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripVendorPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Microsoft Windows 11 Pro", "Windows 11 Pro"},
		{"MICROSOFT Windows Server 2022 Standard", "Windows Server 2022 Standard"},
		{"  microsoft   Windows 10 Home  ", "Windows 10 Home"},
		{"Windows 11 Pro", "Windows 11 Pro"},
		{"Microsoft", ""},
		{"", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, StripVendorPrefix(tc.in), "input %q", tc.in)
	}
}

func TestCollect(t *testing.T) {
	info := Collect(Source{
		Hostname: "PC1",
		User:     "alice",
		Domain:   "WORKGROUP",
		OSName:   "Microsoft Windows 11 Pro",
	})

	assert.Equal(t, "PC1", info.Hostname)
	assert.Equal(t, "alice", info.User)
	assert.Equal(t, "WORKGROUP", info.Domain)
	assert.Equal(t, "Windows 11 Pro", info.OS)
}

func TestCollectEmptySource(t *testing.T) {
	info := Collect(Source{})

	assert.Equal(t, "Unknown", info.Hostname)
	assert.Equal(t, "Unknown", info.User)
	assert.Equal(t, "Unknown", info.Domain)
	assert.Equal(t, "Unknown", info.OS)
}
