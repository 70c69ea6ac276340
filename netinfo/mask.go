package netinfo

import "fmt"

// MaskFromPrefix converts a CIDR prefix length into a dotted-decimal
// IPv4 subnet mask string.
//
// Parameters:
//   - prefix: Number of leading one bits in the mask, 0 through 32
//
// Returns:
//   - The dotted-decimal mask (e.g., 24 -> "255.255.255.0")
//   - An error if prefix is outside the valid range
//
// Example: MaskFromPrefix(24) returns "255.255.255.0".
func MaskFromPrefix(prefix int) (string, error) {
	if prefix < 0 || prefix > 32 {
		return "", fmt.Errorf("invalid prefix length %d: must be 0-32", prefix)
	}

	// Shift counts >= 32 yield zero on uint32, so prefix 0 is handled too.
	mask := ^uint32(0) << (32 - uint(prefix))

	return fmt.Sprintf("%d.%d.%d.%d",
		mask>>24&0xff, mask>>16&0xff, mask>>8&0xff, mask&0xff), nil
}
