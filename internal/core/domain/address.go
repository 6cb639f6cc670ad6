package domain

import "strings"

// EnsureLeading0x prefixes s with 0x when missing.
func EnsureLeading0x(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return "0x" + s[2:]
	}
	return "0x" + s
}

// StripLeading0x removes a 0x prefix if present.
func StripLeading0x(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}
	return s
}

// NormalizeAddress lowercases an address and guarantees the 0x prefix.
func NormalizeAddress(address string) string {
	return strings.ToLower(EnsureLeading0x(strings.TrimSpace(address)))
}

// EqAddress compares two hex strings ignoring case and the 0x prefix.
func EqAddress(a, b string) bool {
	return NormalizeAddress(a) == NormalizeAddress(b)
}
