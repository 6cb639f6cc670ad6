package logger

import "strings"

// MaskE164 keeps the country prefix and the last two digits of a phone number.
func MaskE164(e164 string) string {
	if len(e164) <= 5 {
		return strings.Repeat("*", len(e164))
	}
	return e164[:3] + strings.Repeat("*", len(e164)-5) + e164[len(e164)-2:]
}

// MaskKey reduces a hex key or salt to a short fingerprint safe for logs.
func MaskKey(key string) string {
	k := strings.TrimPrefix(key, "0x")
	if k == "" {
		return ""
	}
	if len(k) <= 8 {
		return "****"
	}
	return k[:4] + "…" + k[len(k)-4:]
}
