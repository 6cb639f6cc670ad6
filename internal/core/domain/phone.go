package domain

import (
	"encoding/hex"
	"regexp"

	"golang.org/x/crypto/sha3"
)

// PhoneSaltSeparator joins an E.164 number and its pepper before hashing.
const PhoneSaltSeparator = "__kaleidoscope__"

var (
	e164Regex = regexp.MustCompile(`^\+[1-9][0-9]{1,14}$`)
	saltRegex = regexp.MustCompile(`^[a-zA-Z0-9+/]{13}$`)
)

// PhoneNumberHashDetails is the caller's own number together with the pepper
// (salt) it was attested under.
type PhoneNumberHashDetails struct {
	E164Number string `json:"e164_number"`
	Pepper     string `json:"pepper"`
	PhoneHash  string `json:"phone_hash,omitempty"`
}

// IsE164Number validates the E.164 shape: '+', a non-zero digit, up to 15 digits total.
func IsE164Number(s string) bool {
	return e164Regex.MatchString(s)
}

// IsValidSalt reports whether s can be embedded as phone metadata.
func IsValidSalt(s string) bool {
	return saltRegex.MatchString(s)
}

// PhoneHash is the on-chain identifier for a number: keccak256 over the number,
// joined with the salt when one is present. The result is 0x-prefixed hex.
func PhoneHash(e164Number, salt string) string {
	value := e164Number
	if salt != "" {
		value = e164Number + PhoneSaltSeparator + salt
	}
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(value))
	return "0x" + hex.EncodeToString(h.Sum(nil))
}
