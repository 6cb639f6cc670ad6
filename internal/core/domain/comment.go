package domain

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// MetadataContentSeparator joins a comment and the sender's phone metadata.
	MetadataContentSeparator = "~"

	// DefaultMaxCommentLength is the longest comment shown raw when it cannot be decrypted.
	DefaultMaxCommentLength = 70

	// CommentUnavailable replaces long comments that failed to decrypt.
	CommentUnavailable = "Comment unavailable"

	// SaltLength is the exact length of an embedded salt.
	SaltLength = 13
)

// The match is unanchored at the start and the prefix stops at a line break,
// so only the last line of a multi-line comment is kept as its text.
var phoneMetadataRegex = regexp.MustCompile(
	`(.*)` + regexp.QuoteMeta(MetadataContentSeparator) + `([+][1-9][0-9]{1,14})([a-zA-Z0-9+/]{13})$`,
)

// DecryptedComment is the result of decrypting and parsing a transfer comment.
type DecryptedComment struct {
	Comment    string `json:"comment"`
	E164Number string `json:"e164_number,omitempty"`
	Salt       string `json:"salt,omitempty"`
	Hidden     bool   `json:"hidden,omitempty"`
}

// HasPhoneMetadata reports whether the sender embedded a phone number claim.
func (d DecryptedComment) HasPhoneMetadata() bool {
	return d.E164Number != "" && d.Salt != ""
}

// EmbedPhoneNumberMetadata appends the separator, number and salt to the comment.
// Without both a number and a salt the comment is returned untouched.
func EmbedPhoneNumberMetadata(comment string, details *PhoneNumberHashDetails) string {
	if details == nil || details.E164Number == "" || details.Pepper == "" {
		return comment
	}
	return comment + MetadataContentSeparator + details.E164Number + details.Pepper
}

// ExtractPhoneNumberMetadata splits a decrypted comment into its text and the
// embedded phone metadata, if any.
func ExtractPhoneNumberMetadata(comment string) DecryptedComment {
	m := phoneMetadataRegex.FindStringSubmatch(comment)
	if m == nil {
		return DecryptedComment{Comment: comment}
	}
	return DecryptedComment{Comment: m[1], E164Number: m[2], Salt: m[3]}
}

// DecryptionCacheKey builds the memoization key for a decrypt call.
func DecryptionCacheKey(comment, dek string, isSender bool) string {
	return strings.Join([]string{comment, dek, strconv.FormatBool(isSender)}, "_")
}
