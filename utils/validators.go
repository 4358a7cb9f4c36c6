package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// domainRegex matches the host platform's email-domain validation: dot
// separated labels of up to 63 characters that do not start or end with a
// hyphen, followed by a top-level label of at least two characters.
var domainRegex = regexp.MustCompile(`^(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z0-9-]{1,62}[a-zA-Z0-9]$`)

// ValidateDomain checks that value is a syntactically valid domain name,
// e.g. "example.com". Leading or trailing whitespace is invalid.
func ValidateDomain(value string) error {
	if !domainRegex.MatchString(value) {
		return fmt.Errorf("the domain name is not valid: %s", value)
	}
	return nil
}

// EmailDomain extracts the domain part of an email address: everything after
// the last "@", lowercased.
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the input and collapses every non-alphanumeric run into
// a single hyphen, matching the slugs the admin UI expects.
func Slugify(value string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(value), "-")
	return strings.Trim(slug, "-")
}
