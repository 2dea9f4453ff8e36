// Package contact extracts candidate email addresses and phone numbers
// from document text using pattern matching.
package contact

import (
	"regexp"
	"sort"
	"strings"
)

// ContactInfo holds the deduplicated contact candidates found in a document.
// Both slices are sorted so that "first element" selection is deterministic.
// Absence of matches yields empty slices, never an error.
type ContactInfo struct {
	Emails []string
	Phones []string
}

// PrimaryEmail returns the first recognized email, or "" if none was found.
func (c ContactInfo) PrimaryEmail() string {
	if len(c.Emails) == 0 {
		return ""
	}
	return c.Emails[0]
}

// PrimaryPhone returns the first recognized phone number, or "" if none was found.
func (c ContactInfo) PrimaryPhone() string {
	if len(c.Phones) == 0 {
		return ""
	}
	return c.Phones[0]
}

var (
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Optional +CC country code, then three digit groups in the common layouts:
	// NNN-NNN-NNNN, (NNN) NNN-NNNN, NNN.NNN.NNNN, NNNNNNNNNN.
	phoneRegex = regexp.MustCompile(`(?:\+(\d{1,3})[-. ]*)?\(?(\d{3})\)?[-. ]*(\d{3})[-. ]*(\d{4})\b`)
)

// Recognize scans text for email addresses and phone numbers.
// It never fails; text with no matches produces an empty ContactInfo.
func Recognize(text string) ContactInfo {
	var info ContactInfo

	seen := make(map[string]struct{})
	for _, m := range emailRegex.FindAllString(text, -1) {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		info.Emails = append(info.Emails, m)
	}

	seenPhones := make(map[string]struct{})
	for _, groups := range phoneRegex.FindAllStringSubmatch(text, -1) {
		n := normalizePhone(groups)
		if n == "" {
			continue
		}
		if _, ok := seenPhones[n]; ok {
			continue
		}
		seenPhones[n] = struct{}{}
		info.Phones = append(info.Phones, n)
	}

	sort.Strings(info.Emails)
	sort.Strings(info.Phones)
	return info
}

// normalizePhone reduces one regex match to a canonical digit string:
// the country code digits (if captured) followed by the ten subscriber digits.
// It is total over match shapes: any separators, parentheses, or plus signs
// remaining in the groups are stripped, and an empty match normalizes to "".
func normalizePhone(groups []string) string {
	var b strings.Builder
	for _, g := range groups[1:] {
		for _, r := range g {
			if r >= '0' && r <= '9' {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
