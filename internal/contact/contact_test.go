package contact

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecognize_EmailAndPhone(t *testing.T) {
	info := Recognize("Contact: (555) 123-4567 or jane@example.com")

	assert.Equal(t, []string{"jane@example.com"}, info.Emails)
	assert.Contains(t, info.Phones, "5551234567")
}

func TestRecognize_EmailFormats(t *testing.T) {
	text := `Reach me at first.last@example.com, or my work address
john_doe+resume@sub.domain.co.uk. Legacy: jd%box@old-mail.org.`
	info := Recognize(text)

	assert.ElementsMatch(t, []string{
		"first.last@example.com",
		"john_doe+resume@sub.domain.co.uk",
		"jd%box@old-mail.org",
	}, info.Emails)
}

func TestRecognize_DistinctEmailCount(t *testing.T) {
	const n = 25
	text := ""
	for i := 0; i < n; i++ {
		text += fmt.Sprintf("candidate%d@example.com\n", i)
	}
	info := Recognize(text)
	assert.Len(t, info.Emails, n)
}

func TestRecognize_DeduplicatesEmails(t *testing.T) {
	info := Recognize("jane@example.com jane@example.com jane@example.com")
	assert.Equal(t, []string{"jane@example.com"}, info.Emails)
}

func TestRecognize_NoMatches(t *testing.T) {
	info := Recognize("A resume with no contact details at all.")
	assert.Empty(t, info.Emails)
	assert.Empty(t, info.Phones)
}

func TestRecognize_EmptyText(t *testing.T) {
	info := Recognize("")
	assert.Empty(t, info.Emails)
	assert.Empty(t, info.Phones)
}

func TestRecognize_PhoneLayouts(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"555-123-4567", "5551234567"},
		{"(555) 123-4567", "5551234567"},
		{"555.123.4567", "5551234567"},
		{"5551234567", "5551234567"},
		{"+1 555-123-4567", "15551234567"},
		{"+212 555 123 4567", "2125551234567"},
	}
	for _, tc := range cases {
		info := Recognize(tc.text)
		assert.Equal(t, []string{tc.want}, info.Phones, "text %q", tc.text)
	}
}

func TestRecognize_PhoneFormattingVariantsUnify(t *testing.T) {
	// The same subscriber number written three ways collapses to one
	// canonical entry.
	info := Recognize("555-123-4567 / (555) 123-4567 / 555.123.4567")
	assert.Equal(t, []string{"5551234567"}, info.Phones)
}

func TestRecognize_MultipleDistinctPhones(t *testing.T) {
	info := Recognize("home 555-123-4567, cell (555) 987-6543")
	assert.ElementsMatch(t, []string{"5551234567", "5559876543"}, info.Phones)
}

func TestRecognize_SortedOutput(t *testing.T) {
	info := Recognize("zz@example.com aa@example.com 555-987-6543 555-123-4567")
	assert.Equal(t, []string{"aa@example.com", "zz@example.com"}, info.Emails)
	assert.Equal(t, []string{"5551234567", "5559876543"}, info.Phones)
}

func TestPrimaryEmail(t *testing.T) {
	assert.Equal(t, "", ContactInfo{}.PrimaryEmail())
	assert.Equal(t, "a@b.com", ContactInfo{Emails: []string{"a@b.com", "z@b.com"}}.PrimaryEmail())
}

func TestPrimaryPhone(t *testing.T) {
	assert.Equal(t, "", ContactInfo{}.PrimaryPhone())
	assert.Equal(t, "5551234567", ContactInfo{Phones: []string{"5551234567"}}.PrimaryPhone())
}

func TestNormalizePhone_Total(t *testing.T) {
	// Any match shape reduces to a digit string.
	assert.Equal(t, "15551234567", normalizePhone([]string{"+1 (555) 123-4567", "1", "(555)", "123", "4567"}))
	assert.Equal(t, "", normalizePhone([]string{"", "", "", "", ""}))
}
