package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIdentifier(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  ParsedIdentifier
		expectErr bool
	}{
		{
			name:     "Standard identifier",
			raw:      "1.L.12",
			expected: ParsedIdentifier{Level: 1, Wing: "L", Seq: 12},
		},
		{
			name:     "Zero-padded sequence",
			raw:      "2.R.03",
			expected: ParsedIdentifier{Level: 2, Wing: "R", Seq: 3},
		},
		{
			name:     "Shared position suffix",
			raw:      "1.L.01A",
			expected: ParsedIdentifier{Level: 1, Wing: "L", Seq: 1, Suffix: "A"},
		},
		{
			name:     "Lowercase input",
			raw:      "3.r.07b",
			expected: ParsedIdentifier{Level: 3, Wing: "R", Seq: 7, Suffix: "B"},
		},
		{
			name:     "Surrounding whitespace",
			raw:      "  1.L.05 ",
			expected: ParsedIdentifier{Level: 1, Wing: "L", Seq: 5},
		},
		{
			name:      "Missing wing",
			raw:       "1..12",
			expectErr: true,
		},
		{
			name:      "Unknown wing letter",
			raw:       "1.X.12",
			expectErr: true,
		},
		{
			name:      "Not an identifier",
			raw:       "Desk twelve",
			expectErr: true,
		},
		{
			name:      "Empty string",
			raw:       "",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseIdentifier(tc.raw)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, parsed)
			}
		})
	}
}

func TestFormatIdentifier(t *testing.T) {
	assert.Equal(t, "1.L.01", FormatIdentifier(ParsedIdentifier{Level: 1, Wing: "L", Seq: 1}))
	assert.Equal(t, "2.R.15A", FormatIdentifier(ParsedIdentifier{Level: 2, Wing: "R", Seq: 15, Suffix: "A"}))

	// Round trip through the parser.
	p, err := ParseIdentifier("3.L.09")
	assert.NoError(t, err)
	assert.Equal(t, "3.L.09", FormatIdentifier(p))
}
