package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var identifierRe = regexp.MustCompile(`^(\d+)\.([LR])\.(\d+)([A-Z]?)$`)

// ParsedIdentifier holds the structured data parsed from a desk
// identifier such as "1.L.12" or "2.R.03A".
type ParsedIdentifier struct {
	Level  int
	Wing   string // "L" or "R"
	Seq    int
	Suffix string // optional letter for shared positions, e.g. the "A" in "1.L.01A"
}

// ParseIdentifier extracts level, wing and sequence from a desk
// identifier string.
func ParseIdentifier(raw string) (ParsedIdentifier, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	m := identifierRe.FindStringSubmatch(s)
	if m == nil {
		return ParsedIdentifier{}, fmt.Errorf("unable to parse desk identifier: %q", raw)
	}

	level, err := strconv.Atoi(m[1])
	if err != nil {
		return ParsedIdentifier{}, fmt.Errorf("invalid level in desk identifier %q: %w", raw, err)
	}
	seq, err := strconv.Atoi(m[3])
	if err != nil {
		return ParsedIdentifier{}, fmt.Errorf("invalid sequence in desk identifier %q: %w", raw, err)
	}

	return ParsedIdentifier{Level: level, Wing: m[2], Seq: seq, Suffix: m[4]}, nil
}

// FormatIdentifier renders a desk identifier in the canonical
// "{level}.{wing}.{NN}{suffix}" form.
func FormatIdentifier(p ParsedIdentifier) string {
	return fmt.Sprintf("%d.%s.%02d%s", p.Level, p.Wing, p.Seq, p.Suffix)
}
