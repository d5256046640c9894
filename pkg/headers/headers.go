// Package headers turns raw pasted HTTP header text into "Name: Value" lines.
//
// Browser developer tools copy request headers as alternating lines: the
// header name on one line and its value on the next. Parse pairs those
// lines positionally after blank lines are removed, and Format renders the
// pairs one per line.
package headers

import "strings"

const separator = ": "

// Pair is a single header name and value, both trimmed.
type Pair struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// String returns the pair as a "name: value" line.
func (p Pair) String() string {
	return p.Name + separator + p.Value
}

// Stats describes what Parse did with its input.
type Stats struct {
	Lines    int
	NonBlank int
	Pairs    int
	Dropped  int
}

// Parse splits raw into header pairs.
//
// A line is blank when it is empty after trimming; blank lines are removed
// before pairing. The remaining lines are paired strictly by position. A
// trailing name without a value is dropped.
func Parse(raw string) []Pair {
	pairs, _ := ParseWithStats(raw)
	return pairs
}

// ParseWithStats is Parse that also reports line and pair counts.
func ParseWithStats(raw string) ([]Pair, Stats) {
	var stats Stats
	if raw == "" {
		return nil, stats
	}

	split := strings.Split(raw, "\n")
	stats.Lines = len(split)

	lines := make([]string, 0, len(split))
	for _, line := range split {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	stats.NonBlank = len(lines)

	pairs := make([]Pair, 0, len(lines)/2)
	for i := 0; i+1 < len(lines); i += 2 {
		pairs = append(pairs, Pair{Name: lines[i], Value: lines[i+1]})
	}
	stats.Pairs = len(pairs)
	stats.Dropped = stats.NonBlank - 2*stats.Pairs

	return pairs, stats
}

// Format is Parse followed by Join.
func Format(raw string) string {
	return Join(Parse(raw))
}

// Join renders pairs as newline-separated "name: value" lines.
func Join(pairs []Pair) string {
	var b strings.Builder
	for _, p := range pairs {
		if p.Name == "" || p.Value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(p.String())
	}
	return strings.TrimSpace(b.String())
}
