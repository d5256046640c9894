package headers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"gopkg.in/yaml.v3"
)

// Style selects how Render lays out pairs.
type Style string

const (
	StyleText Style = "text"
	StyleJSON Style = "json"
	StyleYAML Style = "yaml"
	StyleCurl Style = "curl"
	StyleHTML Style = "html"
)

// ValidStyles returns the accepted --output values.
func ValidStyles() []string {
	return []string{string(StyleText), string(StyleJSON), string(StyleYAML), string(StyleCurl), string(StyleHTML)}
}

// ParseStyle validates s. The empty string means StyleText.
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case "", StyleText:
		return StyleText, nil
	case StyleJSON:
		return StyleJSON, nil
	case StyleYAML:
		return StyleYAML, nil
	case StyleCurl:
		return StyleCurl, nil
	case StyleHTML:
		return StyleHTML, nil
	}
	return "", fmt.Errorf("unknown output style %q (valid: %s)", s, strings.Join(ValidStyles(), ", "))
}

// Render lays out pairs in the given style. Text output never ends in a
// newline; structured output ends the way its encoder leaves it.
func Render(pairs []Pair, style Style) (string, error) {
	if pairs == nil {
		pairs = []Pair{}
	}
	switch style {
	case StyleText, "":
		return Join(pairs), nil
	case StyleJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(pairs); err != nil {
			return "", err
		}
		return buf.String(), nil
	case StyleYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(pairs); err != nil {
			return "", err
		}
		if err := enc.Close(); err != nil {
			return "", err
		}
		return buf.String(), nil
	case StyleCurl:
		return renderCurl(pairs), nil
	case StyleHTML:
		return RenderHTML(pairs), nil
	}
	return "", fmt.Errorf("unknown output style %q", style)
}

func renderCurl(pairs []Pair) string {
	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		lines = append(lines, "-H "+shellQuote(p.String()))
	}
	return strings.Join(lines, " \\\n")
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// RenderHTML lays pairs out as a two-column table, the rich clipboard flavor.
func RenderHTML(pairs []Pair) string {
	var b strings.Builder
	b.WriteString("<table>\n")
	for _, p := range pairs {
		fmt.Fprintf(&b, "<tr><th>%s</th><td>%s</td></tr>\n", html.EscapeString(p.Name), html.EscapeString(p.Value))
	}
	b.WriteString("</table>")
	return b.String()
}
