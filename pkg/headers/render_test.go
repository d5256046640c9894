package headers

import (
	"strings"
	"testing"
)

var samplePairs = []Pair{
	{Name: "Accept", Value: "*/*"},
	{Name: "User-Agent", Value: "it's me"},
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{in: "", want: StyleText},
		{in: "text", want: StyleText},
		{in: "JSON", want: StyleJSON},
		{in: " yaml ", want: StyleYAML},
		{in: "curl", want: StyleCurl},
		{in: "html", want: StyleHTML},
		{in: "table", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStyle(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseStyle(%q) expected error, got nil", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStyle(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseStyle(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		want  string
	}{
		{
			name:  "text",
			style: StyleText,
			want:  "Accept: */*\nUser-Agent: it's me",
		},
		{
			name:  "json",
			style: StyleJSON,
			want: `[
  {
    "name": "Accept",
    "value": "*/*"
  },
  {
    "name": "User-Agent",
    "value": "it's me"
  }
]
`,
		},
		{
			name:  "yaml",
			style: StyleYAML,
			want: `- name: Accept
  value: '*/*'
- name: User-Agent
  value: it's me
`,
		},
		{
			name:  "curl",
			style: StyleCurl,
			want:  "-H 'Accept: */*' \\\n-H 'User-Agent: it'\\''s me'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(samplePairs, tt.style)
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_Empty(t *testing.T) {
	got, err := Render(nil, StyleJSON)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if got != "[]\n" {
		t.Errorf("Render(nil, json) = %q, want %q", got, "[]\n")
	}

	got, err = Render(nil, StyleText)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("Render(nil, text) = %q, want empty", got)
	}
}

func TestRenderHTML_Escapes(t *testing.T) {
	got := RenderHTML([]Pair{{Name: "X-Tag", Value: "<b>&</b>"}})
	if !strings.Contains(got, "<td>&lt;b&gt;&amp;&lt;/b&gt;</td>") {
		t.Errorf("RenderHTML() did not escape value: %s", got)
	}
	if !strings.HasPrefix(got, "<table>") || !strings.HasSuffix(got, "</table>") {
		t.Errorf("RenderHTML() = %q, want a table", got)
	}
}
