package headers

import (
	"net/textproto"
	"strings"
)

// Transform rewrites a pair in place of the original.
type Transform func(Pair) Pair

// DefaultSensitive lists headers whose values are masked by Mask.
var DefaultSensitive = []string{
	"Authorization",
	"Cookie",
	"Set-Cookie",
	"Proxy-Authorization",
	"X-Api-Key",
}

const maskShowChars = 4

// Apply runs each transform over every pair, in order.
func Apply(pairs []Pair, transforms ...Transform) []Pair {
	if len(transforms) == 0 {
		return pairs
	}
	out := make([]Pair, len(pairs))
	for i, p := range pairs {
		for _, t := range transforms {
			p = t(p)
		}
		out[i] = p
	}
	return out
}

// Canonical rewrites the name into canonical MIME form. HTTP/2
// pseudo-headers such as ":authority" are left untouched.
func Canonical(p Pair) Pair {
	if strings.HasPrefix(p.Name, ":") {
		return p
	}
	p.Name = textproto.CanonicalMIMEHeaderKey(p.Name)
	return p
}

// Mask returns a transform that hides the values of the default sensitive
// headers plus extra. Names match case-insensitively.
func Mask(extra ...string) Transform {
	names := make(map[string]struct{}, len(DefaultSensitive)+len(extra))
	for _, n := range DefaultSensitive {
		names[strings.ToLower(n)] = struct{}{}
	}
	for _, n := range extra {
		n = strings.TrimSpace(n)
		if n != "" {
			names[strings.ToLower(n)] = struct{}{}
		}
	}
	return func(p Pair) Pair {
		if _, ok := names[strings.ToLower(p.Name)]; ok {
			p.Value = MaskValue(p.Value, maskShowChars)
		}
		return p
	}
}

// MaskValue keeps the first and last show characters of value and stars the
// rest. Values too short to keep both ends are fully starred.
func MaskValue(value string, show int) string {
	runes := []rune(value)
	if len(runes) <= show*2 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[:show]) + strings.Repeat("*", len(runes)-show*2) + string(runes[len(runes)-show:])
}
