package invoice2pdf

import "strings"

// Renderer substitutes record fields into a template string.
//
// The template syntax is a single deterministic left-to-right scan:
//
//   - "{{" emits a literal "{" and "}}" emits a literal "}".
//   - "{name}" is replaced by the record value for name. An optional
//     ":format" suffix inside the braces is ignored; the lookup key is the
//     text before the first colon.
//   - Everything else passes through unchanged.
//
// A "{" with no closing "}" (or an empty "{}") is emitted literally.
// Adjacent escapes and placeholders compose predictably: "{{{name}}}"
// renders as "{" + value + "}".
type Renderer struct {
	// Fallback replaces placeholders whose field is absent from the
	// record. Empty by default.
	Fallback string
}

// Render substitutes data into tmpl. It returns the rendered string and
// the ordered, de-duplicated names of placeholders that were not found in
// data (each already replaced by the fallback).
func (r *Renderer) Render(tmpl string, data Record) (string, []string) {
	var out strings.Builder
	out.Grow(len(tmpl))

	var missing []string
	reported := make(map[string]bool)

	for i := 0; i < len(tmpl); {
		switch tmpl[i] {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				out.WriteByte('{')
				i += 2
				continue
			}
			name, width := scanPlaceholder(tmpl[i:])
			if width == 0 {
				out.WriteByte('{')
				i++
				continue
			}
			key := name
			if colon := strings.IndexByte(name, ':'); colon >= 0 {
				key = name[:colon]
			}
			if value, ok := data[key]; ok {
				out.WriteString(value)
			} else {
				out.WriteString(r.Fallback)
				if !reported[key] {
					reported[key] = true
					missing = append(missing, key)
				}
			}
			i += width
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				out.WriteByte('}')
				i += 2
				continue
			}
			out.WriteByte('}')
			i++
		default:
			out.WriteByte(tmpl[i])
			i++
		}
	}

	return out.String(), missing
}

// scanPlaceholder inspects s, which starts with '{', for a complete
// "{name}" token. It returns the name and the total token width, or
// ("", 0) when s does not start a valid placeholder (no closing brace
// before another '{', or an empty name).
func scanPlaceholder(s string) (string, int) {
	end := strings.IndexAny(s[1:], "{}")
	if end < 0 || s[1+end] != '}' || end == 0 {
		return "", 0
	}
	return s[1 : 1+end], end + 2
}
