package invoice2pdf

import (
	"reflect"
	"testing"
)

func TestRendererRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     Record
		want     string
	}{
		{
			name:     "no placeholders returns template unchanged",
			template: "<html><body>Hello</body></html>",
			data:     Record{},
			want:     "<html><body>Hello</body></html>",
		},
		{
			name:     "single placeholder substituted",
			template: "{name}",
			data:     Record{"name": "Bob"},
			want:     "Bob",
		},
		{
			name:     "placeholder inside text",
			template: "Dear {name}, your invoice is ready.",
			data:     Record{"name": "Анна"},
			want:     "Dear Анна, your invoice is ready.",
		},
		{
			name:     "escaped braces emit literals without substitution",
			template: "{{name}}",
			data:     Record{"name": "Bob"},
			want:     "{name}",
		},
		{
			name:     "escaped braces around placeholder compose",
			template: "{{{name}}}",
			data:     Record{"name": "Bob"},
			want:     "{Bob}",
		},
		{
			name:     "missing field renders fallback",
			template: "{missing}",
			data:     Record{},
			want:     "",
		},
		{
			name:     "css block with escaped braces",
			template: "body {{ color: red; }} {title}",
			data:     Record{"title": "Invoice"},
			want:     "body { color: red; } Invoice",
		},
		{
			name:     "format suffix ignored on lookup",
			template: "{amount:.2f}",
			data:     Record{"amount": "100"},
			want:     "100",
		},
		{
			name:     "unterminated brace passes through",
			template: "before {oops",
			data:     Record{"oops": "x"},
			want:     "before {oops",
		},
		{
			name:     "empty braces pass through",
			template: "a{}b",
			data:     Record{},
			want:     "a{}b",
		},
		{
			name:     "lone closing brace passes through",
			template: "a}b",
			data:     Record{},
			want:     "a}b",
		},
		{
			name:     "open brace before another open brace is literal",
			template: "{a{b}",
			data:     Record{"b": "B"},
			want:     "{aB",
		},
		{
			name:     "adjacent placeholders",
			template: "{a}{b}",
			data:     Record{"a": "1", "b": "2"},
			want:     "12",
		},
		{
			name:     "empty value substitutes empty",
			template: "x{a}y",
			data:     Record{"a": ""},
			want:     "xy",
		},
	}

	r := &Renderer{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := r.Render(tt.template, tt.data)
			if got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestRendererFallback(t *testing.T) {
	r := &Renderer{Fallback: "N/A"}
	got, missing := r.Render("{missing} and {name}", Record{"name": "Bob"})
	if got != "N/A and Bob" {
		t.Errorf("Render() = %q, want %q", got, "N/A and Bob")
	}
	if !reflect.DeepEqual(missing, []string{"missing"}) {
		t.Errorf("missing = %v, want [missing]", missing)
	}
}

func TestRendererMissingFields(t *testing.T) {
	r := &Renderer{}

	_, missing := r.Render("{a} {b} {a} {c:fmt}", Record{"b": "ok"})
	want := []string{"a", "c"}
	if !reflect.DeepEqual(missing, want) {
		t.Errorf("missing = %v, want %v", missing, want)
	}

	_, missing = r.Render("{{a}} no placeholders here", Record{})
	if len(missing) != 0 {
		t.Errorf("missing = %v, want none", missing)
	}
}

func TestRendererIdempotentWithoutPlaceholders(t *testing.T) {
	r := &Renderer{}
	input := "<p>plain text, no braces</p>"

	once, _ := r.Render(input, Record{})
	twice, _ := r.Render(once, Record{})
	if once != input || twice != once {
		t.Errorf("rendering is not idempotent: %q -> %q -> %q", input, once, twice)
	}
}
