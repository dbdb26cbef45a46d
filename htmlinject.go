package invoice2pdf

import (
	"context"
	"strings"
)

// defaultFontFamily is the font stack applied to rendered documents.
const defaultFontFamily = "Arial, Helvetica, sans-serif"

// basePageCSS sets up A4 pages with 2cm margins for templates that ship
// no styling of their own. Kept in sync with the margins passed to Chrome
// in html2pdf.go.
const basePageCSS = `
@page { size: A4; margin: 2cm; }
* { font-family: ` + defaultFontFamily + ` !important; }
body { font-size: 12pt; }
`

// styleInjector defines the contract for style injection into HTML.
type styleInjector interface {
	InjectStyle(ctx context.Context, htmlContent, fontPath string) string
}

// styleInjection injects font and page styling as a <style> block.
type styleInjection struct{}

// InjectStyle adds rendering CSS to the template HTML.
//
// Templates without a <style> block receive the full base style (font
// registration, A4 page setup, default font size). Templates that carry
// their own styles only get the font registration and a font-family
// override, and are left untouched when no font was resolved.
func (s *styleInjection) InjectStyle(ctx context.Context, htmlContent, fontPath string) string {
	// Check for cancellation
	if ctx.Err() != nil {
		return htmlContent
	}

	hasStyle := strings.Contains(strings.ToLower(htmlContent), "<style")

	var css string
	switch {
	case !hasStyle:
		css = fontFaceCSS(fontPath) + basePageCSS
	case fontPath != "":
		css = fontFaceCSS(fontPath) + "* { font-family: " + defaultFontFamily + " !important; }"
	default:
		return htmlContent
	}

	return insertStyleBlock(htmlContent, css)
}

// fontFaceCSS registers the resolved font under the names templates
// commonly reference. Returns "" when no font was resolved.
func fontFaceCSS(fontPath string) string {
	if fontPath == "" {
		return ""
	}
	url := fileURL(fontPath)
	return `@font-face { font-family: "Arial"; src: url("` + url + `"); }` +
		`@font-face { font-family: "sans-serif"; src: url("` + url + `"); }`
}

// fileURL converts a filesystem path to a file:// URL Chrome accepts.
// Windows paths use forward slashes and a leading slash (file:///C:/...).
func fileURL(path string) string {
	p := strings.ReplaceAll(path, `\`, "/")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return "file://" + p
}

// insertStyleBlock inserts a <style> block into HTML content.
// Tries </head> first, then after <body>, then prepends.
// CSS content is sanitized to prevent breaking out of the style tag.
func insertStyleBlock(htmlContent, css string) string {
	styleBlock := "<style>" + sanitizeCSS(css) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could close the <style> block early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
