package invoice2pdf

import (
	"runtime"

	"github.com/dkosarev/go-invoice2pdf/internal/fileutil"
)

// FontResolver locates a font file capable of rendering Cyrillic text.
// Resolve returns the font path, or "" when no usable font was found.
// Absence degrades rendering quality but never fails the pipeline.
type FontResolver interface {
	Resolve() string
}

// systemFontResolver probes platform-standard font locations.
type systemFontResolver struct{}

// Compile-time interface check
var _ FontResolver = systemFontResolver{}

func (systemFontResolver) Resolve() string {
	for _, path := range cyrillicFontPaths(runtime.GOOS) {
		if fileutil.FileExists(path) {
			return path
		}
	}
	return ""
}

// cyrillicFontPaths returns candidate font paths for the given OS, in
// preference order.
func cyrillicFontPaths(goos string) []string {
	switch goos {
	case "windows":
		return []string{
			`C:\Windows\Fonts\arial.ttf`,
			`C:\Windows\Fonts\ARIAL.TTF`,
		}
	case "darwin":
		return []string{
			"/Library/Fonts/Arial.ttf",
			"/System/Library/Fonts/Supplemental/Arial.ttf",
			"/System/Library/Fonts/Helvetica.ttc",
		}
	default:
		return []string{
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
			"/usr/share/fonts/liberation-sans/LiberationSans-Regular.ttf",
			"/usr/share/fonts/noto/NotoSans-Regular.ttf",
		}
	}
}
