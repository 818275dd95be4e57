package smartselect

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI escape sequence regex to strip styles/colors from backdrop lines.
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Overlay splices a rendered popover into the host's frame at the alignment
// coordinates (interpreted as terminal cells). Backdrop lines the popover
// covers are flattened to plain text, since an ANSI sequence cannot be cut
// mid-line safely; everything outside the popover's bounding box is kept.
func Overlay(base, popover string, a Alignment) string {
	if popover == "" {
		return base
	}
	x, y := int(a.X), int(a.Y)
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	baseLines := strings.Split(base, "\n")
	popLines := strings.Split(popover, "\n")
	for len(baseLines) < y+len(popLines) {
		baseLines = append(baseLines, "")
	}

	for i, pl := range popLines {
		row := y + i
		plain := ansiRE.ReplaceAllString(baseLines[row], "")
		prefix := plain
		if len(prefix) > x {
			prefix = prefix[:x]
		}
		prefix += strings.Repeat(" ", x-len(prefix))

		suffix := ""
		cut := x + lipgloss.Width(pl)
		if len(plain) > cut {
			suffix = plain[cut:]
		}
		baseLines[row] = prefix + pl + suffix
	}
	return strings.Join(baseLines, "\n")
}
