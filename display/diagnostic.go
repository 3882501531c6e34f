package display

import (
	"strings"

	"github.com/fatih/color"
)

var (
	messageColor = color.New(color.FgRed)
	caretColor   = color.New(color.FgWhite, color.Bold)
)

// RenderDiagnostic renders an error message together with a windowed slice
// of the reconstructed command line and a caret under the offending byte.
// position is the byte offset of that byte within line; width bounds the
// displayed slice. The window is chosen so that, where the line allows,
// two-thirds of it precede the caret:
//
//   - caret within the first ceil(2W/3) columns, or the whole line fits:
//     window starts at the beginning of the line;
//   - the suffix after the caret is shorter than the remaining tail budget:
//     window is right-aligned to the end of the line;
//   - otherwise the caret sits at the fixed head offset.
func RenderDiagnostic(message, line string, position, width int) string {
	maxHead := (2*width + 2) / 3
	maxTail := width - maxHead

	var start, length int
	switch {
	case position < maxHead || len(line) < width:
		start = 0
		length = min(width, len(line))
	case len(line)-position < maxTail:
		start = len(line) - width
		length = width
	default:
		start = position - maxHead
		length = width
	}
	head := position - start

	var out strings.Builder
	out.WriteString(messageColor.Sprint(message))
	out.WriteString("\n\n")
	out.WriteString(line[start : start+length])
	out.WriteByte('\n')
	out.WriteString(strings.Repeat(" ", head))
	out.WriteString(caretColor.Sprint("^"))
	return out.String()
}
