package display

import (
	"math"
	"strings"

	"github.com/MonetDB/cmdline/errors"
)

// Columns lays the given texts out side by side as weighted columns inside
// a window of width visible columns. Each column receives
// round(usable * weight/sum) columns, where usable is the width minus all
// paddings. Every column keeps its own cursor and text attribute across
// rows; rendering stops on the first row in which every column has been
// exhausted. breakAll is reserved for scripts without word-boundary
// semantics and is currently ignored.
func Columns(width int, weights []float64, texts []string, leftPad, rightPad []int,
	softHyphen byte, breakAll bool) (string, error) {

	columns := len(texts)
	if columns < 1 {
		return "", errors.NewLayout("columns: at least 1 column is required")
	}
	if len(weights) != columns {
		return "", errors.NewLayout("columns: weights: invalid number of elements, %d expected", columns)
	}
	if len(leftPad) != columns {
		return "", errors.NewLayout("columns: left paddings: invalid number of elements, %d expected", columns)
	}
	if len(rightPad) != columns {
		return "", errors.NewLayout("columns: right paddings: invalid number of elements, %d expected", columns)
	}

	_ = breakAll

	workWidth := width
	weightSum := 0.0
	for i := 0; i < columns; i++ {
		if weights[i] <= 0 {
			return "", errors.NewLayout("columns: the width weight of column %d is not positive", i)
		}
		if leftPad[i] < 0 {
			return "", errors.NewLayout("columns: the left padding of column %d is negative", i)
		}
		if rightPad[i] < 0 {
			return "", errors.NewLayout("columns: the right padding of column %d is negative", i)
		}
		workWidth -= leftPad[i] + rightPad[i]
		weightSum += weights[i]
	}
	if workWidth < columns {
		return "", errors.NewLayout("columns: cannot render text, window width too small")
	}

	colWidth := make([]int, columns)
	formatters := make([]*Formatter, columns)
	for i := 0; i < columns; i++ {
		w := int(math.Round(float64(workWidth) * (weights[i] / weightSum)))
		if w < 1 {
			return "", errors.NewLayout("columns: cannot render text, window width too small")
		}
		colWidth[i] = w
		formatters[i] = NewFormatter(texts[i], softHyphen)
	}

	var out strings.Builder
	for {
		terminated := 0

		for i := 0; i < columns; i++ {
			if leftPad[i] > 0 {
				out.WriteString(strings.Repeat(" ", leftPad[i]))
			}
			if formatters[i].Done() {
				out.WriteString(strings.Repeat(" ", colWidth[i]))
				terminated++
			} else {
				formatters[i].Line(colWidth[i], &out)
			}
			if rightPad[i] > 0 {
				out.WriteString(strings.Repeat(" ", rightPad[i]))
			}
		}
		out.WriteByte('\n')

		if terminated >= columns {
			break
		}
	}

	return out.String(), nil
}
