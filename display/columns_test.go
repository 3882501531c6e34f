package display

import (
	stderrs "errors"
	"strings"
	"testing"

	"github.com/chriso345/gore/assert"
	"github.com/chriso345/gore/vital"
	"github.com/google/go-cmp/cmp"

	clierr "github.com/MonetDB/cmdline/errors"
)

func TestColumns_EqualWeights(t *testing.T) {
	// 12 columns minus two 1-column left paddings leaves a 10-column
	// usable area, split 5/5 by equal weights.
	out, err := Columns(12,
		[]float64{1, 1},
		[]string{"aaaaa", "bbbbb"},
		[]int{1, 1},
		[]int{0, 0},
		0, false)
	vital.Nil(t, err)

	want := " \x1b[0maaaaa \x1b[0mbbbbb\n" +
		"            \n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("rendered columns mismatch (-want +got):\n%s", diff)
	}
}

func TestColumns_StopsWhenAllColumnsExhausted(t *testing.T) {
	// The long column drives three content rows; the short one is padded
	// with blanks after its first row. One final blank row closes the
	// output once every column is done.
	out, err := Columns(8,
		[]float64{1, 1},
		[]string{"aa", "bb cc dd"},
		[]int{0, 0},
		[]int{0, 0},
		0, false)
	vital.Nil(t, err)

	rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Equal(t, 4, len(rows))
	assert.StringContains(t, rows[0], "aa")
	assert.StringContains(t, rows[0], "bb")
	assert.StringContains(t, rows[1], "cc")
	assert.StringContains(t, rows[2], "dd")
	assert.Equal(t, strings.Repeat(" ", 8), rows[3])
}

func TestColumns_WeightedSplit(t *testing.T) {
	// 40/60 weights over 10 usable columns give 4 and 6.
	out, err := Columns(10,
		[]float64{40, 60},
		[]string{"xxxx", "yyyyyy"},
		[]int{0, 0},
		[]int{0, 0},
		0, false)
	vital.Nil(t, err)

	rows := strings.Split(out, "\n")
	assert.StringContains(t, rows[0], "xxxx\x1b[0myyyyyy")
}

func TestColumns_ValidationErrors(t *testing.T) {
	type call struct {
		name     string
		width    int
		weights  []float64
		texts    []string
		leftPad  []int
		rightPad []int
	}
	cases := []call{
		{"no columns", 80, nil, nil, nil, nil},
		{"weights length", 80, []float64{1}, []string{"a", "b"}, []int{0, 0}, []int{0, 0}},
		{"left padding length", 80, []float64{1, 1}, []string{"a", "b"}, []int{0}, []int{0, 0}},
		{"right padding length", 80, []float64{1, 1}, []string{"a", "b"}, []int{0, 0}, []int{0}},
		{"zero weight", 80, []float64{0, 1}, []string{"a", "b"}, []int{0, 0}, []int{0, 0}},
		{"negative left padding", 80, []float64{1, 1}, []string{"a", "b"}, []int{-1, 0}, []int{0, 0}},
		{"negative right padding", 80, []float64{1, 1}, []string{"a", "b"}, []int{0, 0}, []int{0, -1}},
		{"window too small", 3, []float64{1, 1}, []string{"a", "b"}, []int{1, 1}, []int{0, 0}},
		{"column rounds to zero", 50, []float64{1, 1000}, []string{"a", "b"}, []int{0, 0}, []int{0, 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Columns(c.width, c.weights, c.texts, c.leftPad, c.rightPad, 0, false)
			assert.NotNil(t, err)

			var layout clierr.LayoutError
			assert.True(t, stderrs.As(err, &layout))
		})
	}
}

func TestColumns_SingleColumnWrap(t *testing.T) {
	out, err := Columns(10,
		[]float64{1},
		[]string{"lorem ipsum dolor"},
		[]int{2},
		[]int{2},
		0, false)
	vital.Nil(t, err)

	for _, row := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		assert.True(t, strings.HasPrefix(row, "  "))
		assert.True(t, strings.HasSuffix(row, "  "))
	}
	assert.StringContains(t, out, "lorem")
	assert.StringContains(t, out, "ipsum")
	assert.StringContains(t, out, "dolor")
}
