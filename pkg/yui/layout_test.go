package yui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/yui/pkg/yui"
)

func TestDistributeExtra(t *testing.T) {
	tests := []struct {
		name    string
		extra   int
		weights []int
		stretch []bool
		want    []int
	}{
		{"weights", 30, []int{1, 2}, []bool{false, false}, []int{10, 20}},
		{"weights win over stretch", 30, []int{0, 1}, []bool{true, false}, []int{0, 30}},
		{"equal stretch", 31, []int{0, 0, 0}, []bool{true, false, true}, []int{15, 0, 16}},
		{"nothing stretches", 10, []int{0, 0}, []bool{false, false}, []int{0, 0}},
		{"rounding sums to extra", 10, []int{1, 1, 1}, nil, []int{3, 3, 4}},
		{"no extra", 0, []int{1}, []bool{true}, []int{0}},
		{"negative extra", -5, []int{1}, []bool{true}, []int{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, yui.DistributeExtra(tt.extra, tt.weights, tt.stretch))
		})
	}
}

func TestBoxSizes(t *testing.T) {
	got := yui.BoxSizes(50, []int{5, 5, 10}, []int{0, 0, 0}, []bool{false, true, false})
	assert.Equal(t, []int{5, 35, 10}, got)

	got = yui.BoxSizes(10, []int{8, 8}, []int{1, 1}, nil)
	assert.Equal(t, []int{8, 8}, got, "too small keeps minimums")
}

func TestAlignOffset(t *testing.T) {
	assert.Equal(t, 0, yui.AlignOffset(yui.AlignBegin, 10, 4))
	assert.Equal(t, 3, yui.AlignOffset(yui.AlignCenter, 10, 4))
	assert.Equal(t, 6, yui.AlignOffset(yui.AlignEnd, 10, 4))
	assert.Equal(t, 0, yui.AlignOffset(yui.AlignEnd, 3, 4))
}

func TestPaneSplit(t *testing.T) {
	first, second, ok := yui.PaneSplit(0, 1, 1, 0, 0)
	assert.False(t, ok, "deferred until sized")
	assert.Zero(t, first+second)

	first, second, ok = yui.PaneSplit(90, 1, 2, 0, 0)
	require.True(t, ok)
	assert.Equal(t, 30, first)
	assert.Equal(t, 60, second)

	first, second, _ = yui.PaneSplit(100, 0, 0, 0, 0)
	assert.Equal(t, 50, first)
	assert.Equal(t, 50, second)

	first, second, _ = yui.PaneSplit(100, 1, 9, 20, 0)
	assert.Equal(t, 20, first)
	assert.Equal(t, 80, second)
}

func TestImageSize(t *testing.T) {
	w, h := yui.ImageSize(200, 100, 100, 100, false, false, true)
	assert.Equal(t, 100, w)
	assert.Equal(t, 100, h)

	w, h = yui.ImageSize(200, 300, 100, 50, false, false, true)
	assert.Equal(t, 200, w)
	assert.Equal(t, 100, h)

	w, h = yui.ImageSize(200, 300, 100, 50, true, false, false)
	assert.Equal(t, 200, w)
	assert.Equal(t, 50, h, "non-stretchable axis keeps natural size")
}

func TestContainerStretchDerivation(t *testing.T) {
	ui, _, _, vbox := newDialog(t)
	f := ui.Factory()

	hbox, err := f.CreateHBox(vbox)
	require.NoError(t, err)
	assert.False(t, hbox.Stretchable(yui.Horizontal))

	lbl, err := f.CreateLabel(hbox, "weighted")
	require.NoError(t, err)
	lbl.SetWeight(yui.Horizontal, 2)
	assert.True(t, hbox.Stretchable(yui.Horizontal))
	assert.False(t, hbox.Stretchable(yui.Vertical))

	_, err = f.CreateVStretch(hbox)
	require.NoError(t, err)
	assert.True(t, hbox.Stretchable(yui.Vertical))

	left, err := f.CreateLeft(vbox)
	require.NoError(t, err)
	assert.False(t, left.Stretchable(yui.Horizontal))
	right, err := f.CreateRight(vbox)
	require.NoError(t, err)
	assert.True(t, right.Stretchable(yui.Horizontal))
	center, err := f.CreateVCenter(vbox)
	require.NoError(t, err)
	assert.True(t, center.Stretchable(yui.Vertical))
}
