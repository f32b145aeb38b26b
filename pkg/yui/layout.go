package yui

// DistributeExtra splits extra space among n children. When any weight is
// positive the space goes to the positively weighted children in
// proportion to their weights; otherwise the stretchable children share it
// equally. Rounding uses cumulative totals so the parts always add up to
// extra.
func DistributeExtra(extra int, weights []int, stretch []bool) []int {
	n := len(weights)
	out := make([]int, n)
	if extra <= 0 || n == 0 {
		return out
	}

	shares := make([]int, n)
	total := 0
	for i, w := range weights {
		if w > 0 {
			shares[i] = w
			total += w
		}
	}
	if total == 0 {
		for i := 0; i < n && i < len(stretch); i++ {
			if stretch[i] {
				shares[i] = 1
				total++
			}
		}
	}
	if total == 0 {
		return out
	}

	acc, given := 0, 0
	for i, s := range shares {
		if s == 0 {
			continue
		}
		acc += s
		upto := extra * acc / total
		out[i] = upto - given
		given = upto
	}
	return out
}

// BoxSizes returns each child's size along a box's primary axis: its
// minimum plus its share of whatever total leaves over. When total is
// smaller than the sum of minimums the minimums are returned unchanged and
// the caller clips.
func BoxSizes(total int, mins, weights []int, stretch []bool) []int {
	sizes := make([]int, len(mins))
	used := 0
	for i, m := range mins {
		if m < 0 {
			m = 0
		}
		sizes[i] = m
		used += m
	}
	extra := DistributeExtra(total-used, weights, stretch)
	for i := range sizes {
		sizes[i] += extra[i]
	}
	return sizes
}

// AlignOffset returns where a child of size child starts inside avail
// under alignment a. Unchanged behaves like AlignBegin.
func AlignOffset(a Alignment, avail, child int) int {
	free := avail - child
	if free <= 0 {
		return 0
	}
	switch a {
	case AlignCenter:
		return free / 2
	case AlignEnd:
		return free
	default:
		return 0
	}
}

// AlignedSize returns the child's size along one axis of an alignment
// container. An unchanged axis or a stretchable child fills the space.
func AlignedSize(a Alignment, avail, natural int, childStretch bool) int {
	if a == AlignUnchanged || childStretch || natural > avail {
		return avail
	}
	return natural
}

// PaneSplit returns the initial sizes of the two panes of a split
// container of size total. Weights act as proportional factors; with no
// weights the space is halved. Each pane gets at least its minimum when
// total allows. ok is false while total is zero, which defers the split
// until the container has been given a size.
func PaneSplit(total, w0, w1, min0, min1 int) (first, second int, ok bool) {
	if total <= 0 {
		return 0, 0, false
	}
	if w0 <= 0 && w1 <= 0 {
		w0, w1 = 1, 1
	}
	if w0 < 0 {
		w0 = 0
	}
	if w1 < 0 {
		w1 = 0
	}
	first = total * w0 / (w0 + w1)
	if first < min0 {
		first = min0
	}
	if total-first < min1 {
		first = total - min1
	}
	first = clamp(first, 0, total)
	return first, total - first, true
}

// ImageSize returns the size an image occupies in the available area. With
// autoScale the image grows to fit while keeping the source aspect ratio.
// Without it stretchable axes fill the space and the others keep the
// natural size, whatever that does to the aspect ratio.
func ImageSize(availW, availH, natW, natH int, stretchH, stretchV, autoScale bool) (w, h int) {
	if natW <= 0 || natH <= 0 {
		return availW, availH
	}
	if autoScale {
		if availW <= 0 || availH <= 0 {
			return 0, 0
		}
		// Compare availW/natW with availH/natH without floats.
		if availW*natH <= availH*natW {
			return availW, natH * availW / natW
		}
		return natW * availH / natH, availH
	}
	w, h = natW, natH
	if stretchH {
		w = availW
	}
	if stretchV {
		h = availH
	}
	return min(w, availW), min(h, availH)
}
