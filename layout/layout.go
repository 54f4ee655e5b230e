package layout

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

type Point struct {
	X, Y int
}

// Dimensions of a resolved box
type Dimensions struct {
	Origin        Point // TL corner
	Width, Height int
}

func (d Dimensions) Empty() bool {
	return d.Width <= 0 || d.Height <= 0
}

type Direction int

const (
	Y Direction = iota
	X
)

// LayoutBox draws into the area it was given.
type LayoutBox func(Dimensions)

func EmptyBox(Dimensions) {}

type Flex struct {
	Dir   Direction // direction of the main axis
	Items []FlexItem
}

func Column(items ...FlexItem) *Flex {
	return &Flex{Dir: Y, Items: items}
}

func Row(items ...FlexItem) *Flex {
	return &Flex{Dir: X, Items: items}
}

type FlexItem struct {
	Box  LayoutBox
	Flex *Flex
	Size Constraint
}

func FlexItemBox(box LayoutBox, size Constraint, flex *Flex) FlexItem {
	if box == nil {
		box = EmptyBox
	}
	return FlexItem{Box: box, Size: size, Flex: flex}
}

type Constraint struct {
	Min, Max Size
}

func Exact(size Size) Constraint {
	return Constraint{Min: size, Max: size}
}

func Max(size Size) Constraint {
	return Constraint{Min: Abs(0), Max: size}
}

type Size struct {
	abs int     // absolute size
	rel float64 // [0, 1]
}

func Abs(abs int) Size {
	return Size{abs: abs}
}

func Rel(rel float64) Size {
	return Size{rel: rel}
}

func (s Size) toAbs(size int) int {
	if s.abs != 0 {
		return s.abs
	}
	return int(s.rel * float64(size))
}

// StartLayouting lays the flex out on a width x height screen and calls
// every box with its area.
func (f *Flex) StartLayouting(width, height int) {
	f.Layout(Dimensions{Width: width, Height: height})
}

// Layout resolves the items inside area, calls their boxes, then lays out
// nested flexes. Items whose minimum size does not fit are skipped.
func (f *Flex) Layout(area Dimensions) {
	dims := f.Resolve(area)
	for i, item := range f.Items {
		if dims[i].Empty() {
			continue
		}
		item.Box(dims[i])
	}
	for i, item := range f.Items {
		if item.Flex != nil && !dims[i].Empty() {
			item.Flex.Layout(dims[i])
		}
	}
}

// Resolve computes the area of every item without drawing.
func (f *Flex) Resolve(area Dimensions) []Dimensions {
	total := area.Height
	if f.Dir == X {
		total = area.Width
	}
	sizes := distribute(max(total, 0), f.Items)

	dims := make([]Dimensions, len(f.Items))
	orig := area.Origin
	for i, size := range sizes {
		if f.Dir == Y {
			dims[i] = Dimensions{Origin: orig, Width: area.Width, Height: size}
			orig.Y += size
		} else {
			dims[i] = Dimensions{Origin: orig, Width: size, Height: area.Height}
			orig.X += size
		}
	}
	return dims
}

// distribute first gives every item its minimum size, in order, then shares
// the remaining space in proportion to how much each item may still grow.
func distribute(total int, items []FlexItem) []int {
	sizes := make([]int, len(items))
	skipped := make([]bool, len(items))
	remaining := total
	for i, item := range items {
		m := item.Size.Min.toAbs(total)
		if m > remaining {
			skipped[i] = true
			continue
		}
		sizes[i] = m
		remaining -= m
	}

	growth := make([]float64, len(items))
	for i, item := range items {
		if skipped[i] {
			continue
		}
		growth[i] = float64(max(item.Size.Max.toAbs(total)-sizes[i], 0))
	}

	want := floats.Sum(growth)
	if remaining == 0 || want == 0 {
		return sizes
	}
	if want <= float64(remaining) {
		for i, g := range growth {
			sizes[i] += int(g)
		}
		return sizes
	}

	// largest remainder: floor every share, hand out what is left to the
	// largest fractions
	floats.Scale(float64(remaining)/want, growth)
	fractions := make([]float64, len(growth))
	given := 0
	for i, g := range growth {
		whole := math.Floor(g)
		sizes[i] += int(whole)
		given += int(whole)
		fractions[i] = whole - g
	}
	inds := make([]int, len(fractions))
	floats.Argsort(fractions, inds)
	for k := 0; k < remaining-given && k < len(inds); k++ {
		sizes[inds[k]]++
	}
	return sizes
}
