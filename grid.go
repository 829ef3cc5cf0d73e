package aoc

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Grid[T any] [][]T

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if len(g) == 0 || p.X < 0 || p.Y < 0 || p.X >= len(g[0]) || p.Y >= len(g) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid returns lines as a grid of bytes. Short lines are padded with
// pad so that every row is as wide as the widest line.
func ParseGrid(lines []string, pad byte) Grid[byte] {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	g := MakeGrid[byte](width, len(lines))
	for y, l := range lines {
		copy(g[y], l)
		for x := len(l); x < width; x++ {
			g[y][x] = pad
		}
	}
	return g
}

// ForEach calls f for every cell in row-major order.
func (g Grid[T]) ForEach(f func(Pt, T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

// CountNeighbors returns how many of the eight cells around p satisfy match.
// Cells outside the grid never match.
func (g Grid[T]) CountNeighbors(p Pt, match func(T) bool) int {
	n := 0
	p.ForNeighbors(func(q Pt) bool {
		if v, ok := g.AtOk(q); ok && match(v) {
			n++
		}
		return true
	})
	return n
}

type hashFn[T any] func(*T) deephash.Sum

var hashers map[reflect.Type]any // map[reflect.Type]hashFn[T]

func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) TransposeInto(out Grid[T]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[x][y] = g[y][x]
		}
	}
}

func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.TransposeInto(out)
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

func (g Grid[T]) String() string {
	var sb strings.Builder
	for _, row := range g {
		for _, v := range row {
			switch v := any(v).(type) {
			case byte:
				sb.WriteByte(v)
			case bool:
				if v {
					sb.WriteByte('#')
				} else {
					sb.WriteByte('.')
				}
			default:
				fmt.Fprint(&sb, v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// RectArea returns the number of cells in the axis-aligned rectangle with
// a and b as opposite corners, both included.
func (a Pt2[T]) RectArea(b Pt2[T]) T {
	return (AbsDiff(a.X, b.X) + 1) * (AbsDiff(a.Y, b.Y) + 1)
}

type Pt3[T constraints.Signed] struct {
	X, Y, Z T
}

type Pt3Int = Pt3[int]

// SqDist returns the squared euclidean distance between a and b.
func (a Pt3[T]) SqDist(b Pt3[T]) T {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return dx*dx + dy*dy + dz*dz
}

func (a Pt3[T]) String() string {
	return fmt.Sprintf("%d,%d,%d", a.X, a.Y, a.Z)
}
