package main

import (
	_ "embed"
	"slices"
	"strconv"
	"strings"

	"github.com/solver/aoc"
	"gonum.org/v1/gonum/stat/combin"
)

func main() {
	aoc.Run(2025, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

const dialSize = 100

// rotations calls f with the signed click count of each rotation.
func (s solver) rotations(f func(clicks int)) {
	s.ForLines(func(line string) {
		if line == "" {
			return
		}
		n := aoc.Int(line[1:])
		switch line[0] {
		case 'L':
			f(-n)
		case 'R':
			f(n)
		default:
			panic("bad rotation " + line)
		}
	})
}

/*
want=3

L68
L30
R48
L5
R60
L55
L1
L99
R14
L82
*/
func (s solver) D1p1() any {
	dial, zeros := 50, 0
	s.rotations(func(clicks int) {
		dial = aoc.Mod(dial+clicks, dialSize)
		if dial == 0 {
			zeros++
		}
	})
	return zeros
}

// want=6
func (s solver) D1p2() any {
	dial, zeros := 50, 0
	s.rotations(func(clicks int) {
		if clicks >= 0 {
			zeros += (dial + clicks) / dialSize
		} else if n := -clicks; dial == 0 {
			zeros += n / dialSize
		} else if n >= dial {
			zeros += (n-dial)/dialSize + 1
		}
		dial = aoc.Mod(dial+clicks, dialSize)
	})
	return zeros
}

// productIDs calls f with every ID in every range of the input.
func (s solver) productIDs(f func(id int)) {
	for _, r := range strings.Split(strings.TrimSpace(string(s.Input())), ",") {
		if r == "" {
			continue
		}
		lo, hi, ok := strings.Cut(r, "-")
		if !ok {
			panic("bad range " + r)
		}
		for id := aoc.Int(lo); id <= aoc.Int(hi); id++ {
			f(id)
		}
	}
}

// repeats reports whether id is a run of at least copies copies of a
// single pattern. If exact is set the pattern must repeat exactly copies
// times.
func repeats(id string, copies int, exact bool) bool {
	for n := copies; n <= len(id); n++ {
		if len(id)%n == 0 && strings.Repeat(id[:len(id)/n], n) == id {
			return true
		}
		if exact {
			return false
		}
	}
	return false
}

/*
want=1227775554

11-22,95-115,998-1012,1188511880-1188511890,222220-222224,1698522-1698528,446443-446449,38593856-38593862,565653-565659,824824821-824824827,2121212118-2121212124
*/
func (s solver) D2p1() any {
	sum := 0
	s.productIDs(func(id int) {
		if repeats(strconv.Itoa(id), 2, true) {
			sum += id
		}
	})
	return sum
}

// want=4174379265
func (s solver) D2p2() any {
	sum := 0
	s.productIDs(func(id int) {
		if repeats(strconv.Itoa(id), 2, false) {
			sum += id
		}
	})
	return sum
}

// maxJoltage returns the largest number formed by switching on k of the
// batteries, keeping their order.
func maxJoltage(bank []int, k int) int {
	on := make([]int, 0, k)
	start := 0
	for i := range k {
		best := start
		// Leave enough batteries to the right to fill the remaining slots.
		for j := start; j <= len(bank)-(k-i); j++ {
			if bank[j] > bank[best] {
				best = j
			}
		}
		on = append(on, bank[best])
		start = best + 1
	}
	return aoc.FromDigits(on)
}

func (s solver) totalJoltage(k int) int {
	total := 0
	s.ForLines(func(line string) {
		if line = strings.TrimSpace(line); line == "" {
			return
		}
		total += maxJoltage(aoc.Digits(line), k)
	})
	return total
}

/*
want=357

987654321111111
811111111111119
234234234234278
818181911112111
*/
func (s solver) D3p1() any {
	return s.totalJoltage(2)
}

// want=3121910778619
func (s solver) D3p2() any {
	return s.totalJoltage(12)
}

const paperRoll = '@'

func isRoll(b byte) bool { return b == paperRoll }

// accessibleRolls returns the rolls with fewer than four rolls around them.
func accessibleRolls(g aoc.Grid[byte]) []aoc.Pt {
	var out []aoc.Pt
	g.ForEach(func(p aoc.Pt, v byte) {
		if v == paperRoll && g.CountNeighbors(p, isRoll) < 4 {
			out = append(out, p)
		}
	})
	return out
}

/*
want=13

..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.
*/
func (s solver) D4p1() any {
	return len(accessibleRolls(aoc.ParseGrid(s.Lines(), '.')))
}

// want=43
func (s solver) D4p2() any {
	g := aoc.ParseGrid(s.Lines(), '.')
	removed := 0
	for {
		before := g.Hash()
		for _, p := range accessibleRolls(g) {
			g.Set(p, '.')
			removed++
		}
		if g.Hash() == before {
			break
		}
	}
	s.Debugf("after removal:\n%v", g)
	return removed
}

type idRange struct {
	lo, hi int
}

func (r idRange) contains(id int) bool {
	return r.lo <= id && id <= r.hi
}

// ingredients returns the fresh ranges and the available IDs.
func (s solver) ingredients() (ranges []idRange, ids []int) {
	inRanges := true
	s.ForLines(func(line string) {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			inRanges = false
		case inRanges:
			lo, hi, ok := strings.Cut(line, "-")
			if !ok {
				panic("bad range " + line)
			}
			ranges = append(ranges, idRange{aoc.Int(lo), aoc.Int(hi)})
		default:
			ids = append(ids, aoc.Int(line))
		}
	})
	return ranges, ids
}

/*
want=3

3-5
10-14
16-20
12-18

1
5
8
11
17
32
*/
func (s solver) D5p1() any {
	ranges, ids := s.ingredients()
	fresh := 0
	for _, id := range ids {
		if slices.ContainsFunc(ranges, func(r idRange) bool { return r.contains(id) }) {
			fresh++
		}
	}
	return fresh
}

// want=14
func (s solver) D5p2() any {
	ranges, _ := s.ingredients()
	slices.SortFunc(ranges, func(a, b idRange) int { return a.lo - b.lo })
	var merged []idRange
	for _, r := range ranges {
		if n := len(merged); n > 0 && r.lo <= merged[n-1].hi+1 {
			merged[n-1].hi = max(merged[n-1].hi, r.hi)
			continue
		}
		merged = append(merged, r)
	}
	total := 0
	for _, r := range merged {
		total += r.hi - r.lo + 1
	}
	return total
}

// problem is one column block of the worksheet: the operand rows and the
// operator below them.
type problem struct {
	rows aoc.Grid[byte]
	op   byte
}

func (p problem) solve(nums []int) int {
	acc := nums[0]
	for _, n := range nums[1:] {
		switch p.op {
		case '+':
			acc += n
		case '-':
			acc -= n
		case '*':
			acc *= n
		case '/':
			acc /= n
		default:
			panic("bad operator " + string(p.op))
		}
	}
	return acc
}

// byRow reads one number per row.
func (p problem) byRow() []int {
	var nums []int
	for _, row := range p.rows {
		if v := strings.TrimSpace(string(row)); v != "" {
			nums = append(nums, aoc.Int(v))
		}
	}
	return nums
}

// byColumn reads one number per column, right to left, digits top to
// bottom.
func (p problem) byColumn() []int {
	var nums []int
	cols := p.rows.Transpose()
	for i := len(cols) - 1; i >= 0; i-- {
		if v := strings.TrimSpace(string(cols[i])); v != "" {
			nums = append(nums, aoc.Int(v))
		}
	}
	return nums
}

// worksheet splits the input into problems at columns that are blank in
// every row.
func (s solver) worksheet() []problem {
	lines := s.Lines()
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	g := aoc.ParseGrid(lines, ' ')
	size := g.Size()
	blank := func(x int) bool {
		for y := range size.Y {
			if g[y][x] != ' ' {
				return false
			}
		}
		return true
	}

	var out []problem
	for x0 := 0; x0 < size.X; {
		if blank(x0) {
			x0++
			continue
		}
		x1 := x0
		for x1 < size.X && !blank(x1) {
			x1++
		}
		p := problem{rows: make(aoc.Grid[byte], size.Y-1)}
		for y := range size.Y - 1 {
			p.rows[y] = g[y][x0:x1]
		}
		if ops := strings.TrimSpace(string(g[size.Y-1][x0:x1])); ops != "" {
			p.op = ops[0]
		}
		out = append(out, p)
		x0 = x1
	}
	return out
}

/*
want=4277556

123 328  51 64
 45 64  387 23
  6 98  215 314
*   +   *   +
*/
func (s solver) D6p1() any {
	total := 0
	for _, p := range s.worksheet() {
		total += p.solve(p.byRow())
	}
	return total
}

// want=3263827
func (s solver) D6p2() any {
	total := 0
	for _, p := range s.worksheet() {
		total += p.solve(p.byColumn())
	}
	return total
}

const (
	beamStart = 'S'
	splitter  = '^'
)

// manifold returns the graph of where beams travel: arcs go from the start
// and from each splitter to the next splitter or to the exit below the
// grid.
func (s solver) manifold() (*aoc.Graph[aoc.Pt], aoc.Pt, aoc.Grid[byte]) {
	grid := aoc.ParseGrid(s.Lines(), '.')
	size := grid.Size()

	var start aoc.Pt
	grid.ForEach(func(p aoc.Pt, v byte) {
		if v == beamStart {
			start = p
		}
	})

	// fall returns the first splitter below (x, y), or the exit cell.
	fall := func(x, y int) aoc.Pt {
		if x < 0 || x >= size.X {
			return aoc.Pt{X: x, Y: size.Y}
		}
		for y++; y < size.Y; y++ {
			if grid[y][x] == splitter {
				return aoc.Pt{X: x, Y: y}
			}
		}
		return aoc.Pt{X: x, Y: size.Y}
	}

	g := new(aoc.Graph[aoc.Pt])
	g.AddNode(start)
	seen := make(map[aoc.Pt]bool)
	q := aoc.NewQueue(start)
	q.While(func(p aoc.Pt) bool {
		if seen[p] || p.Y == size.Y {
			return true
		}
		seen[p] = true
		next := []aoc.Pt{fall(p.X, p.Y)}
		if p != start {
			next = []aoc.Pt{fall(p.X-1, p.Y), fall(p.X+1, p.Y)}
		}
		for _, n := range next {
			g.AddArc(p, n, 1)
			q.Push(n)
		}
		return true
	})
	return g, start, grid
}

/*
want=21

.......S.......
...............
.......^.......
...............
......^.^......
...............
.....^.^.^.....
...............
....^.^...^....
...............
...^.^...^.^...
...............
..^...^.....^..
...............
.^.^.^.^.^...^.
...............
*/
func (s solver) D7p1() any {
	g, start, grid := s.manifold()
	splits := 0
	for p := range g.ReachableNodes(start) {
		if v, ok := grid.AtOk(p); ok && v == splitter {
			splits++
		}
	}
	return splits
}

// want=40
func (s solver) D7p2() any {
	g, start, _ := s.manifold()
	return g.CountPaths(start)
}

func (s solver) junctionBoxes() []aoc.Pt3Int {
	return aoc.MustGet(aoc.ParsePt3s(s.Reader()))
}

/*
want=40

162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689
*/
func (s solver) D8p1() any {
	limit := 1000
	if s.SampleMode {
		limit = 10
	}
	c := aoc.MustGet(aoc.BuildCircuits(s.junctionBoxes(), limit))
	s.Debugf("%d circuits after %d pairs: %v", c.Len(), c.Processed(), c.Sizes())
	return aoc.MustGet(c.LargestProduct(3))
}

// want=25272
func (s solver) D8p2() any {
	last := aoc.MustGet(aoc.LastBridge(s.junctionBoxes()))
	s.Debug("last connection:", last.A, last.B)
	return last.A.X * last.B.X
}

func (s solver) redTiles() []aoc.Pt {
	var tiles []aoc.Pt
	s.ForLines(func(line string) {
		if line = strings.TrimSpace(line); line == "" {
			return
		}
		xy := aoc.Ints(strings.Split(line, ",")...)
		if len(xy) != 2 {
			panic("bad tile " + line)
		}
		tiles = append(tiles, aoc.Pt{X: xy[0], Y: xy[1]})
	})
	return tiles
}

/*
want=50

7,1
11,1
11,7
9,7
9,5
2,5
2,3
7,3
*/
func (s solver) D9p1() any {
	tiles := s.redTiles()
	best := 0
	gen := combin.NewCombinationGenerator(len(tiles), 2)
	ab := make([]int, 2)
	for gen.Next() {
		gen.Combination(ab)
		best = max(best, tiles[ab[0]].RectArea(tiles[ab[1]]))
	}
	return best
}
