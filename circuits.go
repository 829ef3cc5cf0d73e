package aoc

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/combin"
)

// NoLimit is passed to BuildCircuits to process every pair.
const NoLimit = -1

// MaxCoord bounds the magnitude of each coordinate so that the squared
// distance between any two points fits in an int.
const MaxCoord = 1 << 29

var (
	// ErrNoPoints is returned when the input holds no points.
	ErrNoPoints = errors.New("no points")
	// ErrInsufficientGroups is returned when fewer circuits exist than asked for.
	ErrInsufficientGroups = errors.New("insufficient groups")
	// ErrNoBridge is returned when the points never join into one circuit.
	ErrNoBridge = errors.New("no bridging connection")
	// ErrCoordRange is returned for a coordinate beyond MaxCoord.
	ErrCoordRange = errors.New("coordinate out of range")
)

// ParsePt3s reads one x,y,z triple per line. Blank lines are ignored.
func ParsePt3s(r io.Reader) ([]Pt3Int, error) {
	var pts []Pt3Int
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" {
			continue
		}
		p, err := parsePt3(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pts = append(pts, p)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(pts) == 0 {
		return nil, ErrNoPoints
	}
	return pts, nil
}

func parsePt3(s string) (Pt3Int, error) {
	f := strings.Split(s, ",")
	if len(f) != 3 {
		return Pt3Int{}, fmt.Errorf("%q: want 3 comma separated coordinates, got %d", s, len(f))
	}
	var c [3]int
	for i, v := range f {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Pt3Int{}, fmt.Errorf("%q: bad coordinate: %w", s, err)
		}
		if n < -MaxCoord || n > MaxCoord {
			return Pt3Int{}, fmt.Errorf("%q: %w: %d", s, ErrCoordRange, n)
		}
		c[i] = n
	}
	return Pt3Int{c[0], c[1], c[2]}, nil
}

// PairDist is an unordered pair of points, by index, and the squared
// distance between them.
type PairDist struct {
	A, B int
	Dist int
}

// SortedPairs returns every pair of distinct points ordered by ascending
// squared distance. Pairs are generated with A < B in lexicographic order
// and sorted stably, so equal distances keep that order.
func SortedPairs(pts []Pt3Int) []PairDist {
	if len(pts) < 2 {
		return nil
	}
	pairs := make([]PairDist, 0, combin.Binomial(len(pts), 2))
	gen := combin.NewCombinationGenerator(len(pts), 2)
	ab := make([]int, 2)
	for gen.Next() {
		gen.Combination(ab)
		pairs = append(pairs, PairDist{
			A:    ab[0],
			B:    ab[1],
			Dist: pts[ab[0]].SqDist(pts[ab[1]]),
		})
	}
	slices.SortStableFunc(pairs, func(a, b PairDist) int {
		return cmp.Compare(a.Dist, b.Dist)
	})
	return pairs
}

// Circuit is a group of points joined by accepted connections.
type Circuit struct {
	Points []Pt3Int
	Links  []Edge[Pt3Int]
}

// Circuits is the result of joining points into groups. Groups are kept
// in creation order; a merged group takes the position of the older of
// the two.
type Circuits struct {
	pts []Pt3Int
	ds  *DisjointSet

	touched  []bool
	nTouched int
	groups   int

	// Indexed by disjoint-set root. Only meaningful for touched roots.
	seq   []int
	links [][]Edge[Pt3Int]

	nextSeq   int
	processed int
}

func newCircuits(pts []Pt3Int) *Circuits {
	return &Circuits{
		pts:     pts,
		ds:      NewDisjointSet(len(pts)),
		touched: make([]bool, len(pts)),
		seq:     make([]int, len(pts)),
		links:   make([][]Edge[Pt3Int], len(pts)),
	}
}

// accept processes one pair. It reports whether the pair changed group
// membership; a pair whose points already share a group does not.
func (c *Circuits) accept(p PairDist) bool {
	c.processed++
	ta, tb := c.touched[p.A], c.touched[p.B]
	if ta && tb && c.ds.Same(p.A, p.B) {
		return false
	}

	var seq int
	ra, rb := c.ds.Find(p.A), c.ds.Find(p.B)
	switch {
	case !ta && !tb:
		seq = c.nextSeq
		c.nextSeq++
		c.groups++
	case ta && !tb:
		seq = c.seq[ra]
	case !ta && tb:
		seq = c.seq[rb]
	default:
		seq = min(c.seq[ra], c.seq[rb])
		c.groups--
	}

	var links []Edge[Pt3Int]
	if ta {
		links = c.links[ra]
		c.links[ra] = nil
	}
	if tb {
		links = append(links, c.links[rb]...)
		c.links[rb] = nil
	}
	links = append(links, Edge[Pt3Int]{c.pts[p.A], c.pts[p.B]})

	root, _ := c.ds.Union(p.A, p.B)
	c.seq[root] = seq
	c.links[root] = links
	for _, i := range []int{p.A, p.B} {
		if !c.touched[i] {
			c.touched[i] = true
			c.nTouched++
		}
	}
	return true
}

// connected reports whether every point is in the one remaining group.
func (c *Circuits) connected() bool {
	return c.groups == 1 && c.nTouched == len(c.pts)
}

// BuildCircuits joins pts into circuits by processing the closest pairs
// first. At most limit pairs are processed, counting pairs that were
// skipped because their points already shared a circuit; use NoLimit to
// process them all.
func BuildCircuits(pts []Pt3Int, limit int) (*Circuits, error) {
	if len(pts) == 0 {
		return nil, ErrNoPoints
	}
	c := newCircuits(pts)
	for _, p := range SortedPairs(pts) {
		if limit != NoLimit && c.processed >= limit {
			break
		}
		c.accept(p)
	}
	return c, nil
}

// Len returns the number of circuits.
func (c *Circuits) Len() int {
	return c.groups
}

// Processed returns the number of pairs that were considered.
func (c *Circuits) Processed() int {
	return c.processed
}

// roots returns the disjoint-set root of every circuit in creation order.
func (c *Circuits) roots() []int {
	seen := make(map[int]bool)
	var roots []int
	for i := range c.pts {
		if !c.touched[i] {
			continue
		}
		if r := c.ds.Find(i); !seen[r] {
			seen[r] = true
			roots = append(roots, r)
		}
	}
	slices.SortFunc(roots, func(a, b int) int {
		return cmp.Compare(c.seq[a], c.seq[b])
	})
	return roots
}

// Groups returns the circuits in creation order. Points within a circuit
// are in input order.
func (c *Circuits) Groups() []Circuit {
	roots := c.roots()
	byRoot := make(map[int]int, len(roots)) // root -> index into out
	out := make([]Circuit, len(roots))
	for i, r := range roots {
		byRoot[r] = i
		out[i].Links = slices.Clone(c.links[r])
	}
	for i, p := range c.pts {
		if !c.touched[i] {
			continue
		}
		g := &out[byRoot[c.ds.Find(i)]]
		g.Points = append(g.Points, p)
	}
	return out
}

// Sizes returns the number of points in each circuit, in creation order.
func (c *Circuits) Sizes() []int {
	roots := c.roots()
	sizes := make([]int, len(roots))
	for i, r := range roots {
		sizes[i] = c.ds.Size(r)
	}
	return sizes
}

// LargestProduct returns the product of the sizes of the k largest
// circuits. Circuits of equal size are taken in creation order.
func (c *Circuits) LargestProduct(k int) (int, error) {
	sizes := c.Sizes()
	if k <= 0 || k > len(sizes) {
		return 0, fmt.Errorf("%w: want %d, have %d", ErrInsufficientGroups, k, len(sizes))
	}
	slices.SortStableFunc(sizes, func(a, b int) int {
		return cmp.Compare(b, a)
	})
	return Product(sizes[:k]...), nil
}

// LastBridge replays the closest-first joining of pts without a limit and
// returns the connection after which every point belongs to a single
// circuit.
func LastBridge(pts []Pt3Int) (Edge[Pt3Int], error) {
	if len(pts) == 0 {
		return Edge[Pt3Int]{}, ErrNoPoints
	}
	c := newCircuits(pts)
	for _, p := range SortedPairs(pts) {
		if c.accept(p) && c.connected() {
			return Edge[Pt3Int]{pts[p.A], pts[p.B]}, nil
		}
	}
	return Edge[Pt3Int]{}, fmt.Errorf("%w: %d points never joined", ErrNoBridge, len(pts))
}
