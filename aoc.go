// Package aoc are quick & dirty utilities for solving Advent of Code
// problems. (forked from bradfitz/aoc)
//
// A solver is a struct embedding *Puzzle with one method per answer named
// D{day}p{part}. The doc comment of each method may carry a sample:
//
//	/*
//	want=142
//
//	sample input
//	*/
//
// Run checks every part against its sample before solving the real input.
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  strings.TrimSpace(m[1]),
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples found in the doc comments of src,
// keyed by function name. A sample without input inherits the input of
// the previous sample.
func extractSamples(src []byte) map[string]sample {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing source to extract samples: %v", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
}

// Input returns the puzzle input, or the sample input in sample mode.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return loadInput(p.year, p.day.day)
}

func (p *Puzzle) Reader() io.Reader {
	return bytes.NewReader(p.Input())
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(p.Reader())
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Lines returns every line of input, blank lines included.
func (p *Puzzle) Lines() []string {
	var lines []string
	p.ForLines(func(line string) {
		lines = append(lines, line)
	})
	return lines
}

func (p *Puzzle) Debug(v ...any) {
	if flagDebug {
		fmt.Println(v...)
	}
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		fmt.Printf(format+"\n", args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	Part string
	Name string
}

// call invokes the part's method on slvr. The method is looked up on
// every call so that it observes the Puzzle installed by setPuzzle.
func (ps partSolver) call(slvr any) any {
	m := reflect.ValueOf(slvr).MethodByName(ps.Name)
	return m.Interface().(func() any)()
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods named D{day}p{part} on x, which must be
// a pointer to a struct. The methods must have the signature func() any.
func extractMethods(x any) map[int]day {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		log.Fatalf("Register: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		if _, ok := v.Method(i).Interface().(func() any); !ok {
			log.Fatalf("%s: got %v; want func() any", mn, v.Method(i).Type())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

func setPuzzle(slvr any, p *Puzzle) {
	f := reflect.ValueOf(slvr).Elem().FieldByName("Puzzle")
	if !f.IsValid() {
		log.Fatalf("%T does not embed *aoc.Puzzle", slvr)
	}
	f.Set(reflect.ValueOf(p))
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagFetch      bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.BoolVar(&flagFetch, "fetch", false, "download missing inputs from adventofcode.com")
}

var initFlags = sync.OnceFunc(flag.Parse)

// SampleResult is the outcome of running one part against its sample.
type SampleResult struct {
	Day  int
	Part string
	Name string
	Got  string
	Want string
}

func (r SampleResult) OK() bool {
	return r.Got == r.Want
}

// VerifySamples runs every part of slvr that has a sample in src and
// reports what it returned. Parts without a sample are skipped.
func VerifySamples(src []byte, slvr any) []SampleResult {
	samples := extractSamples(src)
	days := extractMethods(slvr)
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)

	var out []SampleResult
	for _, d := range dayNums {
		p := &Puzzle{
			day:        days[d],
			samples:    samples,
			SampleMode: true,
		}
		setPuzzle(slvr, p)
		for _, ps := range days[d].parts {
			s, ok := samples[ps.Name]
			if !ok {
				continue
			}
			p.solver = ps
			out = append(out, SampleResult{
				Day:  d,
				Part: ps.Part,
				Name: ps.Name,
				Got:  fmt.Sprint(ps.call(slvr)),
				Want: s.want,
			})
		}
	}
	return out
}

func runDay(slvr any, year int, day day, samples map[string]sample) {
	p := Puzzle{
		year:    year,
		day:     day,
		samples: samples,
	}
	fmt.Println("Running day", day.day)
	setPuzzle(slvr, &p)
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := ps.call(slvr)
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
}

// Run solves every registered day of year in ascending order, or only the
// day selected with -day.
func Run(year int, src []byte, slvr any) {
	samples := extractSamples(src)
	days := extractMethods(slvr)
	initFlags()

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, year, day, samples)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		runDay(slvr, year, days[day], samples)
		fmt.Println()
	}
}

func inputPath(year, day int) string {
	return filepath.Join(strconv.Itoa(year), fmt.Sprintf("%d.input", day))
}

// loadInput reads the input for the given day from disk. When the file is
// missing and -fetch is set it is downloaded and cached.
func loadInput(year, day int) []byte {
	filename := inputPath(year, day)
	b, err := os.ReadFile(filename)
	if err == nil {
		return b
	}
	if !flagFetch {
		log.Fatalf("reading input: %v (run with -fetch to download it)", err)
	}
	body := fetch(fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", year, day))
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	return body
}

var session = sync.OnceValue[string](func() string {
	return strings.TrimSpace(string(MustGet(os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")))))
})

func fetch(url string) []byte {
	req := MustGet(http.NewRequest("GET", url, nil))
	req.AddCookie(&http.Cookie{Name: "session", Value: session()})
	res := MustGet(http.DefaultClient.Do(req))
	defer res.Body.Close()
	if res.StatusCode != 200 {
		log.Fatalf("bad status fetching %s: %v", url, res.Status)
	}
	return MustGet(io.ReadAll(res.Body))
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero element of list, or else the zero T.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
