// Package aoc are quick & dirty utilities for running the daily Advent of
// Code solutions: registration, day selection, sample checks and input.
package aoc

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ErrIO is wrapped by every failure to obtain puzzle input.
var ErrIO = errors.New("aoc: input unavailable")

// Puzzle solves one part of a day and returns its answer.
type Puzzle func() (any, error)

var (
	puzzles      []string
	puzzleByName = map[string]Puzzle{} // func name -> func
	sampleInput  = map[string]string{}
	sampleWant   = map[string]string{}
)

var (
	curDay   int
	cfg      = DefaultConfig()
	altInput []byte // non-nil to run a sample
)

func Main() {
	flagDay := flag.String("day", "", "func name to run; empty string means every part of the latest registered day. If it starts with a digit, then \"day\" prefix is assumed.")
	flagConfig := flag.String("config", "aoc.toml", "optional TOML config file")
	flagVerbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	NewLogger("aoc", *flagVerbose)

	c, err := LoadConfig(*flagConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if err := Run(os.Stdout, *flagDay, c); err != nil {
		log.Fatal().Err(err).Msg("puzzle failed")
	}
}

// Run solves every part selected by day, as resolved by the -day flag, and
// writes one "Day N > Part P: V" line per part to w. Nothing is written
// unless every part, sample checks included, succeeds.
func Run(w io.Writer, day string, c Config) error {
	cfg = c
	names, err := resolve(day)
	if err != nil {
		return err
	}
	m := regexp.MustCompile(`\d+`).FindString(names[0])
	if m == "" {
		return errors.Errorf("no digits in func name %q from which to extract day number", names[0])
	}
	curDay = Int(m)

	var out bytes.Buffer
	for _, name := range names {
		got, err := run(name)
		if err != nil {
			return errors.Wrap(err, name)
		}
		fmt.Fprintf(&out, "Day %d > Part %d: %v\n", curDay, partOf(name), got)
	}
	_, err = out.WriteTo(w)
	return errors.WithStack(err)
}

// resolve maps a -day value to the registered funcs to run, in
// registration order. "16" and "day16" select every part of day 16
// (day16a, day16b, ...); an exact func name selects just that func.
func resolve(name string) ([]string, error) {
	if len(puzzles) == 0 {
		return nil, errors.New("no puzzles registered")
	}
	if name == "" {
		last := puzzles[len(puzzles)-1]
		name = Or(strings.TrimRightFunc(last, unicode.IsLetter), last)
	}
	if unicode.IsDigit(rune(name[0])) {
		name = "day" + name
	}
	if _, ok := puzzleByName[name]; ok {
		return []string{name}, nil
	}
	var names []string
	for _, p := range puzzles {
		if rest, ok := strings.CutPrefix(p, name); ok && len(rest) == 1 && 'a' <= rest[0] && rest[0] <= 'z' {
			names = append(names, p)
		}
	}
	if len(names) == 0 {
		return nil, errors.Errorf("puzzle func %v not registered", name)
	}
	return names, nil
}

// partOf returns the part number encoded by a func name's letter suffix:
// day16a is part 1, day16b part 2. A name without a suffix is part 1.
func partOf(funcName string) int {
	if c := funcName[len(funcName)-1]; 'a' <= c && c <= 'z' {
		return int(c-'a') + 1
	}
	return 1
}

// run checks name against its sample, if it has one, and then solves the
// real input.
func run(name string) (any, error) {
	f := puzzleByName[name]
	if want, ok := sampleWant[name]; ok {
		altInput = []byte(sampleInput[name])
		v, err := f()
		altInput = nil
		if err != nil {
			return nil, errors.Wrap(err, "sample")
		}
		if got := fmt.Sprint(v); got != want {
			return nil, errors.Errorf("for %v sample, got=%v; want %v", name, got, want)
		}
		log.Info().Str("func", name).Msg("OK sample result")
	} else {
		log.Warn().Str("func", name).Msg("no sample")
	}
	return f()
}

var wantRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

// ExtractSamples records the sample input and expected answer declared in
// the doc comments of the funcs in src, in the form
//
//	/*
//	want=<answer>
//	<sample input>
//	*/
//
// A want line with no input reuses the previous func's sample input.
func ExtractSamples(src []byte) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "", src, parser.ParseComments)
	if err != nil {
		log.Fatal().Err(err).Msg("parsing source to extract samples")
	}
	var lastInput string
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			text := strings.TrimPrefix(c.Text, "//")
			if v, ok := strings.CutPrefix(text, "/*"); ok {
				text = strings.TrimSuffix(v, "*/")
			}
			if m := wantRx.FindStringSubmatch(text); m != nil {
				sampleWant[funcName] = m[1]
				in := Or(m[2], lastInput)
				sampleInput[funcName] = in
				lastInput = in
			}
		}
	}
}

func funcName(f Puzzle) string {
	rv := reflect.ValueOf(f)
	rf := runtime.FuncForPC(rv.Pointer())
	if rf == nil {
		panic("no func found")
	}
	name := rf.Name()
	return name[strings.LastIndex(name, ".")+1:]
}

func Add(puzFuncs ...Puzzle) {
	for _, f := range puzFuncs {
		name := funcName(f)
		puzzles = append(puzzles, name)
		puzzleByName[name] = f
	}
}

// Input returns the current puzzle input: the sample while a sample is
// being checked, otherwise <input_dir>/<day>.input, fetched and cached
// first when the config allows it.
func Input() ([]byte, error) {
	if altInput != nil {
		return altInput, nil
	}
	filename := filepath.Join(cfg.InputDir, fmt.Sprintf("%d.input", curDay))
	f, err := os.ReadFile(filename)
	if err == nil {
		log.Debug().Str("file", filename).Int("bytes", len(f)).Msg("read input")
		return f, nil
	}
	if !cfg.Fetch {
		return nil, errors.Wrapf(ErrIO, "%v", err)
	}
	if f, err = fetch(); err != nil {
		return nil, errors.Wrapf(ErrIO, "fetching day %d: %v", curDay, err)
	}
	if err := os.WriteFile(filename, f, 0644); err != nil {
		return nil, errors.Wrapf(ErrIO, "%v", err)
	}
	return f, nil
}

func fetch() ([]byte, error) {
	session, err := os.ReadFile(cfg.SessionFile)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	url := fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", cfg.Year, curDay)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: strings.TrimSpace(string(session))})
	log.Info().Str("url", url).Msg("fetching input")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer res.Body.Close()
	if res.StatusCode != 200 {
		return nil, errors.Errorf("bad status: %v", res.Status)
	}
	return io.ReadAll(res.Body)
}

// FirstLine returns the first non-blank line of input with surrounding
// whitespace removed. Later lines are ignored.
func FirstLine() (string, error) {
	in, err := Input()
	if err != nil {
		return "", err
	}
	for len(in) > 0 {
		var line []byte
		line, in, _ = bytes.Cut(in, []byte("\n"))
		if line = bytes.TrimSpace(line); len(line) > 0 {
			return string(line), nil
		}
	}
	return "", errors.Wrap(ErrIO, "input is empty")
}

func Int(s string) int {
	return MustGet(strconv.Atoi(s))
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero element of list, or else returns the zero T.
//
// This is the proposal from
// https://github.com/golang/go/issues/60204#issuecomment-1581245334.
func Or[T comparable](list ...T) T {
	var zero T
	for _, v := range list {
		if v != zero {
			return v
		}
	}
	return zero
}
