// Command aoc2021 runs the 2021 Advent of Code solutions.
//
//	aoc2021 -day 16
//
// reads 16.input from the working directory and prints both parts.
package main

import (
	_ "embed"

	"github.com/advent2021/aoc"
)

//go:embed day16.go
var day16Src []byte

func register() {
	aoc.ExtractSamples(day16Src)
	aoc.Add(
		day16a,
		day16b,
	)
}

func main() {
	register()
	aoc.Main()
}
