package main

import (
	"github.com/advent2021/aoc"
	"github.com/advent2021/aoc/internal/bits"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

/*
want=16
8A004A801A8002F478
*/
func day16a() (any, error) {
	p, err := decodeTransmission()
	if err != nil {
		return nil, err
	}
	return bits.VersionSum(p), nil
}

/*
want=1
9C0141080250320F1802104A08
*/
func day16b() (any, error) {
	p, err := decodeTransmission()
	if err != nil {
		return nil, err
	}
	v, err := bits.Eval(p)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return v, nil
}

// decoded holds the last transmission parsed, so both parts share one
// parse of the same input.
var decoded struct {
	line string
	p    bits.Packet
}

func decodeTransmission() (bits.Packet, error) {
	line, err := aoc.FirstLine()
	if err != nil {
		return bits.Packet{}, err
	}
	if line == decoded.line {
		return decoded.p, nil
	}
	r, err := bits.Open(line)
	if err != nil {
		return bits.Packet{}, errors.WithStack(err)
	}
	p, err := bits.NewDecoder(log.Logger).Parse(r)
	if err != nil {
		return bits.Packet{}, errors.WithStack(err)
	}
	log.Debug().Int("bits", p.Bits).Int("trailing", r.Remaining()).Msg("decoded transmission")
	decoded.line, decoded.p = line, p
	return p, nil
}
