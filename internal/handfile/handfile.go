// Package handfile reads hand listings: one hand per line, five card
// labels followed by whitespace and a non-negative integer stake.
package handfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cameldeck/camelcards/camel"
)

// ErrMalformedLine is returned for lines that do not match
// "<5 card labels> <stake>".
var ErrMalformedLine = errors.New("malformed hand line")

// ParseLine parses a single listing line such as "32T3K 765".
func ParseLine(line string) (camel.Hand, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return camel.Hand{}, fmt.Errorf("%w: want 2 fields, got %d in %q", ErrMalformedLine, len(fields), line)
	}

	stake, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return camel.Hand{}, fmt.Errorf("%w: bad stake %q: %v", ErrMalformedLine, fields[1], err)
	}
	if stake < 0 {
		return camel.Hand{}, fmt.Errorf("%w: negative stake %d", ErrMalformedLine, stake)
	}

	hand, err := camel.ParseHand(fields[0], stake)
	if err != nil {
		return camel.Hand{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	return hand, nil
}

// Read parses a whole listing. Blank lines are skipped; the first
// malformed line aborts the read with its 1-based line number. There are
// no partial results.
func Read(r io.Reader) ([]camel.Hand, error) {
	var hands []camel.Hand
	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		hand, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		hands = append(hands, hand)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading hand listing: %w", err)
	}
	return hands, nil
}

// ReadFile reads a hand listing from a file.
func ReadFile(path string) ([]camel.Hand, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening hand listing: %w", err)
	}
	defer f.Close()

	hands, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return hands, nil
}
