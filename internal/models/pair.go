package models

import (
	"errors"
	"fmt"
	"strings"
)

// PairSeparator joins the old and new name on a dry-run line.
const PairSeparator = " --> "

// ErrMalformedPair is returned for dry-run lines that cannot be split.
var ErrMalformedPair = errors.New("malformed dry-run line")

// Pair is one old-to-new mapping in the dry-run file.
type Pair struct {
	Old string
	New string
}

// String formats the pair as a dry-run line.
func (p Pair) String() string {
	return p.Old + PairSeparator + p.New
}

// ParsePair splits a dry-run line on the first separator.
// The old name is kept byte for byte since it must match the name on disk.
// The new name is trimmed. A blank side is an error.
func ParsePair(line string) (Pair, error) {
	oldName, newName, ok := strings.Cut(strings.TrimRight(line, "\r"), PairSeparator)
	if !ok {
		return Pair{}, fmt.Errorf("%w: missing %q in %q", ErrMalformedPair, strings.TrimSpace(PairSeparator), line)
	}
	p := Pair{Old: oldName, New: strings.TrimSpace(newName)}
	if strings.TrimSpace(p.Old) == "" || p.New == "" {
		return Pair{}, fmt.Errorf("%w: empty name in %q", ErrMalformedPair, line)
	}
	return p, nil
}

// Zip pairs old and new names positionally. The slices must have equal length.
func Zip(oldNames, newNames []string) []Pair {
	pairs := make([]Pair, 0, len(oldNames))
	for i := range oldNames {
		pairs = append(pairs, Pair{Old: oldNames[i], New: newNames[i]})
	}
	return pairs
}

// Lines formats pairs as dry-run lines.
func Lines(pairs []Pair) []string {
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		lines[i] = p.String()
	}
	return lines
}
