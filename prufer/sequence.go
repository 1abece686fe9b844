package prufer

import (
	"fmt"
	"strconv"
	"strings"
)

// Sequence is a Prüfer sequence: n-2 labels of a tree on n nodes, repeats allowed.
type Sequence []int

// Len returns the sequence length.
func (s Sequence) Len() int { return len(s) }

// Nodes returns the node count of the tree the sequence encodes.
func (s Sequence) Nodes() int { return len(s) + 2 }

// String renders the canonical exchange form: labels separated by single spaces.
// The empty sequence renders as "".
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}

// ParseSequence reads a sequence from text. Labels are decimal integers
// separated by whitespace and/or commas; one pair of enclosing brackets is
// allowed, so "5 2 4 1", "5,2,4,1" and "[5, 2, 4, 1]" are equivalent.
// Blank input yields the empty sequence (the 2-node tree).
// Errors: ErrInvalidInput for a malformed token or a non-positive label.
func ParseSequence(text string) (Sequence, error) {
	body := strings.TrimSpace(text)
	if strings.HasPrefix(body, "[") {
		if !strings.HasSuffix(body, "]") {
			return nil, fmt.Errorf("%w: unbalanced bracket in %q", ErrInvalidInput, text)
		}
		body = body[1 : len(body)-1]
	}

	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	seq := make(Sequence, 0, len(fields))
	for pos, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q is not an integer", ErrInvalidInput, pos, f)
		}
		if v < 1 {
			return nil, fmt.Errorf("%w: token %d is %d, labels are positive", ErrInvalidInput, pos, v)
		}
		seq = append(seq, v)
	}

	return seq, nil
}
