// Package protocol implements the whitespace separated text protocol spoken
// with the judge: the startup block, per-turn state, per-turn actions and the
// diagnostic log block.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// tokens reads whitespace separated integers from a stream.
type tokens struct {
	sc *bufio.Scanner
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	return &tokens{sc: sc}
}

// next reads the next integer; what names the value for error messages.
func (t *tokens) next(what string) (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("protocol: reading %s: %w", what, err)
		}
		return 0, fmt.Errorf("protocol: reading %s: %w", what, io.ErrUnexpectedEOF)
	}
	v, err := strconv.Atoi(t.sc.Text())
	if err != nil {
		return 0, fmt.Errorf("protocol: parsing %s %q: %w", what, t.sc.Text(), err)
	}
	return v, nil
}

// count reads a non-negative integer.
func (t *tokens) count(what string) (int, error) {
	n, err := t.next(what)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("protocol: negative %s %d", what, n)
	}
	return n, nil
}

// ints reads len(dst) integers into dst.
func (t *tokens) ints(what string, dst ...*int) error {
	for _, p := range dst {
		v, err := t.next(what)
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

// atEOF reports whether the stream has no tokens left.
func (t *tokens) atEOF() (bool, error) {
	if t.sc.Scan() {
		return false, fmt.Errorf("protocol: unexpected trailing token %q", t.sc.Text())
	}
	if err := t.sc.Err(); err != nil {
		return false, fmt.Errorf("protocol: reading trailer: %w", err)
	}
	return true, nil
}
