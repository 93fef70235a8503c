package main

import (
	"io"
	"strings"
	"unicode"

	"github.com/jcorbin/fibr/internal/runeio"
)

// reader is a rune source with pushback, used by the sub-readers below. Its
// position advances for every rune a sub-reader consumes (whitespace
// included), never for one that is merely peeked and pushed back.
type reader struct {
	rr      runeio.Reader
	pending []rune
	pos     Position
}

func newReader(source string, r io.Reader) *reader {
	return &reader{rr: runeio.NewReader(r), pos: Position{Source: source, Line: 1}}
}

func (rd *reader) readRune() (rune, bool) {
	if n := len(rd.pending); n > 0 {
		r := rd.pending[n-1]
		rd.pending = rd.pending[:n-1]
		return r, true
	}
	r, _, err := rd.rr.ReadRune()
	if err != nil {
		return 0, false
	}
	return r, true
}

func (rd *reader) unread(r rune) { rd.pending = append(rd.pending, r) }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// newForm allocates a Form from the VM's fixed-capacity form arena, so a
// pathological input (e.g. deeply nested groups) hits a capacityError
// rather than growing without bound.
func (vm *VM) newForm(kind formKind, pos Position) *Form {
	idx := vm.forms.alloc(Form{Kind: kind, Pos: pos})
	return vm.forms.at(idx)
}

// readForm tries each sub-reader in fixed order, returning the first OK
// (form, nil), the first ERROR (nil, err), or NULL (nil, nil) if none of
// them matched anything: at EOF, or when the next rune starts no form (an
// unmatched ')', or a whitespace rune other than space, tab and newline).
func (vm *VM) readForm(rd *reader) (*Form, error) {
	for _, sub := range readers() {
		f, err := sub(vm, rd)
		if err != nil {
			return nil, err
		}
		if f != nil {
			return f, nil
		}
	}
	return nil, nil
}

func readers() []func(*VM, *reader) (*Form, error) {
	return []func(*VM, *reader) (*Form, error){
		readWS, readInt, readSemi, readGroup, readIdentifier,
	}
}

// readWS consumes runs of space/tab/newline and always reports NULL: it
// never emits a form, just advances position and lets the driver re-enter
// read dispatch.
func readWS(vm *VM, rd *reader) (*Form, error) {
	for {
		r, ok := rd.readRune()
		if !ok {
			return nil, nil
		}
		switch r {
		case ' ', '\t', '\n':
			rd.pos.advance(r)
		default:
			rd.unread(r)
			return nil, nil
		}
	}
}

// readInt reads an optional leading '-' followed by one or more decimal
// digits. A '-' not followed by a digit is fully restored (both characters
// pushed back) so it can be read again as the start of an identifier.
func readInt(vm *VM, rd *reader) (*Form, error) {
	fpos := rd.pos

	r, ok := rd.readRune()
	if !ok {
		return nil, nil
	}

	neg := false
	if r == '-' {
		r2, ok2 := rd.readRune()
		if ok2 && isDigit(r2) {
			neg = true
			rd.pos.advance(r)
			rd.unread(r2)
		} else {
			if ok2 {
				rd.unread(r2)
			}
			rd.unread(r)
			return nil, nil
		}
	} else {
		rd.unread(r)
	}

	var v int32
	digits := false
	for {
		d, ok := rd.readRune()
		if !ok {
			break
		}
		if !isDigit(d) {
			rd.unread(d)
			break
		}
		digits = true
		v = v*10 + int32(d-'0')
		rd.pos.advance(d)
	}

	if !digits {
		return nil, nil
	}
	if neg {
		v = -v
	}

	f := vm.newForm(formLiteral, fpos)
	f.literal = intValue(vm.intType, v)
	return f, nil
}

// readSemi reads a single ';'.
func readSemi(vm *VM, rd *reader) (*Form, error) {
	fpos := rd.pos
	r, ok := rd.readRune()
	if !ok {
		return nil, nil
	}
	if r != ';' {
		rd.unread(r)
		return nil, nil
	}
	rd.pos.advance(r)
	return vm.newForm(formSemicolon, fpos), nil
}

// readGroup reads "(" ... ")", recursively reading forms into the group's
// child list until a matching ')' or EOF. EOF before ')' is an error at
// the opening position.
func readGroup(vm *VM, rd *reader) (*Form, error) {
	fpos := rd.pos
	r, ok := rd.readRune()
	if !ok {
		return nil, nil
	}
	if r != '(' {
		rd.unread(r)
		return nil, nil
	}
	rd.pos.advance(r)

	f := vm.newForm(formGroup, fpos)

	for {
		readWS(vm, rd)
		c, ok := rd.readRune()
		if !ok {
			return nil, vm.errorf(fpos, "Open group")
		}
		if c == ')' {
			rd.pos.advance(c)
			return f, nil
		}
		rd.unread(c)

		child, err := vm.readForm(rd)
		if err != nil {
			return nil, err
		}
		if child == nil {
			return nil, vm.errorf(fpos, "Open group")
		}
		f.group = append(f.group, child)
	}
}

// readIdentifier reads a greedy run of characters that are neither
// whitespace nor one of "( ) ;". A zero-length run yields NULL.
func readIdentifier(vm *VM, rd *reader) (*Form, error) {
	fpos := rd.pos
	var sb strings.Builder

	for {
		r, ok := rd.readRune()
		if !ok {
			break
		}
		if unicode.IsSpace(r) || r == '(' || r == ')' || r == ';' {
			rd.unread(r)
			break
		}
		sb.WriteRune(r)
		rd.pos.advance(r)
	}

	if sb.Len() == 0 {
		return nil, nil
	}

	f := vm.newForm(formIdentifier, fpos)
	f.name = sb.String()
	return f, nil
}
