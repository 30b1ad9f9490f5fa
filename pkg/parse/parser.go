package parse

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"src.weir.sh/pkg/diag"
)

// parser maintains some mutable states of parsing.
//
// NOTE: The src member is assumed to be valid UTF-8.
type parser struct {
	srcName string
	src     string
	pos     int
	overEOF int
	errors  []*diag.Error
}

// Error stores multiple underlying parse errors and can pretty-print them.
type Error struct {
	Entries []*diag.Error
}

// Error returns a plain text representation of the error.
func (pe *Error) Error() string {
	switch len(pe.Entries) {
	case 0:
		return "no parse error"
	case 1:
		return pe.Entries[0].Error()
	default:
		sb := new(strings.Builder)
		sb.WriteString("multiple parse errors: ")
		for i, e := range pe.Entries {
			if i > 0 {
				sb.WriteString("; ")
			}
			fmt.Fprintf(sb, "%d-%d in %s: %s",
				e.Context.From, e.Context.To, e.Context.Name, e.Message)
		}
		return sb.String()
	}
}

// Show shows the error.
func (pe *Error) Show(indent string) string {
	switch len(pe.Entries) {
	case 0:
		return "no parse error"
	case 1:
		return pe.Entries[0].Show(indent)
	default:
		sb := new(strings.Builder)
		sb.WriteString("Multiple parse errors:")
		for _, e := range pe.Entries {
			sb.WriteString("\n" + indent + "  ")
			fmt.Fprintf(sb, "\033[31;1m%s\033[m\n", e.Message)
			sb.WriteString(indent + "    " + e.Context.ShowCompact(indent+"    "))
		}
		return sb.String()
	}
}

// GetError returns an *Error if the given error is one. Otherwise it returns
// nil.
func GetError(e error) *Error {
	var pe *Error
	if errors.As(e, &pe) {
		return pe
	}
	return nil
}

// UnpackErrors returns the constituent parse errors if the given error
// contains one or more parse errors. Otherwise it returns nil.
func UnpackErrors(e error) []*diag.Error {
	if pe := GetError(e); pe != nil {
		return pe.Entries
	}
	return nil
}

func (ps *parser) assembleError() error {
	if len(ps.errors) > 0 {
		return &Error{ps.errors}
	}
	return nil
}

// Tells the parser that parsing is done.
func (ps *parser) done() {
	if ps.pos != len(ps.src) {
		r, _ := utf8.DecodeRuneInString(ps.src[ps.pos:])
		ps.error(fmt.Errorf("unexpected rune %q", r))
	}
}

const eof rune = -1

func (ps *parser) peek() rune {
	if ps.pos == len(ps.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(ps.src[ps.pos:])
	return r
}

func (ps *parser) hasPrefix(prefix string) bool {
	return strings.HasPrefix(ps.src[ps.pos:], prefix)
}

func (ps *parser) next() rune {
	if ps.pos == len(ps.src) {
		ps.overEOF++
		return eof
	}
	r, s := utf8.DecodeRuneInString(ps.src[ps.pos:])
	ps.pos += s
	return r
}

func (ps *parser) backup() {
	if ps.overEOF > 0 {
		ps.overEOF--
		return
	}
	_, s := utf8.DecodeLastRuneInString(ps.src[:ps.pos])
	ps.pos -= s
}

func (ps *parser) errorp(r diag.Ranger, e error) {
	ps.errors = append(ps.errors, &diag.Error{
		Type:    "parse error",
		Message: e.Error(),
		Context: *diag.NewContext(ps.srcName, ps.src, r),
	})
}

func (ps *parser) error(e error) {
	end := ps.pos
	if end < len(ps.src) {
		end++
	}
	ps.errorp(diag.Ranging{From: ps.pos, To: end}, e)
}

func newError(text string, shouldbe ...string) error {
	if len(shouldbe) == 0 {
		return errors.New(text)
	}
	var buf bytes.Buffer
	if len(text) > 0 {
		buf.WriteString(text + ", ")
	}
	buf.WriteString("should be " + shouldbe[0])
	for i, opt := range shouldbe[1:] {
		if i == len(shouldbe)-2 {
			buf.WriteString(" or ")
		} else {
			buf.WriteString(", ")
		}
		buf.WriteString(opt)
	}
	return errors.New(buf.String())
}
