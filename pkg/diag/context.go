package diag

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Context is a range of text in a piece of source code, along with the name
// of the source. It is part of parse errors, compilation errors and
// exceptions.
type Context struct {
	Name   string
	Source string
	Ranging
}

// NewContext creates a new Context.
func NewContext(name, source string, r Ranger) *Context {
	return &Context{name, source, r.Range()}
}

// Information about the culprit needed for showing, derived lazily since
// most contexts are never shown.
type showInfo struct {
	// Text on the culprit's first line before the culprit.
	head string
	// The culprit itself, with a single trailing newline stripped.
	culprit string
	// Text on the culprit's last line after the culprit.
	tail string
	// 1-based line numbers of the first and last line of the culprit.
	beginLine, endLine int
}

// Overridden in tests.
var (
	culpritStart       = "\033[1;4m"
	culpritEnd         = "\033[m"
	culpritPlaceholder = "^"
)

func (c *Context) show() *showInfo {
	before := c.Source[:c.From]
	culprit := c.Source[c.From:c.To]
	after := c.Source[c.To:]

	head := lastLine(before)
	beginLine := strings.Count(before, "\n") + 1

	var tail string
	if strings.HasSuffix(culprit, "\n") {
		culprit = culprit[:len(culprit)-1]
	} else {
		tail = firstLine(after)
	}

	endLine := beginLine + strings.Count(culprit, "\n")
	return &showInfo{head, culprit, tail, beginLine, endLine}
}

// Show renders the context, with the position description and the source
// excerpt on separate lines. Each line of the excerpt is prefixed with
// indent.
func (c *Context) Show(indent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	return c.Name + ", " + c.lineRange() +
		"\n" + indent + c.excerpt(indent)
}

// ShowCompact renders the context with the source excerpt starting on the
// same line as the position description.
func (c *Context) ShowCompact(indent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	desc := c.Name + ", " + c.lineRange() + " "
	// Continuation lines align with the excerpt on the first line.
	descIndent := strings.Repeat(" ", utf8.RuneCountInString(desc))
	return desc + c.excerpt(indent+descIndent)
}

func (c *Context) checkPosition() error {
	if !c.IsKnown() {
		return fmt.Errorf("%s, unknown position", c.Name)
	} else if c.To > len(c.Source) || c.From > c.To {
		return fmt.Errorf("%s, invalid position %d-%d", c.Name, c.From, c.To)
	}
	return nil
}

func (c *Context) lineRange() string {
	info := c.show()
	if info.beginLine == info.endLine {
		return fmt.Sprintf("line %d:", info.beginLine)
	}
	return fmt.Sprintf("line %d-%d:", info.beginLine, info.endLine)
}

func (c *Context) excerpt(indent string) string {
	info := c.show()

	var sb strings.Builder
	sb.WriteString(info.head)

	culprit := info.culprit
	if culprit == "" {
		culprit = culpritPlaceholder
	}

	for i, line := range strings.Split(culprit, "\n") {
		if i > 0 {
			sb.WriteByte('\n')
			sb.WriteString(indent)
		}
		sb.WriteString(culpritStart)
		sb.WriteString(line)
		sb.WriteString(culpritEnd)
	}

	sb.WriteString(info.tail)
	return sb.String()
}

func firstLine(s string) string {
	i := strings.IndexByte(s, '\n')
	if i == -1 {
		return s
	}
	return s[:i]
}

func lastLine(s string) string {
	// LastIndexByte returns -1 when there is no newline, which conveniently
	// makes the slicing below take all of s.
	return s[strings.LastIndexByte(s, '\n')+1:]
}
