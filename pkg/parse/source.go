package parse

import "fmt"

// Source describes a piece of source code.
type Source struct {
	Name   string
	Code   string
	IsFile bool
}

// SourceForTest returns a Source used for testing.
func SourceForTest(code string) Source {
	return Source{Name: "[test]", Code: code}
}

// Repr returns a concise representation of the source, for logging.
func (src Source) Repr() string {
	return fmt.Sprintf("<%s: %.32q>", src.Name, src.Code)
}
