// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store
// API do not need to depend on the concrete implementation.
package storedefs

import "errors"

// ErrNoMatchingCmd is the error returned when a NextCmd or PrevCmd query
// completes with no result.
var ErrNoMatchingCmd = errors.New("no matching command line")

// Store is an interface satisfied by the storage service.
type Store interface {
	// NextCmdSeq returns the sequence number the next added command line
	// will get.
	NextCmdSeq() (int, error)
	// AddCmd adds a new command line and returns its sequence number.
	AddCmd(text string) (int, error)
	// DelCmd deletes the command line with the given sequence number.
	DelCmd(seq int) error
	// Cmd returns the command line with the given sequence number.
	Cmd(seq int) (string, error)
	// CmdsWithSeq returns all command lines with sequence numbers in
	// [from, upto).
	CmdsWithSeq(from, upto int) ([]Cmd, error)
	// NextCmd returns the first command line with a sequence number not
	// less than from that has the given prefix.
	NextCmd(from int, prefix string) (Cmd, error)
	// PrevCmd returns the last command line with a sequence number less
	// than upto that has the given prefix.
	PrevCmd(upto int, prefix string) (Cmd, error)
}

// Cmd is an entry in the command history.
type Cmd struct {
	Text string
	Seq  int
}
