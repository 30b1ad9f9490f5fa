package eval

import (
	"errors"

	"src.weir.sh/pkg/eval/vals"
	"src.weir.sh/pkg/store/storedefs"
)

// HistoryStore is the subset of the storage service that backs the history
// command.
type HistoryStore interface {
	// AddCmd adds a new command line and returns its sequence number.
	AddCmd(text string) (int, error)
	// NextCmdSeq returns the sequence number the next command line will get.
	NextCmdSeq() (int, error)
	// CmdsWithSeq returns all command lines with sequence numbers in
	// [from, upto).
	CmdsWithSeq(from, upto int) ([]storedefs.Cmd, error)
}

var errNoHistoryStore = errors.New("no history store")

// The history command outputs the stored command history, oldest first, one
// string per command line. It requires the Evaler to be connected to a
// store; a bare Evaler, like the one used for scripts, has none.
type historyCmd struct{}

func (historyCmd) Name() string { return "history" }

func (historyCmd) Usage() string { return "output the command history" }

func (historyCmd) Signature() Signature {
	return NewSignature("history")
}

func (historyCmd) Run(fm *Frame, call *Call, _ PipelineData) (PipelineData, error) {
	s := fm.Evaler.HistoryStore
	if s == nil {
		return emptyData(), errNoHistoryStore
	}
	next, err := s.NextCmdSeq()
	if err != nil {
		return emptyData(), err
	}
	cmds, err := s.CmdsWithSeq(0, next)
	if err != nil {
		return emptyData(), err
	}
	vs := make([]vals.Value, len(cmds))
	for i, cmd := range cmds {
		vs[i] = vals.Str{Val: cmd.Text, Ranging: call.Ranging}
	}
	return dataOfValues(vs...), nil
}

func (historyCmd) Examples() []Example {
	return []Example{
		{
			Description: "List the command history",
			Code:        "history",
		},
	}
}
