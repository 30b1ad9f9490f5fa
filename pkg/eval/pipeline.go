package eval

import (
	"src.weir.sh/pkg/diag"
	"src.weir.sh/pkg/eval/vals"
)

// PipelineData is the data flowing between pipeline stages: a lazy, possibly
// unbounded, ordered sequence of values. It is consumed by pulling one value
// at a time; a consumer that stops pulling stops all upstream work, which is
// the only cancellation mechanism between stages.
//
// Pulling never fails by itself. Failures contained inside a stream travel
// as vals.Error values; failures that abort a whole command surface as
// errors when the command runs, before its output stream exists.
type PipelineData struct {
	pull func() (vals.Value, bool)
}

// emptyData returns a PipelineData with no values.
func emptyData() PipelineData { return PipelineData{} }

// dataOfValues returns a PipelineData producing exactly the given values.
func dataOfValues(vs ...vals.Value) PipelineData {
	i := 0
	return PipelineData{pull: func() (vals.Value, bool) {
		if i >= len(vs) {
			return nil, false
		}
		v := vs[i]
		i++
		return v, true
	}}
}

// dataFromPull returns a PipelineData that produces values by calling pull.
func dataFromPull(pull func() (vals.Value, bool)) PipelineData {
	return PipelineData{pull: pull}
}

// Next pulls the next value. The second return value is false when the
// sequence is exhausted.
func (d PipelineData) Next() (vals.Value, bool) {
	if d.pull == nil {
		return nil, false
	}
	return d.pull()
}

// Collect pulls the sequence to exhaustion and returns all values. It checks
// for interrupts between pulls, returning ErrInterrupted when one arrives;
// this is what keeps an unbounded upstream from wedging the process when the
// user asks to stop.
func (d PipelineData) Collect(fm *Frame) ([]vals.Value, error) {
	var collected []vals.Value
	for {
		if fm.IsInterrupted() {
			return collected, ErrInterrupted
		}
		v, ok := d.Next()
		if !ok {
			return collected, nil
		}
		collected = append(collected, v)
	}
}

// Drain pulls the sequence to exhaustion, discarding the values.
func (d PipelineData) Drain(fm *Frame) error {
	for {
		if fm.IsInterrupted() {
			return ErrInterrupted
		}
		if _, ok := d.Next(); !ok {
			return nil
		}
	}
}

// expand returns a sequence of the values in d, except that a sequence
// holding exactly one List or Range value expands into that value's
// elements. This is how a list or range descriptor behaves when a
// downstream command iterates its input. Expanding a malformed range
// descriptor fails with the descriptor's validation error.
func (d PipelineData) expand() (PipelineData, error) {
	first, ok := d.Next()
	if !ok {
		return emptyData(), nil
	}
	second, ok := d.Next()
	if !ok {
		switch first := first.(type) {
		case vals.List:
			return dataOfValues(first.Vals...), nil
		case vals.Range:
			it, err := first.Iterator()
			if err != nil {
				return emptyData(), err
			}
			return dataFromPull(it.Next), nil
		}
		return dataOfValues(first), nil
	}
	pending := []vals.Value{first, second}
	return dataFromPull(func() (vals.Value, bool) {
		if len(pending) > 0 {
			v := pending[0]
			pending = pending[1:]
			return v, true
		}
		return d.Next()
	}), nil
}

// condense turns a collected sequence into a single value: no values is
// Nothing, a single value is itself, and anything more is a List. Nothing
// and List results are tagged with the given range.
func condense(collected []vals.Value, r diag.Ranging) vals.Value {
	switch len(collected) {
	case 0:
		return vals.Nothing{Ranging: r}
	case 1:
		return collected[0]
	default:
		return vals.List{Vals: collected, Ranging: r}
	}
}
