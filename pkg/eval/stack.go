package eval

import "src.weir.sh/pkg/eval/vals"

// VarID identifies a variable. IDs are allocated by the compiler and are
// unique within an Evaler, so a runtime scope chain can be searched by ID
// without caring which frame a name was declared in.
type VarID int

// Stack is a chain of runtime scopes. Each scope maps variable IDs to
// values; lookup walks towards the root. Child scopes of the same parent are
// independent: writes in one are never visible in a sibling.
type Stack struct {
	parent *Stack
	vars   map[VarID]vals.Value
}

// NewStack returns a new root scope.
func NewStack() *Stack {
	return &Stack{vars: make(map[VarID]vals.Value)}
}

// NewChild returns a fresh scope whose parent is s.
func (s *Stack) NewChild() *Stack {
	return &Stack{parent: s, vars: make(map[VarID]vals.Value)}
}

// Lookup finds the value of a variable, searching from s towards the root.
func (s *Stack) Lookup(id VarID) (vals.Value, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if v, ok := sc.vars[id]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set binds a variable in this scope, shadowing any binding of the same ID
// in ancestor scopes.
func (s *Stack) Set(id VarID, v vals.Value) {
	s.vars[id] = v
}
