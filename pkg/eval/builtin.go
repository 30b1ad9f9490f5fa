package eval

func builtinCommands() []Command {
	return []Command{
		buildStringCmd{}, doCmd{}, eachCmd{}, echoCmd{}, firstCmd{},
		forCmd{}, historyCmd{}, ifCmd{}, lengthCmd{}, letCmd{},
	}
}
