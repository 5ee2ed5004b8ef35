package sqlfn

import "fmt"

// Registry lists the scalar functions this package contributes to a SQL
// execution environment, keyed by SQL name: a name-to-constructor map
// the engine consults when binding a FUNCTION_CALL node.
var Registry = map[string]func(args ...Expression) (Expression, error){
	"strftime": func(args ...Expression) (Expression, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("strftime: expected 2 arguments, got %d", len(args))
		}
		return NewStrftime(args[0], args[1])
	},
	"strptime": func(args ...Expression) (Expression, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("strptime: expected 2 arguments, got %d", len(args))
		}
		return NewStrptime(args[0], args[1])
	},
}
