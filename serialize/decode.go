package serialize

// (Serialization — read side) — decodes the structured clause document
// described here: a top-level array of clause objects, each carrying
// a "literals" array; each literal has "predicate", "negated", "args"; each
// argument is either a bare string (atomic term, classified var-vs-const by
// the term model's first-character rule) or an object {"name", "args"} for
// a compound.
//
// Decoding walks the document with github.com/tidwall/gjson rather than
// encoding/json + a custom UnmarshalJSON per type: gjson's untyped
// Result.IsObject() and Result.Type == gjson.String checks do exactly the
// shape-dispatch the term model
// already does for variables vs. constants, one level up at the wire
// format, without a struct per shape.

import (
	"fmt"

	"github.com/googgom/go-resolution-engine/resolution"
	"github.com/tidwall/gjson"
)

// Decode parses a structured clause document from data (sourced from file
// name, used only for diagnostics) into an ordered slice of clauses. Clause
// IDs are assigned 1..n in document order; Origin is "init" for all of them.
// On malformed input, the resolution core is never entered — Decode returns
// a *ParseError identifying the file and the offending path.
func Decode(file string, data []byte) ([]*resolution.Clause, error) {
	if !gjson.ValidBytes(data) {
		return nil, parseErrorf(file, "$", "not valid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, parseErrorf(file, "$", "expected a top-level array of clauses")
	}

	var clauses []*resolution.Clause
	var firstErr error
	id := 1

	root.ForEach(func(_, clauseVal gjson.Result) bool {
		path := fmt.Sprintf("clauses[%d]", id-1)
		literals, err := decodeLiterals(file, path, clauseVal)
		if err != nil {
			firstErr = err
			return false
		}
		clauses = append(clauses, resolution.NewClause(id, literals, "init", [2]*resolution.Clause{}, ""))
		id++
		return true
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return clauses, nil
}

func decodeLiterals(file, path string, clauseVal gjson.Result) ([]*resolution.Literal, error) {
	if !clauseVal.IsObject() {
		return nil, parseErrorf(file, path, "clause must be an object")
	}
	litsVal := clauseVal.Get("literals")
	if !litsVal.Exists() || !litsVal.IsArray() {
		return nil, parseErrorf(file, path+".literals", "missing or non-array \"literals\" field")
	}

	var literals []*resolution.Literal
	var firstErr error
	i := 0
	litsVal.ForEach(func(_, litVal gjson.Result) bool {
		litPath := fmt.Sprintf("%s.literals[%d]", path, i)
		lit, err := decodeLiteral(file, litPath, litVal)
		if err != nil {
			firstErr = err
			return false
		}
		literals = append(literals, lit)
		i++
		return true
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return literals, nil
}

func decodeLiteral(file, path string, litVal gjson.Result) (*resolution.Literal, error) {
	if !litVal.IsObject() {
		return nil, parseErrorf(file, path, "literal must be an object")
	}

	predVal := litVal.Get("predicate")
	if predVal.Type != gjson.String {
		return nil, parseErrorf(file, path+".predicate", "missing or non-string \"predicate\" field")
	}

	negVal := litVal.Get("negated")
	if !negVal.Exists() || (negVal.Type != gjson.True && negVal.Type != gjson.False) {
		return nil, parseErrorf(file, path+".negated", "missing or non-boolean \"negated\" field")
	}

	argsVal := litVal.Get("args")
	if !argsVal.Exists() || !argsVal.IsArray() {
		return nil, parseErrorf(file, path+".args", "missing or non-array \"args\" field")
	}

	args, err := decodeArgs(file, path+".args", argsVal)
	if err != nil {
		return nil, err
	}
	return resolution.NewLiteral(predVal.String(), args, negVal.Bool()), nil
}

func decodeArgs(file, path string, argsVal gjson.Result) ([]*resolution.Term, error) {
	var args []*resolution.Term
	var firstErr error
	i := 0
	argsVal.ForEach(func(_, argVal gjson.Result) bool {
		argPath := fmt.Sprintf("%s[%d]", path, i)
		term, err := decodeArg(file, argPath, argVal)
		if err != nil {
			firstErr = err
			return false
		}
		args = append(args, term)
		i++
		return true
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return args, nil
}

func decodeArg(file, path string, argVal gjson.Result) (*resolution.Term, error) {
	if argVal.Type == gjson.String {
		name := argVal.String()
		if resolution.IsVariableName(name) {
			return resolution.NewVar(name), nil
		}
		return resolution.NewConst(name), nil
	}

	if argVal.IsObject() {
		nameVal := argVal.Get("name")
		if nameVal.Type != gjson.String {
			return nil, parseErrorf(file, path+".name", "missing or non-string \"name\" field")
		}
		nestedVal := argVal.Get("args")
		if !nestedVal.Exists() || !nestedVal.IsArray() {
			return nil, parseErrorf(file, path+".args", "missing or non-array \"args\" field")
		}
		nested, err := decodeArgs(file, path+".args", nestedVal)
		if err != nil {
			return nil, err
		}
		if len(nested) == 0 {
			return nil, parseErrorf(file, path, "compound term must have a non-empty args list")
		}
		return resolution.NewCompound(nameVal.String(), nested...), nil
	}

	return nil, parseErrorf(file, path, "argument must be a string or a compound object")
}
