package serialize

// (Serialization — write side) — two independent writers:
//
//   - WriteTrace renders the plain-text proof log with fixed per-step line
//     templates that are part of the external contract for downstream
//     translation tools and must not change.
//   - EncodeClauses round-trips a final working set back into the same
//     structured document shape Decode reads, using tidwall/sjson to build
//     the JSON incrementally. It echoes the flat clause set only, never
//     the trace or the parent-clause derivation DAG.

import (
	"fmt"
	"io"

	"github.com/googgom/go-resolution-engine/resolution"
	"github.com/tidwall/sjson"
)

// traceHeader is the fixed first line of the proof log; its exact wording
// is not part of the external contract, only its presence and position are.
const traceHeader = "=== Лог резолюции ==="

// WriteTrace writes the full textual proof log for result to w: the fixed
// header, one line per trace record (nested unification sub-steps included
// only when verbose is true), then the final
// "Противоречие найдено: {true|false}" line.
func WriteTrace(w io.Writer, result resolution.Result, verbose bool) error {
	if _, err := fmt.Fprintln(w, traceHeader); err != nil {
		return err
	}
	for _, record := range result.Trace.Records {
		if _, err := fmt.Fprintln(w, record.Render(verbose)); err != nil {
			return err
		}
	}
	proved := result.Outcome == resolution.Proved
	_, err := fmt.Fprintf(w, "Противоречие найдено: %t\n", proved)
	return err
}

// EncodeClauses re-serializes clauses into the same structured document
// shape Decode reads: a top-level array of {"literals": [...]} objects.
func EncodeClauses(clauses []*resolution.Clause) ([]byte, error) {
	doc := []byte("[]")
	for _, c := range clauses {
		clauseObj, err := encodeClause(c)
		if err != nil {
			return nil, err
		}
		doc, err = sjson.SetRawBytes(doc, "-1", clauseObj)
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func encodeClause(c *resolution.Clause) ([]byte, error) {
	litsDoc := []byte("[]")
	for _, l := range c.Literals {
		litObj, err := encodeLiteral(l)
		if err != nil {
			return nil, err
		}
		litsDoc, err = sjson.SetRawBytes(litsDoc, "-1", litObj)
		if err != nil {
			return nil, err
		}
	}
	clauseObj, err := sjson.SetRawBytes([]byte("{}"), "literals", litsDoc)
	if err != nil {
		return nil, err
	}
	return clauseObj, nil
}

func encodeLiteral(l *resolution.Literal) ([]byte, error) {
	obj := []byte("{}")
	obj, err := sjson.SetBytes(obj, "predicate", l.Predicate)
	if err != nil {
		return nil, err
	}
	obj, err = sjson.SetBytes(obj, "negated", l.Negated)
	if err != nil {
		return nil, err
	}

	argsDoc := []byte("[]")
	for _, a := range l.Args {
		argsDoc, err = encodeArg(argsDoc, a)
		if err != nil {
			return nil, err
		}
	}
	return sjson.SetRawBytes(obj, "args", argsDoc)
}

func encodeArg(argsDoc []byte, t *resolution.Term) ([]byte, error) {
	if !t.IsCompound() {
		return sjson.SetBytes(argsDoc, "-1", t.Name)
	}

	obj, err := sjson.SetBytes([]byte("{}"), "name", t.Name)
	if err != nil {
		return nil, err
	}
	nested := []byte("[]")
	for _, a := range t.Args {
		nested, err = encodeArg(nested, a)
		if err != nil {
			return nil, err
		}
	}
	obj, err = sjson.SetRawBytes(obj, "args", nested)
	if err != nil {
		return nil, err
	}
	return sjson.SetRawBytes(argsDoc, "-1", obj)
}
