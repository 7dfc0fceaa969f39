// Package parser tokenises the plain-text model notation. It is an
// external collaborator to the core numerical subsystems: it knows
// nothing about tableaux or pivoting, only how to turn lines of
// whitespace-separated tokens into a model.Model.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kvlabs/lpsolve/model"
)

var signTokens = map[string]model.SignRestriction{
	"+":   model.NonNeg,
	"-":   model.NonPos,
	"urs": model.Free,
	"int": model.Integer,
	"bin": model.Binary,
}

var relationTokens = map[string]model.Relation{
	"<=": model.LessEqual,
	">=": model.GreaterEqual,
	"=":  model.Equal,
}

// Parse reads the following grammar from r:
//
//	line 1:        max|min followed by n0 signed coefficients
//	lines 2..k:    n0 signed coefficients, a relation, an RHS
//	final line:    n0 sign tokens from {+, -, urs, int, bin}
//
// Blank lines are ignored.
func Parse(r io.Reader) (model.Model, error) {
	var lines []string
	var lineNos []int

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		lines = append(lines, text)
		lineNos = append(lineNos, lineNo)
	}
	if err := scanner.Err(); err != nil {
		return model.Model{}, err
	}

	if len(lines) < 2 {
		return model.Model{}, &model.ParseError{Line: lineNo, Msg: "input must have at least a sense/objective line and a sign-restriction line"}
	}

	objFields := strings.Fields(lines[0])
	if len(objFields) < 2 {
		return model.Model{}, &model.ParseError{Line: lineNos[0], Msg: "objective line must start with max/min and list coefficients"}
	}

	sense, err := parseSense(objFields[0])
	if err != nil {
		return model.Model{}, &model.ParseError{Line: lineNos[0], Msg: err.Error()}
	}

	cost := make([]float64, 0, len(objFields)-1)
	for _, tok := range objFields[1:] {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return model.Model{}, &model.ParseError{Line: lineNos[0], Msg: fmt.Sprintf("invalid coefficient %q", tok)}
		}
		cost = append(cost, v)
	}
	n0 := len(cost)

	signLine := lines[len(lines)-1]
	signLineNo := lineNos[len(lineNos)-1]
	constraintLines := lines[1 : len(lines)-1]
	constraintLineNos := lineNos[1 : len(lineNos)-1]

	constraints := make([]model.Constraint, 0, len(constraintLines))
	for idx, line := range constraintLines {
		fields := strings.Fields(line)
		if len(fields) != n0+2 {
			return model.Model{}, &model.ParseError{Line: constraintLineNos[idx], Msg: fmt.Sprintf("constraint must have %d coefficients, a relation, and an RHS", n0)}
		}
		coeffs := make([]float64, n0)
		for i := 0; i < n0; i++ {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return model.Model{}, &model.ParseError{Line: constraintLineNos[idx], Msg: fmt.Sprintf("invalid coefficient %q", fields[i])}
			}
			coeffs[i] = v
		}
		rel, ok := relationTokens[fields[n0]]
		if !ok {
			return model.Model{}, &model.ParseError{Line: constraintLineNos[idx], Msg: fmt.Sprintf("unknown relation %q", fields[n0])}
		}
		rhs, err := strconv.ParseFloat(fields[n0+1], 64)
		if err != nil {
			return model.Model{}, &model.ParseError{Line: constraintLineNos[idx], Msg: fmt.Sprintf("invalid RHS %q", fields[n0+1])}
		}
		constraints = append(constraints, model.Constraint{Coeffs: coeffs, Relation: rel, RHS: rhs})
	}

	signFields := strings.Fields(signLine)
	if len(signFields) != n0 {
		return model.Model{}, &model.ParseError{Line: signLineNo, Msg: fmt.Sprintf("expected %d sign tokens, got %d", n0, len(signFields))}
	}
	signs := make([]model.SignRestriction, n0)
	for i, tok := range signFields {
		sr, ok := signTokens[tok]
		if !ok {
			return model.Model{}, &model.ParseError{Line: signLineNo, Msg: fmt.Sprintf("unknown sign token %q", tok)}
		}
		signs[i] = sr
	}

	m := model.Model{
		Sense:       sense,
		Cost:        cost,
		Constraints: constraints,
		Signs:       signs,
	}
	if err := m.Validate(); err != nil {
		return model.Model{}, &model.ParseError{Msg: err.Error()}
	}
	return m, nil
}

func parseSense(tok string) (model.Sense, error) {
	switch strings.ToLower(tok) {
	case "max":
		return model.Maximize, nil
	case "min":
		return model.Minimize, nil
	default:
		return 0, fmt.Errorf("unknown sense %q, want max or min", tok)
	}
}
