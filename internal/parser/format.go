package parser

import (
	"strconv"
	"strings"

	"github.com/KromDaniel/regexer/internal/tokenizer"
)

// Format renders nodes back into canonical pattern-description syntax, with
// primitives separated by " | " and parameters by ", ".
func Format(nodes []PatternFunction) string {
	parts := make([]string, 0, len(nodes))
	for _, node := range nodes {
		parts = append(parts, FormatFunction(node))
	}
	return strings.Join(parts, " | ")
}

// FormatFunction renders a single node.
func FormatFunction(node PatternFunction) string {
	switch n := node.(type) {
	case Letter:
		return call(PrimitiveLetter, casingParam(n.Casing), selectParam(n.Select))
	case Letters:
		return call(PrimitiveLetters, casingParam(n.Casing))
	case Glob:
		return call(PrimitiveGlob, ParamRest+"="+boolLiteral(n.Rest))
	case Whitespace:
		return PrimitiveWhitespace
	case Number:
		return call(PrimitiveNumber, selectParam(n.Select))
	case Numbers:
		return PrimitiveNumbers
	case Group:
		return PrimitiveGroup + "(" + Format(n.Children) + ")"
	default:
		return ""
	}
}

func call(name string, params ...string) string {
	set := make([]string, 0, len(params))
	for _, param := range params {
		if param != "" {
			set = append(set, param)
		}
	}

	if len(set) == 0 {
		return name
	}

	return name + "(" + strings.Join(set, ", ") + ")"
}

func casingParam(casing *Casing) string {
	if casing == nil {
		return ""
	}
	return ParamUpcase + "=" + boolLiteral(*casing == Upcase)
}

func selectParam(sel *uint32) string {
	if sel == nil {
		return ""
	}
	return ParamSelect + "=" + strconv.FormatUint(uint64(*sel), 10)
}

func boolLiteral(b bool) string {
	if b {
		return tokenizer.TrueLiteral
	}
	return tokenizer.FalseLiteral
}
