package graph

import "strings"

// FormKind selects the plotting strategy for an expression.
type FormKind uint8

const (
	FormExplicit FormKind = iota
	FormParametric
	FormInequality
	FormImplicit
	FormPolar
)

func (k FormKind) String() string {
	switch k {
	case FormParametric:
		return "parametric"
	case FormInequality:
		return "inequality"
	case FormImplicit:
		return "implicit"
	case FormPolar:
		return "polar"
	default:
		return "explicit"
	}
}

// Form is the classified plot form of one expression for one frame.
//
// X holds the primary sub-expression text: the first parametric component,
// the whole boolean expression for inequalities, the reduced "(lhs) - (rhs)"
// for implicit equalities, the radius expression for polar, or the full text
// for explicit. Y is the second parametric component and empty otherwise.
type Form struct {
	Kind FormKind
	X    string
	Y    string
}

// Classify determines the plot form of raw expression text. It is total and
// deterministic: every input maps to exactly one form, with Explicit as the
// default. Classification never inspects whether the sub-expressions compile.
//
// Precedence: parametric, inequality, implicit equality, polar, explicit.
// A parenthesized text without a top-level comma is not parametric and falls
// through to the remaining checks. A text whose only top-level equality is
// the "r=" polar pattern classifies as polar, not implicit.
func Classify(text string) Form {
	s := strings.TrimSpace(text)

	if f, ok := classifyParametric(s); ok {
		return f
	}
	if strings.ContainsAny(s, "<>") {
		return Form{Kind: FormInequality, X: s}
	}
	polar, isPolar := polarRadius(s)
	if !isPolar {
		if f, ok := classifyImplicit(s); ok {
			return f
		}
	} else {
		return Form{Kind: FormPolar, X: polar}
	}
	return Form{Kind: FormExplicit, X: s}
}

// classifyParametric matches "(f, g)": outer parens with a top-level comma
// splitting the interior.
func classifyParametric(s string) (Form, bool) {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return Form{}, false
	}
	inner := s[1 : len(s)-1]
	depth := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				return Form{
					Kind: FormParametric,
					X:    strings.TrimSpace(inner[:i]),
					Y:    strings.TrimSpace(inner[i+1:]),
				}, true
			}
		}
	}
	return Form{}, false
}

// classifyImplicit matches a top-level "==" (preferred) or a single top-level
// "=", reducing the equality to the zero-level-set form "(lhs) - (rhs)".
func classifyImplicit(s string) (Form, bool) {
	if i := indexTopLevel(s, "=="); i >= 0 {
		lhs := strings.TrimSpace(s[:i])
		rhs := strings.TrimSpace(s[i+2:])
		return Form{Kind: FormImplicit, X: "(" + lhs + ") - (" + rhs + ")"}, true
	}
	if i := indexTopLevelEquals(s); i >= 0 {
		lhs := strings.TrimSpace(s[:i])
		rhs := strings.TrimSpace(s[i+1:])
		return Form{Kind: FormImplicit, X: "(" + lhs + ") - (" + rhs + ")"}, true
	}
	return Form{}, false
}

// polarRadius matches the depth-0 "r=" / "r =" pattern, where r is a
// standalone identifier, and returns the radius expression after the '='.
func polarRadius(s string) (string, bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case 'r':
			if depth != 0 {
				continue
			}
			if i > 0 && isWordByte(s[i-1]) {
				continue
			}
			j := i + 1
			for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
				j++
			}
			if j >= len(s) || s[j] != '=' {
				continue
			}
			if j+1 < len(s) && s[j+1] == '=' {
				continue
			}
			return strings.TrimSpace(s[j+1:]), true
		}
	}
	return "", false
}

// indexTopLevel finds the first depth-0 occurrence of sub.
func indexTopLevel(s, sub string) int {
	depth := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 && s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

// indexTopLevelEquals finds the first depth-0 '=' that is not part of "==",
// "<=" or ">=".
func indexTopLevelEquals(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '=':
			if depth != 0 {
				continue
			}
			if i > 0 && (s[i-1] == '=' || s[i-1] == '<' || s[i-1] == '>' || s[i-1] == '!') {
				continue
			}
			if i+1 < len(s) && s[i+1] == '=' {
				continue
			}
			return i
		}
	}
	return -1
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
