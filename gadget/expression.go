package gadget

import (
	"fmt"
	"sort"
	"strings"

	"github.com/0xPolygonZero/r1cs/field"
)

// Term is a wire scaled by a non-zero coefficient.
type Term struct {
	Wire        Wire
	Coefficient field.Element
}

// Expression is a linear combination of wires. The representation is
// canonical: terms are sorted by wire index, the constant wire first, and
// zero coefficients are never stored, so structural equality is value
// equality. The zero value is the zero expression.
type Expression struct {
	terms []Term
}

// NewExpression canonicalizes the given terms: duplicates are merged and
// zero coefficients dropped.
func NewExpression(terms []Term) Expression {
	merged := make(map[Wire]field.Element, len(terms))
	for _, t := range terms {
		if c, ok := merged[t.Wire]; ok {
			merged[t.Wire] = c.Add(t.Coefficient)
		} else {
			merged[t.Wire] = t.Coefficient
		}
	}
	out := make([]Term, 0, len(merged))
	for w, c := range merged {
		if !c.IsZero() {
			out = append(out, Term{Wire: w, Coefficient: c})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Wire.Index < out[j].Wire.Index })
	return Expression{terms: out}
}

// ZeroExpression is the empty linear combination.
func ZeroExpression() Expression { return Expression{} }

// OneExpression is the constant 1.
func OneExpression(f field.Field) Expression { return Constant(field.One(f)) }

// Constant returns the expression c·w₀.
func Constant(c field.Element) Expression {
	if c.IsZero() {
		return Expression{}
	}
	return Expression{terms: []Term{{Wire: WireOne, Coefficient: c}}}
}

// FromWire returns the expression with coefficient 1 on the given wire.
func FromWire(f field.Field, w Wire) Expression {
	return Expression{terms: []Term{{Wire: w, Coefficient: field.One(f)}}}
}

// SumOfWires returns the sum of the given wires, each with coefficient 1.
func SumOfWires(f field.Field, wires []Wire) Expression {
	terms := make([]Term, 0, len(wires))
	one := field.One(f)
	for _, w := range wires {
		terms = append(terms, Term{Wire: w, Coefficient: one})
	}
	return NewExpression(terms)
}

// Terms returns a copy of the terms; wire index 0 carries the constant
// coefficient. This is the serialization surface consumed by SNARK
// backends.
func (e Expression) Terms() []Term {
	out := make([]Term, len(e.terms))
	copy(out, e.terms)
	return out
}

// NumTerms returns the number of non-zero terms.
func (e Expression) NumTerms() int { return len(e.terms) }

// IsZero reports whether this is the zero expression.
func (e Expression) IsZero() bool { return len(e.terms) == 0 }

// AsConstant returns the constant c if the expression is exactly c·w₀.
func (e Expression) AsConstant() (field.Element, bool) {
	if len(e.terms) == 1 && e.terms[0].Wire == WireOne {
		return e.terms[0].Coefficient, true
	}
	return field.Element{}, false
}

// Add returns e + o.
func (e Expression) Add(o Expression) Expression {
	out := make([]Term, 0, len(e.terms)+len(o.terms))
	i, j := 0, 0
	for i < len(e.terms) && j < len(o.terms) {
		a, b := e.terms[i], o.terms[j]
		switch {
		case a.Wire.Index < b.Wire.Index:
			out = append(out, a)
			i++
		case a.Wire.Index > b.Wire.Index:
			out = append(out, b)
			j++
		default:
			c := a.Coefficient.Add(b.Coefficient)
			if !c.IsZero() {
				out = append(out, Term{Wire: a.Wire, Coefficient: c})
			}
			i++
			j++
		}
	}
	out = append(out, e.terms[i:]...)
	out = append(out, o.terms[j:]...)
	return Expression{terms: out}
}

// Sub returns e - o.
func (e Expression) Sub(o Expression) Expression { return e.Add(o.Neg()) }

// Neg returns the additive inverse of e.
func (e Expression) Neg() Expression {
	out := make([]Term, len(e.terms))
	for i, t := range e.terms {
		out[i] = Term{Wire: t.Wire, Coefficient: t.Coefficient.Neg()}
	}
	return Expression{terms: out}
}

// Mul returns the expression scaled by c.
func (e Expression) Mul(c field.Element) Expression {
	if c.IsZero() {
		return Expression{}
	}
	out := make([]Term, len(e.terms))
	for i, t := range e.terms {
		out[i] = Term{Wire: t.Wire, Coefficient: t.Coefficient.Mul(c)}
	}
	return Expression{terms: out}
}

// Dependencies returns the wires the expression depends on, excluding the
// constant wire.
func (e Expression) Dependencies() []Wire {
	out := make([]Wire, 0, len(e.terms))
	for _, t := range e.terms {
		if t.Wire != WireOne {
			out = append(out, t.Wire)
		}
	}
	return out
}

// Evaluate computes Σ cᵢ·values[wᵢ]. It fails if any dependency is
// unbound.
func (e Expression) Evaluate(values *WireValues) (field.Element, error) {
	sum := field.Zero(values.Field())
	for _, t := range e.terms {
		v, ok := values.Get(t.Wire)
		if !ok {
			return field.Element{}, fmt.Errorf("no value for %s", t.Wire)
		}
		sum = sum.Add(t.Coefficient.Mul(v))
	}
	return sum, nil
}

// Equal is structural equality, which by canonicality coincides with
// equality of the represented linear combinations.
func (e Expression) Equal(o Expression) bool {
	if len(e.terms) != len(o.terms) {
		return false
	}
	for i := range e.terms {
		if e.terms[i].Wire != o.terms[i].Wire ||
			!e.terms[i].Coefficient.Equal(o.terms[i].Coefficient) {
			return false
		}
	}
	return true
}

func (e Expression) String() string {
	if len(e.terms) == 0 {
		return "0"
	}
	parts := make([]string, 0, len(e.terms))
	// print the constant term last, like a polynomial
	for _, t := range e.terms {
		if t.Wire == WireOne {
			continue
		}
		if t.Coefficient.IsOne() {
			parts = append(parts, t.Wire.String())
		} else {
			parts = append(parts, fmt.Sprintf("%s * %s", t.Wire, t.Coefficient))
		}
	}
	for _, t := range e.terms {
		if t.Wire == WireOne {
			parts = append(parts, t.Coefficient.String())
		}
	}
	return strings.Join(parts, " + ")
}
