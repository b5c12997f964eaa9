package graph

// MaxTextLen bounds the raw formula buffer of one expression.
const MaxTextLen = 1024

// DefaultThickness is the stroke width assigned to new expressions.
const DefaultThickness = 2.0

// Expression is one user-entered formula plus its display metadata. Instances
// are owned by a Registry and mutated in place by the editor.
type Expression struct {
	Text      string
	Color     Color
	Visible   bool
	Thickness float64
	ID        int // stable identity; -1 means unset (legacy/default entries)
}

// SetText replaces the formula, truncating to MaxTextLen bytes.
func (e *Expression) SetText(s string) {
	if len(s) > MaxTextLen {
		s = s[:MaxTextLen]
	}
	e.Text = s
}

// Registry is the ordered collection of expressions. Order is display order
// only; identity is carried by Expression.ID.
type Registry struct {
	exprs  []*Expression
	nextID int
}

func NewRegistry() *Registry {
	return &Registry{nextID: 1}
}

// Add appends a new expression with empty text and default display metadata,
// and returns it.
func (r *Registry) Add() *Expression {
	e := &Expression{
		Color:     DefaultColor,
		Visible:   true,
		Thickness: DefaultThickness,
		ID:        r.nextID,
	}
	r.nextID++
	r.exprs = append(r.exprs, e)
	return e
}

// Remove deletes the expression with the given id, preserving the order of
// the remaining entries. It reports whether anything was removed.
func (r *Registry) Remove(id int) bool {
	for i, e := range r.exprs {
		if e.ID == id {
			r.exprs = append(r.exprs[:i], r.exprs[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Registry) Len() int             { return len(r.exprs) }
func (r *Registry) At(i int) *Expression { return r.exprs[i] }

// ByID returns the expression with the given id, or nil.
func (r *Registry) ByID(id int) *Expression {
	for _, e := range r.exprs {
		if e.ID == id {
			return e
		}
	}
	return nil
}
