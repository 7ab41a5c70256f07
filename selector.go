// Package selector builds CSS complex selector strings under the grammar's
// ordering and cardinality rules.
//
// A Builder is an immutable value: every operation returns a new Builder and
// leaves the receiver untouched, so intermediate values may be kept, branched
// from, and shared across goroutines without synchronization. Part setters
// enforce two rules at call time:
//
//   - ordering: parts must be supplied in the order element, id, class,
//     attribute, pseudo-class, pseudo-element;
//   - cardinality: element, id and pseudo-element may appear at most once.
//
// Violations are reported with ErrDuplicateCategory and ErrOrder; match them
// with errors.Is.
package selector

// category identifies one selector part kind, ordered per the CSS grammar.
type category uint8

const (
	catElement category = iota
	catID
	catClass
	catAttr
	catPseudoClass
	catPseudoElement
	catCombined
)

// String returns the grammar name of the category, used in error context.
func (c category) String() string {
	switch c {
	case catElement:
		return "element"
	case catID:
		return "id"
	case catClass:
		return "class"
	case catAttr:
		return "attribute"
	case catPseudoClass:
		return "pseudo-class"
	case catPseudoElement:
		return "pseudo-element"
	case catCombined:
		return "combined"
	}
	return "unknown"
}

// partSet records which categories have been supplied. A separate set is kept
// so that a part explicitly set to the empty string still counts as present.
type partSet uint8

func (s partSet) has(c category) bool { return s&(1<<c) != 0 }

func (s partSet) with(c category) partSet { return s | 1<<c }

// Builder is an immutable CSS selector under construction. The zero value is
// an empty selector ready for use.
//
// Fragments are stored pre-formatted with their grammar punctuation, one
// string per category; repeatable categories accumulate by concatenation.
type Builder struct {
	element       string
	id            string
	classes       string
	attrs         string
	pseudoClasses string
	pseudoElement string
	combined      string
	parts         partSet
}

// New returns an empty Builder. It is equivalent to the zero value and exists
// for call-site readability.
func New() Builder { return Builder{} }

// Render produces the selector string. A builder produced by Combine returns
// its combined text verbatim; otherwise the accumulated fragments are
// concatenated in fixed category order regardless of the order in which they
// were supplied. An empty builder renders to "". Render has no side effects
// and may be called any number of times.
func (b Builder) Render() string {
	if b.parts.has(catCombined) {
		return b.combined
	}
	return b.element + b.id + b.classes + b.attrs + b.pseudoClasses + b.pseudoElement
}

// String implements fmt.Stringer; it is an alias for Render.
func (b Builder) String() string { return b.Render() }
