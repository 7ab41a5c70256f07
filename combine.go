package selector

// Combinator joins two selectors in a combined selector.
type Combinator string

// Combinators defined by the CSS grammar. Combine accepts arbitrary tokens;
// these constants cover the standard ones.
const (
	Descendant        Combinator = " "
	Child             Combinator = ">"
	NextSibling       Combinator = "+"
	SubsequentSibling Combinator = "~"
)

// Combine joins two selectors with a combinator. Both operands are rendered
// eagerly, so later changes to them cannot affect the result. The returned
// builder is terminal for rendering purposes: Render returns the combined
// text verbatim regardless of any other parts.
//
// There are no ordering or cardinality preconditions; operands may themselves
// be combined builders, in which case their combinators appear verbatim
// inside the outer string.
func Combine(first Builder, comb Combinator, second Builder) Builder {
	return Builder{}.extendCombined(first.Render() + " " + string(comb) + " " + second.Render())
}

// extendCombined appends rendered text onto any existing combined value,
// without a separator.
func (b Builder) extendCombined(text string) Builder {
	b.combined += text
	b.parts = b.parts.with(catCombined)
	return b
}
