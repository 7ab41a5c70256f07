package constants

const Namespace = "selector"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace

// Punctuation the CSS grammar mandates for each selector part category.
// Parts are stored pre-formatted with these tokens already applied.
const (
	IDPrefix            = "#"
	ClassPrefix         = "."
	AttrOpen            = "["
	AttrClose           = "]"
	PseudoClassPrefix   = ":"
	PseudoElementPrefix = "::"
)
