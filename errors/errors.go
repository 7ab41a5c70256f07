package errors

import (
	stderrors "errors"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/selector/constants"
)

var namespace = errorc.Namespace(constants.Namespace)

// Rule-violation sentinels for the builder. Use errors.Is to match.
//
// The message bytes mirror the reference test-suite (including the
// "more then" spelling) and are part of the public contract, so they are
// built without the namespace prefix. Keep them byte-stable.
var (
	ErrDuplicateCategory = stderrors.New("Element, id and pseudo-element should not occur more then one time inside the selector")
	ErrOrder             = stderrors.New("Selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")
)

// Sentinel errors for the companion utilities. Use errors.Is to match.
var (
	ErrEncode               = namespace.NewError("cannot encode value")
	ErrDecode               = namespace.NewError("cannot decode value")
	ErrNonPositiveDimension = namespace.NewError("dimension must be positive")
)

var newKey = errorc.KeyFactory(constants.ErrorFieldNamespace)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentPart      = "part"
	keySegmentCodec     = "codec"
	keySegmentRectangle = "rectangle"
)

// Exported structured error field keys
var (
	ErrorFieldCategory      = newKey("category", keySegmentPart)       // selector.part.category
	ErrorFieldConflictsWith = newKey("conflicts_with", keySegmentPart) // selector.part.conflicts_with
)

var (
	ErrorFieldContentType = newKey("content_type", keySegmentCodec) // selector.codec.content_type
	ErrorFieldTargetType  = newKey("target_type", keySegmentCodec)  // selector.codec.target_type
)

var (
	ErrorFieldDimension = newKey("dimension", keySegmentRectangle) // selector.rectangle.dimension
	ErrorFieldValue     = newKey("value", keySegmentRectangle)     // selector.rectangle.value
)

var (
	ErrorFieldCause = newKey("cause")
)
