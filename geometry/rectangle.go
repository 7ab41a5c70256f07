// Package geometry provides small immutable plane-geometry value objects.
package geometry

import (
	"strconv"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/selector/errors"
)

// Rectangle is an immutable axis-aligned rectangle.
type Rectangle struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// NewRectangle returns a Rectangle with the given dimensions.
// Non-positive dimensions fail with ErrNonPositiveDimension; match with
// errors.Is.
func NewRectangle(width, height float64) (Rectangle, error) {
	if width <= 0 {
		return Rectangle{}, dimensionErr("width", width)
	}
	if height <= 0 {
		return Rectangle{}, dimensionErr("height", height)
	}
	return Rectangle{Width: width, Height: height}, nil
}

// Area returns the rectangle's area.
func (r Rectangle) Area() float64 { return r.Width * r.Height }

// Clone returns a copy of the rectangle. Rectangle has no reference fields,
// so the receiver itself suffices; the method satisfies codec.Cloner for use
// as a codec.Parse prototype.
func (r Rectangle) Clone() Rectangle { return r }

func dimensionErr(dimension string, value float64) error {
	return errorc.With(
		errors.ErrNonPositiveDimension,
		errorc.String(errors.ErrorFieldDimension, dimension),
		errorc.String(errors.ErrorFieldValue, strconv.FormatFloat(value, 'g', -1, 64)),
	)
}
