package selector

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/selector/constants"
	"github.com/ygrebnov/selector/errors"
)

// The setters below are a forward-only gate: each one checks only whether
// disallowed earlier state already exists on the receiver, never global
// consistency. Once a later category has been supplied there is no transition
// back to an earlier one.
//
// Repeatable categories extend their fragment by concatenation. The unique
// categories share the same extend mechanism; for them the extend path sits
// behind the duplicate guard and a second call fails before reaching it.

// Element sets the type selector fragment, e.g. "div".
// Fails with ErrDuplicateCategory when an element was already supplied, and
// with ErrOrder when an id is already present.
func (b Builder) Element(value string) (Builder, error) {
	if b.parts.has(catElement) {
		return Builder{}, duplicateErr(catElement)
	}
	if b.parts.has(catID) {
		return Builder{}, orderErr(catElement, catID)
	}
	b.element += value
	b.parts = b.parts.with(catElement)
	return b, nil
}

// ID sets the id fragment, stored with its "#" prefix.
// Fails with ErrDuplicateCategory when an id was already supplied, and with
// ErrOrder when a class or pseudo-element is already present.
func (b Builder) ID(value string) (Builder, error) {
	if b.parts.has(catID) {
		return Builder{}, duplicateErr(catID)
	}
	if b.parts.has(catClass) {
		return Builder{}, orderErr(catID, catClass)
	}
	if b.parts.has(catPseudoElement) {
		return Builder{}, orderErr(catID, catPseudoElement)
	}
	b.id += constants.IDPrefix + value
	b.parts = b.parts.with(catID)
	return b, nil
}

// Class appends one ".class" fragment; repeats are legal.
// Fails with ErrOrder when an attribute is already present.
func (b Builder) Class(value string) (Builder, error) {
	if b.parts.has(catAttr) {
		return Builder{}, orderErr(catClass, catAttr)
	}
	b.classes += constants.ClassPrefix + value
	b.parts = b.parts.with(catClass)
	return b, nil
}

// Attr appends one "[attr]" fragment; repeats are legal.
// Fails with ErrOrder when a pseudo-class is already present.
func (b Builder) Attr(value string) (Builder, error) {
	if b.parts.has(catPseudoClass) {
		return Builder{}, orderErr(catAttr, catPseudoClass)
	}
	b.attrs += constants.AttrOpen + value + constants.AttrClose
	b.parts = b.parts.with(catAttr)
	return b, nil
}

// PseudoClass appends one ":name" fragment; repeats are legal.
// Fails with ErrOrder when a pseudo-element is already present.
func (b Builder) PseudoClass(value string) (Builder, error) {
	if b.parts.has(catPseudoElement) {
		return Builder{}, orderErr(catPseudoClass, catPseudoElement)
	}
	b.pseudoClasses += constants.PseudoClassPrefix + value
	b.parts = b.parts.with(catPseudoClass)
	return b, nil
}

// PseudoElement sets the "::name" fragment.
// Fails with ErrDuplicateCategory when a pseudo-element was already supplied.
func (b Builder) PseudoElement(value string) (Builder, error) {
	if b.parts.has(catPseudoElement) {
		return Builder{}, duplicateErr(catPseudoElement)
	}
	b.pseudoElement += constants.PseudoElementPrefix + value
	b.parts = b.parts.with(catPseudoElement)
	return b, nil
}

func duplicateErr(c category) error {
	return errorc.With(
		errors.ErrDuplicateCategory,
		errorc.String(errors.ErrorFieldCategory, c.String()),
	)
}

func orderErr(c, conflictsWith category) error {
	return errorc.With(
		errors.ErrOrder,
		errorc.String(errors.ErrorFieldCategory, c.String()),
		errorc.String(errors.ErrorFieldConflictsWith, conflictsWith.String()),
	)
}
