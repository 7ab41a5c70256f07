package selector

import "github.com/ygrebnov/selector/errors"

// Rule-violation sentinels, re-exported from the errors subpackage so callers
// only need this package. Use errors.Is to match; both carry reference
// test-suite message bytes that must stay stable.
var (
	ErrDuplicateCategory = errors.ErrDuplicateCategory
	ErrOrder             = errors.ErrOrder
)
