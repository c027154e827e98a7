package model

import "errors"

// ErrNotFound reports a lookup that matched no stored entity.
var ErrNotFound = errors.New("not found")
