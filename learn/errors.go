package learn

import "errors"

// ErrInvalidAction is returned by Environment.DoAction/DoActions when an
// action id is out of range.
var ErrInvalidAction = errors.New("learn: action id out of range")
