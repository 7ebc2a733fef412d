// FILE: internal/entity/errors.go
package entity

import "errors"

// ErrVersionConflict signals that a subscription write raced a newer
// server-side copy. The caller should refetch and reapply; the server row
// wins.
var ErrVersionConflict = errors.New("subscription version conflict")
