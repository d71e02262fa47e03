package repository

import "errors"

// ErrUniqueViolation is returned when an insert loses to an existing row on a
// unique column (handle, invite code). The store-level constraint is the
// source of truth: two racing writers both hit the constraint, the second one
// gets this error and no partial row is written.
var ErrUniqueViolation = errors.New("unique constraint violation")
