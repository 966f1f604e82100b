// Package repository contains one repo per table, each wrapping a
// *sql.DB with plain SQL.  This file defines sentinel errors shared
// across repositories so handlers can translate failure scenarios into
// HTTP status codes without inspecting driver errors.
package repository

import "errors"

// ErrEmailExists is returned when a user insert violates the unique
// email index.
var ErrEmailExists = errors.New("email already exists")

// ErrAlreadyCheckedIn is returned when a staff member tries to open a
// second attendance record for the same day.
var ErrAlreadyCheckedIn = errors.New("already checked in for today")

// ErrNoOpenAttendance is returned when a staff member checks out
// without an open attendance record for the day.
var ErrNoOpenAttendance = errors.New("no active check-in found to check out from")

// ErrTokenNotFound is returned when a refresh token hash does not
// resolve to an active token, whether unknown, revoked or expired.
var ErrTokenNotFound = errors.New("refresh token not found")

// Not-found sentinels, one per entity that handlers look up by ID.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrSubmissionNotFound  = errors.New("submission not found")
)
