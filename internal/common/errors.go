// Package common defines sentinel errors shared by the record store layers.
// Callers match them with errors.Is.
package common

import "errors"

var (
	// repository level
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("conflict")

	// service level
	ErrorValidation = errors.New("validation error")
)
