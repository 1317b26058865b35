package table

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hrconsole/internal/client/client"
)

var (
	ErrValidation = errors.New("required fields are missing")
	ErrBusy       = errors.New("a save or delete is already in progress for this row")
	ErrNotFound   = errors.New("row not found")
	ErrNotEditing = errors.New("row is not being edited")
)

// Category turns a store error into the message shown to the user.
func Category(err error) string {
	var se *client.StatusError

	switch {
	case errors.Is(err, client.ErrUnavailable):
		return "Failed to connect to server. Please try again."
	case errors.Is(err, client.ErrBadRequest):
		return "Bad request - please check the data format."
	case errors.Is(err, client.ErrNotFound):
		return "Record not found."
	case errors.Is(err, client.ErrConflict):
		return "Conflict (duplicate email or username)."
	case errors.Is(err, client.ErrUnauthorized):
		return "Unauthorized."
	case errors.Is(err, client.ErrServer):
		return "Server error. Please try again later."
	case errors.As(err, &se):
		return fmt.Sprintf("Error %d: %s", se.Code, se.Message)
	default:
		return err.Error()
	}
}
