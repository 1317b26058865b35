// Package client talks to the HR record store.
//
// # Overview
//
//  1. HTTPClient is the REST transport: base URL, timeout, JSON encoding and
//     the mapping of transport failures and response statuses to sentinel
//     errors.
//  2. Collection is a typed view of one entity collection (admin, users,
//     attendance, leave) exposing list, equality find, get, create, update
//     and delete.
//  3. InitDatabase opens the console's local SQLite file and applies the
//     embedded goose migrations.
//
// # Error Handling
//
// Callers match errors with errors.Is: ErrUnavailable for transport
// failures, and ErrBadRequest, ErrUnauthorized, ErrNotFound, ErrConflict or
// ErrServer for store-reported failures. Every non-2xx response is a
// *StatusError carrying the code and the store's message.
//
// HTTPClient and Collection are safe for concurrent use. All calls accept a
// context.Context and honour its cancellation.
package client
