package model

import "errors"

var (
	// ErrNotFound signals that the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized signals a missing or invalid session.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrAlreadyLiked signals that the article is already on the user's liked list.
	ErrAlreadyLiked = errors.New("article already liked")
	// ErrInvalidID signals a malformed record identifier.
	ErrInvalidID = errors.New("invalid id")
	// ErrValidation signals a missing required field or schema violation.
	ErrValidation = errors.New("validation failed")
	// ErrNoSession signals the caller holds no session. Unlike ErrUnauthorized
	// it is not a failure on the session endpoint, which answers with null.
	ErrNoSession = errors.New("no session")
)
