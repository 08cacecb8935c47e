package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/abarbosa/redator-server/internal/model"
)

// ErrResponse is the JSON error body rendered for every failed request.
type ErrResponse struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	Message   string `json:"message"`
	ErrorText string `json:"error,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func errInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		Message:        err.Error(),
	}
}

func errNotFound(message string) render.Renderer {
	return &ErrResponse{
		HTTPStatusCode: http.StatusNotFound,
		Message:        message,
	}
}

func errUnauthorized(message string) render.Renderer {
	return &ErrResponse{
		HTTPStatusCode: http.StatusUnauthorized,
		Message:        message,
	}
}

func errInternal(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		Message:        "server error",
		ErrorText:      err.Error(),
	}
}

// badRequest folds any failure into a 400 with the error text, the default
// mapping for the CRUD routes.
func badRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		Message:        err.Error(),
	}
}

// notFoundOr400 maps a missing update target to 404 and everything else to
// 400. Only the two update routes answer with 404.
func notFoundOr400(err error, message string) render.Renderer {
	if errors.Is(err, model.ErrNotFound) {
		return errNotFound(message)
	}
	return badRequest(err)
}
