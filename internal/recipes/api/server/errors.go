package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Leopold1975/recipes/internal/pkg/validation"
	"github.com/Leopold1975/recipes/internal/recipes/api/oapi"
	"github.com/Leopold1975/recipes/internal/recipes/repository/imagestore"
	"github.com/Leopold1975/recipes/internal/recipes/services/authservice"
	"github.com/Leopold1975/recipes/internal/recipes/services/recipeservice"
)

var (
	ErrDecode          = errors.New("malformed request body")
	ErrTooManyRequests = errors.New("too many requests, try again later")
	ErrInternal        = errors.New("internal server error")
)

type Error struct {
	Err    string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (se Error) ToJSON() []byte {
	b, err := json.Marshal(se)
	if err != nil {
		se.Err = err.Error()
		se.Fields = nil

		b, err := json.Marshal(se)
		if err != nil {
			return []byte(`{"error": "marshal error"}`)
		}

		return b
	}

	return b
}

func handleError(w http.ResponseWriter, err error, code int) {
	e := Error{Err: err.Error()} //nolint:exhaustruct

	var verr *validation.Error
	if errors.As(err, &verr) {
		e.Fields = verr.Fields
	}

	if code == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	w.Write(e.ToJSON()) //nolint:errcheck
}

// statusCode maps service errors to HTTP statuses. Unknown errors are 500.
func statusCode(err error) int {
	var (
		verr  *validation.Error
		param *oapi.InvalidParamFormatError
	)

	switch {
	case errors.As(err, &verr), errors.As(err, &param), errors.Is(err, ErrDecode),
		errors.Is(err, authservice.ErrUserExists), errors.Is(err, authservice.ErrInvalidCredentials):
		return http.StatusBadRequest
	case errors.Is(err, authservice.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, recipeservice.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrTooManyRequests):
		return http.StatusTooManyRequests
	case errors.Is(err, imagestore.ErrDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the status matching err. Internal failures are
// logged and hidden from the client.
func (s Server) writeError(w http.ResponseWriter, err error) {
	code := statusCode(err)

	switch {
	case code == http.StatusInternalServerError:
		s.lg.Errorf("internal error: %s", err.Error())

		err = ErrInternal
	case errors.Is(err, authservice.ErrUnauthenticated):
		err = authservice.ErrUnauthenticated
	case errors.Is(err, authservice.ErrUserExists):
		err = validation.FieldError("email", authservice.ErrUserExists.Error())
	case errors.Is(err, authservice.ErrInvalidCredentials):
		err = validation.FieldError("non_field_errors", authservice.ErrInvalidCredentials.Error())
	}

	var param *oapi.InvalidParamFormatError
	if errors.As(err, &param) {
		err = validation.FieldError(param.ParamName, "invalid value")
	}

	handleError(w, err, code)
}
