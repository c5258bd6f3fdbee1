package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/villagerdb/api/apivillagersv1"
	"github.com/fulldump/villagerdb/database"
	"github.com/fulldump/villagerdb/service"
)

var ErrInternal = errors.New("internal error")
var ErrUnavailable = errors.New("temporary unavailable")

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (p PrettyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"error": struct {
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			p.Message,
			p.Description,
		},
	})
}

func (p PrettyError) MarshalTo(w io.Writer) error {
	return json.NewEncoder(w).Encode(p)
}

func InterceptorUnavailable(db *database.Database) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {

			status := db.GetStatus()
			if status != database.StatusOperating {
				box.SetError(ctx, fmt.Errorf("%w: %s", ErrUnavailable, status))
				return
			}
			next(ctx)
		}
	}
}

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)
		r := box.GetRequest(ctx)

		status := http.StatusInternalServerError
		description := "Unexpected error"

		switch {
		case err == ErrUnauthorized:
			status = http.StatusUnauthorized
			description = "user is not authenticated"
		case err == box.ErrResourceNotFound:
			status = http.StatusNotFound
			description = fmt.Sprintf("resource '%s' not found", r.URL.String())
		case err == box.ErrMethodNotAllowed:
			status = http.StatusMethodNotAllowed
			description = fmt.Sprintf("method '%s' not allowed", r.Method)
		case errors.Is(err, service.ErrorVillagerNotFound):
			status = http.StatusNotFound
			description = "there is no villager with that name"
		case errors.Is(err, ErrUnavailable):
			status = http.StatusServiceUnavailable
			description = "data file is not ready"
		case errors.Is(err, apivillagersv1.ErrBadInput):
			status = http.StatusBadRequest
			description = "Bad input"
		case isSyntaxError(err):
			status = http.StatusBadRequest
			description = "Malformed JSON"
		}

		w.WriteHeader(status)
		PrettyError{
			Message:     err.Error(),
			Description: description,
		}.MarshalTo(w)
	}
}

func isSyntaxError(err error) bool {
	var syntaxError *json.SyntaxError
	return errors.As(err, &syntaxError)
}
