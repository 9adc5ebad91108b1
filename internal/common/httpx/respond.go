package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"patio-system/internal/domain"
)

func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteProblem renders a simplified RFC7807 problem body.
func WriteProblem(w http.ResponseWriter, code int, typ, detail string) {
	WriteJSON(w, code, map[string]any{
		"type":   typ,
		"title":  http.StatusText(code),
		"status": code,
		"detail": detail,
	})
}

// WriteDomainError maps the typed domain failures onto HTTP statuses:
// validation 422, not found 404, invalid transition 409, storage 500.
func WriteDomainError(w http.ResponseWriter, err error) {
	var (
		vErr *domain.ValidationError
		sErr *domain.InvalidStateError
		stEr *domain.StorageError
	)
	switch {
	case errors.As(err, &vErr):
		WriteProblem(w, http.StatusUnprocessableEntity, "validation_error", vErr.Error())
	case errors.Is(err, domain.ErrNotFound):
		WriteProblem(w, http.StatusNotFound, "not_found", "order or record not found")
	case errors.As(err, &sErr):
		WriteJSON(w, http.StatusConflict, map[string]any{
			"type":           "invalid_state",
			"title":          http.StatusText(http.StatusConflict),
			"status":         http.StatusConflict,
			"detail":         sErr.Error(),
			"current_status": sErr.Current,
		})
	case errors.As(err, &stEr):
		WriteProblem(w, http.StatusInternalServerError, "storage_error", stEr.Error())
	default:
		WriteProblem(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
