package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
)

func writeJSONError(w http.ResponseWriter, status int, errType, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(domain.APIError{
		Type:   errType,
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	})
}
