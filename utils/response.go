package utils

import (
	"encoding/json"
	"net/http"
	"os"
)

type M map[string]interface{}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// RespondWithError writes the failure envelope. Error detail is only exposed
// when APP_ENV=development; otherwise the "error" field is an empty object.
func RespondWithError(w http.ResponseWriter, code int, message string, err error) {
	detail := interface{}(struct{}{})
	if os.Getenv("APP_ENV") == "development" && err != nil {
		detail = err.Error()
	}
	RespondWithJSON(w, code, M{
		"success": false,
		"message": message,
		"error":   detail,
	})
}
