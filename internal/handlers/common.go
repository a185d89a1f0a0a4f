package handlers

import (
	"encoding/json"
	"net/http"
)

func writeJSONResp(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
