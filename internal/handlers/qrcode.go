package handlers

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/skip2/go-qrcode"
)

// RecordQRCode: GET /records/{certificateId}/qrcode
// PNG QR encoding the public verification page for a published record.
func RecordQRCode(w http.ResponseWriter, r *http.Request) {
	certID := chi.URLParam(r, "certificateId")
	if certID == "" {
		http.Error(w, "missing certificateId", http.StatusBadRequest)
		return
	}

	base := os.Getenv("PUBLIC_BASE_URL")
	if base == "" {
		base = "http://localhost:3000"
	}
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	data := base + "/verify/" + certID

	png, err := qrcode.Encode(data, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
