package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"credcheck/internal/db"
	"credcheck/internal/logcache"
	"credcheck/internal/models"
	"credcheck/internal/ocr"
	"credcheck/internal/registry"
	"credcheck/internal/verify"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// VerifyDocument: POST /verify
// multipart/form-data with file field "certificate" (image or PDF).
func VerifyDocument(w http.ResponseWriter, r *http.Request) {
	// Limit body to 10MB
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"error": "failed to parse form or file too large"})
		return
	}

	file, header, err := lookupUploadedFile(r, "certificate")
	if err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"error": "missing file field 'certificate' (send multipart/form-data with field name 'certificate')"})
		return
	}
	defer file.Close()

	docBytes, err := io.ReadAll(file)
	if err != nil || len(docBytes) == 0 {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"error": "failed to read uploaded file"})
		return
	}

	contentType := strings.ToLower(header.Header.Get("Content-Type"))
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = strings.ToLower(http.DetectContentType(docBytes))
	}
	isImage := strings.HasPrefix(contentType, "image/")
	isPDF := strings.Contains(contentType, "pdf")

	ctx := r.Context()
	var text, status string
	switch {
	case isImage:
		status = "OCR complete"
		text, err = ocr.ImageText(ctx, docBytes)
	case isPDF:
		status = "PDF parsed"
		text, err = ocr.PDFText(ctx, docBytes)
	default:
		writeJSONResp(w, http.StatusUnsupportedMediaType, map[string]any{"error": "Unsupported file type: " + contentType})
		return
	}
	if err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"error": "extraction failed", "message": err.Error()})
		return
	}

	extracted := verify.ExtractFields(text)
	if os.Getenv("GEMINI_API_KEY") != "" {
		extracted = FillWithGemini(ctx, text, extracted)
	}
	completeness := verify.Completeness(extracted)

	snapshot, err := registry.Snapshot()
	if err != nil {
		writeJSONResp(w, http.StatusInternalServerError, map[string]any{"error": "registry unavailable"})
		return
	}
	match := verify.MatchAgainstRegistry(extracted, snapshot)
	outcome := verify.BuildOutcome(status, extracted, completeness, match)

	payload := map[string]any{
		"status":    outcome.Status,
		"verdict":   outcome.Verdict,
		"score":     outcome.Score,
		"issues":    outcome.Issues,
		"text":      text,
		"extracted": outcome.Extracted,
	}

	// Advisory only: when the candidate's name disagreed, report how close
	// the two names are. Never feeds the score or verdict.
	if match.HadMismatch && extracted.Name != nil {
		if cand, ok := verify.FindCandidate(extracted, snapshot); ok && cand.Name != "" && verify.TextNorm(cand.Name) != verify.TextNorm(*extracted.Name) {
			metric := metrics.NewJaroWinkler()
			payload["name_similarity"] = strutil.Similarity(strings.ToLower(*extracted.Name), strings.ToLower(cand.Name), metric)
		}
	}

	logRow := models.VerificationLog{
		TS:            time.Now(),
		Verdict:       string(outcome.Verdict),
		Score:         outcome.Score,
		CertificateID: deref(extracted.CertificateID),
		RollNo:        deref(extracted.RollNo),
		Status:        status,
	}
	if err := db.DB.Create(&logRow).Error; err != nil {
		fmt.Println("verify: log insert failed:", err)
	}
	logcache.Push(logcache.Entry{
		TS:            logRow.TS.Format(time.RFC3339),
		Verdict:       logRow.Verdict,
		Score:         logRow.Score,
		CertificateID: logRow.CertificateID,
		RollNo:        logRow.RollNo,
		Status:        logRow.Status,
	})

	writeJSONResp(w, http.StatusOK, payload)
}

// lookupUploadedFile prefers the named field but tolerates the field names
// frontends commonly send instead, falling back to the first file present.
func lookupUploadedFile(r *http.Request, field string) (multipart.File, *multipart.FileHeader, error) {
	if f, h, err := r.FormFile(field); err == nil {
		return f, h, nil
	}
	if r.MultipartForm == nil || r.MultipartForm.File == nil {
		return nil, nil, fmt.Errorf("no multipart files")
	}
	available := make([]string, 0, len(r.MultipartForm.File))
	for k := range r.MultipartForm.File {
		available = append(available, k)
	}
	fmt.Println("verify: available multipart file fields:", available)

	alts := []string{"file", "upload", "image", "document", "cert", "certificateFile", "certificate[]", "files[]"}
	for _, a := range alts {
		if f, h, err := r.FormFile(a); err == nil {
			fmt.Println("verify: using alternative file field:", a)
			return f, h, nil
		}
	}
	if len(available) > 0 {
		if f, h, err := r.FormFile(available[0]); err == nil {
			fmt.Println("verify: falling back to first file field:", available[0])
			return f, h, nil
		}
	}
	return nil, nil, fmt.Errorf("file field %q not found", field)
}
