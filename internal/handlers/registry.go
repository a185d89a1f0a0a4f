package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"credcheck/internal/models"
	"credcheck/internal/registry"
)

var requiredRecordFields = []string{"certificateId", "rollNo", "name", "course", "issuedOn", "marks"}

// PublishRecord: POST /publish-record
// Upserts a single registry record keyed by certificateId or rollNo.
func PublishRecord(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"error": "invalid JSON body"})
		return
	}

	get := func(k string) string {
		v, _ := body[k].(string)
		return strings.TrimSpace(v)
	}

	var missing []string
	for _, k := range requiredRecordFields {
		if get(k) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"error": "Missing fields: " + strings.Join(missing, ", ")})
		return
	}

	rec := models.RegistryRecord{
		CertificateID: get("certificateId"),
		RollNo:        get("rollNo"),
		Name:          get("name"),
		Course:        get("course"),
		IssuedOn:      get("issuedOn"),
		Marks:         get("marks"),
	}
	created, err := registry.Publish(&rec)
	if err != nil {
		writeJSONResp(w, http.StatusInternalServerError, map[string]any{"error": "publish failed"})
		return
	}

	count, err := registry.Count()
	if err != nil {
		writeJSONResp(w, http.StatusInternalServerError, map[string]any{"error": "count failed"})
		return
	}
	writeJSONResp(w, http.StatusOK, map[string]any{"ok": true, "created": created, "count": count})
}

// RegistryCount: GET /registry-count
func RegistryCount(w http.ResponseWriter, r *http.Request) {
	count, err := registry.Count()
	if err != nil {
		writeJSONResp(w, http.StatusInternalServerError, map[string]any{"error": "count failed"})
		return
	}
	writeJSONResp(w, http.StatusOK, map[string]any{"count": count})
}

var bulkCSVHeaders = []string{"certificate_id", "roll_no", "name", "course", "issued_on", "marks"}

// BulkPublishHandler: POST /publish-records-csv
// CSV bulk import of registry records by an institution admin.
func BulkPublishHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(50 << 20); err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"error": "failed to parse form"})
		return
	}

	file, header, err := lookupUploadedFile(r, "recordsCsv")
	if err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"error": "recordsCsv file is required", "expected_field": "recordsCsv"})
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // allow variable-length; we'll validate

	headers, err := reader.Read()
	if err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"error": "unable to read CSV header"})
		return
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(strings.ToLower(headers[i]))
	}
	if !equalStringSlices(headers, bulkCSVHeaders) {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{
			"error":    "Invalid CSV format. Please use the provided template.",
			"expected": bulkCSVHeaders,
			"got":      headers,
		})
		return
	}

	var inserted, updated int
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			writeJSONResp(w, http.StatusBadRequest, map[string]any{"error": "failed to read CSV rows"})
			return
		}
		if len(rec) != len(bulkCSVHeaders) {
			writeJSONResp(w, http.StatusBadRequest, map[string]any{"error": "row does not match header length"})
			return
		}

		row := models.RegistryRecord{
			CertificateID: strings.TrimSpace(rec[0]),
			RollNo:        strings.TrimSpace(rec[1]),
			Name:          strings.TrimSpace(rec[2]),
			Course:        strings.TrimSpace(rec[3]),
			IssuedOn:      strings.TrimSpace(rec[4]),
			Marks:         strings.TrimSpace(rec[5]),
		}
		if row.CertificateID == "" && row.RollNo == "" {
			writeJSONResp(w, http.StatusBadRequest, map[string]any{"error": "row missing both certificate_id and roll_no"})
			return
		}

		created, err := registry.Publish(&row)
		if err != nil {
			writeJSONResp(w, http.StatusInternalServerError, map[string]any{"error": "failed to upsert row"})
			return
		}
		if created {
			inserted++
		} else {
			updated++
		}
	}

	writeJSONResp(w, http.StatusOK, map[string]any{
		"message":  fmt.Sprintf("Imported %d new records, updated %d existing.", inserted, updated),
		"inserted": inserted,
		"updated":  updated,
		"file":     header.Filename,
	})
}

func equalStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
