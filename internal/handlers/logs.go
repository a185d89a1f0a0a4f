package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"credcheck/internal/db"
	"credcheck/internal/logcache"
	"credcheck/internal/models"

	"github.com/xuri/excelize/v2"
)

// RecentLogs: GET /logs — newest-first 10 recent verifications, served from
// the ring cache when it has entries, the database otherwise.
func RecentLogs(w http.ResponseWriter, r *http.Request) {
	items := logcache.Recent(10)
	if len(items) == 0 {
		rows, err := fetchLogRows(10)
		if err != nil {
			writeJSONResp(w, http.StatusInternalServerError, map[string]any{"error": "logs read failed"})
			return
		}
		items = make([]logcache.Entry, 0, len(rows))
		for _, l := range rows {
			items = append(items, logcache.Entry{
				TS:            l.TS.Format(time.RFC3339),
				Verdict:       l.Verdict,
				Score:         l.Score,
				CertificateID: l.CertificateID,
				RollNo:        l.RollNo,
				Status:        l.Status,
			})
		}
	}
	writeJSONResp(w, http.StatusOK, map[string]any{"items": items})
}

func fetchLogRows(limit int) ([]models.VerificationLog, error) {
	var rows []models.VerificationLog
	err := db.DB.Order("ts desc").Limit(limit).Find(&rows).Error
	return rows, err
}

var logExportHeader = []string{"ts", "verdict", "score", "certificateId", "rollNo", "status"}

// ExportLogsCSV: GET /export-logs.csv
func ExportLogsCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := fetchLogRows(1000)
	if err != nil {
		http.Error(w, "csv export failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="verification-logs.csv"`)
	if err := writeLogCSV(w, rows); err != nil {
		fmt.Println("export: csv write failed:", err)
	}
}

func writeLogCSV(w io.Writer, rows []models.VerificationLog) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(logExportHeader); err != nil {
		return err
	}
	for _, l := range rows {
		rec := []string{
			l.TS.Format(time.RFC3339),
			l.Verdict,
			strconv.Itoa(l.Score),
			l.CertificateID,
			l.RollNo,
			l.Status,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportLogsXLSX: GET /export-logs.xlsx
func ExportLogsXLSX(w http.ResponseWriter, r *http.Request) {
	rows, err := fetchLogRows(1000)
	if err != nil {
		http.Error(w, "xlsx export failed", http.StatusInternalServerError)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]any, len(logExportHeader))
	for i, h := range logExportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		http.Error(w, "xlsx export failed", http.StatusInternalServerError)
		return
	}
	for i, l := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			http.Error(w, "xlsx export failed", http.StatusInternalServerError)
			return
		}
		row := []any{l.TS.Format(time.RFC3339), l.Verdict, l.Score, l.CertificateID, l.RollNo, l.Status}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			http.Error(w, "xlsx export failed", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="verification-logs.xlsx"`)
	if err := f.Write(w); err != nil {
		fmt.Println("export: xlsx write failed:", err)
	}
}
