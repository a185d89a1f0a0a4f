package handlers

import (
	"strings"
	"testing"
	"time"

	"credcheck/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLogCSV(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	rows := []models.VerificationLog{
		{TS: ts, Verdict: "Verified", Score: 100, CertificateID: "CERT-2020-3344", RollNo: "JH/2019/0456", Status: "OCR complete"},
		{TS: ts, Verdict: "Suspect", Score: 72, CertificateID: `AB"C-1`, RollNo: "", Status: "PDF parsed"},
	}

	var sb strings.Builder
	require.NoError(t, writeLogCSV(&sb, rows))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ts,verdict,score,certificateId,rollNo,status", lines[0])
	assert.Equal(t, "2024-03-01T10:30:00Z,Verified,100,CERT-2020-3344,JH/2019/0456,OCR complete", lines[1])
	// embedded quotes are doubled per RFC 4180
	assert.Contains(t, lines[2], `"AB""C-1"`)
}

func TestWriteLogCSVEmpty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, writeLogCSV(&sb, nil))
	assert.Equal(t, "ts,verdict,score,certificateId,rollNo,status\n", sb.String())
}
