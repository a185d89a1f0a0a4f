package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// PDFText extracts the text layer of a PDF by shelling out to pdftotext.
// The binary can be overridden with PDFTOTEXT_BIN.
func PDFText(ctx context.Context, pdfBytes []byte) (string, error) {
	bin := os.Getenv("PDFTOTEXT_BIN")
	if bin == "" {
		bin = "pdftotext"
	}

	tmp, err := os.CreateTemp("", "cert-*.pdf")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(pdfBytes); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	// pdftotext -layout -enc UTF-8 -eol unix <file> -
	cmd := exec.CommandContext(ctx, bin, "-layout", "-enc", "UTF-8", "-eol", "unix", tmp.Name(), "-")
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("pdftotext failed: %v (%s)", err, strings.TrimSpace(errb.String()))
	}
	return strings.TrimSpace(out.String()), nil
}
