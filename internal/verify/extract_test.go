package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCertificate = "Name: Ramesh Kumar\nRoll No.: JH/2019/0456\nCertificate ID: CERT-2020-3344\nCourse: B.Tech (CSE)\nMarks: 78.2%\nIssued On: 2020-07-15"

func strOf(p *string) string {
	if p == nil {
		return "<absent>"
	}
	return *p
}

func TestExtractFieldsLabeled(t *testing.T) {
	f := ExtractFields(sampleCertificate)

	require.NotNil(t, f.Name)
	assert.Equal(t, "Ramesh Kumar", *f.Name)
	require.NotNil(t, f.RollNo)
	assert.Equal(t, "JH/2019/0456", *f.RollNo)
	require.NotNil(t, f.CertificateID)
	assert.Equal(t, "CERT-2020-3344", *f.CertificateID)
	require.NotNil(t, f.Course)
	assert.Equal(t, "B.Tech (CSE)", *f.Course)
	require.NotNil(t, f.Marks)
	assert.Equal(t, "78.2%", *f.Marks)
	require.NotNil(t, f.IssuedOn)
	assert.Equal(t, "2020-07-15", *f.IssuedOn)

	assert.Equal(t, 100, Completeness(f))
}

func TestExtractFieldsLabelSynonyms(t *testing.T) {
	f := ExtractFields("Candidate Name - Anita Sharma\nEnrollment No.: MH/21/99881\nCert. No.: ABC-2021-120\nDegree: BSc Physics\nCGPA: 8.4\nDate of Issue: 2021/06/30")

	assert.Equal(t, "Anita Sharma", strOf(f.Name))
	assert.Equal(t, "MH/21/99881", strOf(f.RollNo))
	assert.Equal(t, "ABC-2021-120", strOf(f.CertificateID))
	assert.Equal(t, "BSc Physics", strOf(f.Course))
	assert.Equal(t, "8.4", strOf(f.Marks))
	assert.Equal(t, "2021/06/30", strOf(f.IssuedOn))
}

func TestExtractFieldsGlyphCleanup(t *testing.T) {
	// OCR renders dots as bullets and label separators as en-dashes; the
	// glyph canonicalization must recover both labeled lines.
	f := ExtractFields("Certificate ID– CERT-2022-410\nReg• No•: JH/2020/1123")

	assert.Equal(t, "CERT-2022-410", strOf(f.CertificateID))
	assert.Equal(t, "JH/2020/1123", strOf(f.RollNo))
}

func TestExtractFieldsFallbackShapes(t *testing.T) {
	// No labels at all: certificate id and roll number are picked up by
	// shape alone, first occurrence wins.
	f := ExtractFields("This certifies the completion of studies.\nCERT-2020-3344\nsomething else\nJH/2019/0456\nCERT-9999-111")

	assert.Equal(t, "CERT-2020-3344", strOf(f.CertificateID))
	assert.Equal(t, "JH/2019/0456", strOf(f.RollNo))
	assert.Nil(t, f.Name)
	assert.Nil(t, f.Course)
}

func TestExtractFieldsLabeledWinsOverFallback(t *testing.T) {
	f := ExtractFields("Certificate ID: LBL-2021-001\nCERT-2020-3344")
	assert.Equal(t, "LBL-2021-001", strOf(f.CertificateID))
}

func TestExtractFieldsRollLabelRequiresToken(t *testing.T) {
	// A labeled roll line whose value is not shaped letters/digits/digits
	// yields nothing from the labeled pass.
	f := ExtractFields("Roll No.: not-a-roll")
	assert.Nil(t, f.RollNo)
}

func TestExtractFieldsLooseDate(t *testing.T) {
	f := ExtractFields("Awarded this 15 July 2020 at the convocation")
	assert.Equal(t, "15 July 2020", strOf(f.IssuedOn))
}

func TestExtractFieldsLabeledDateWinsOverLoose(t *testing.T) {
	f := ExtractFields("Issued On: 2020-07-15\nsigned this 1 Jan 2021")
	assert.Equal(t, "2020-07-15", strOf(f.IssuedOn))
}

func TestExtractFieldsEmptyText(t *testing.T) {
	f := ExtractFields("")
	assert.Nil(t, f.Name)
	assert.Nil(t, f.RollNo)
	assert.Nil(t, f.CertificateID)
	assert.Nil(t, f.Course)
	assert.Nil(t, f.Marks)
	assert.Nil(t, f.IssuedOn)
	assert.Equal(t, 0, Completeness(f))
}

func TestCompletenessRounding(t *testing.T) {
	name := "Ramesh"
	f := ExtractedFields{Name: &name}
	assert.Equal(t, 17, Completeness(f)) // 1/6 -> 16.67 -> 17

	roll := "JH/2019/0456"
	cert := "CERT-2020-3344"
	course := "B.Tech"
	marks := "78"
	f = ExtractedFields{Name: &name, RollNo: &roll, CertificateID: &cert, Course: &course, Marks: &marks}
	assert.Equal(t, 83, Completeness(f)) // 5/6 -> 83.33 -> 83
}
