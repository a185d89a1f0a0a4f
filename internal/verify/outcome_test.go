package verify

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOutcomeAveragesScores(t *testing.T) {
	f := ExtractFields(sampleCertificate)
	match := MatchResult{Verdict: VerdictSuspect, MatchScore: 95, Issues: []string{`Course mismatch (expected "B.Tech (ECE)")`}, HadMismatch: true}

	out := BuildOutcome("OCR complete", f, 100, match)

	assert.Equal(t, "OCR complete", out.Status)
	assert.Equal(t, VerdictSuspect, out.Verdict)
	assert.Equal(t, 98, out.Score) // round(0.5*100 + 0.5*95)
	assert.Len(t, out.Issues, 1)
}

func TestBuildOutcomeEmptyDocument(t *testing.T) {
	match := MatchAgainstRegistry(ExtractedFields{}, nil)
	out := BuildOutcome("PDF parsed", ExtractedFields{}, 0, match)

	assert.Equal(t, 0, out.Score)
	assert.Equal(t, VerdictUnverifiable, out.Verdict)
	assert.Equal(t, []string{"No matching record in registry"}, out.Issues)
}

func TestBuildOutcomeDefensiveInputs(t *testing.T) {
	out := BuildOutcome("OCR complete", ExtractedFields{}, 250, MatchResult{})
	assert.LessOrEqual(t, out.Score, 100)

	out = BuildOutcome("OCR complete", ExtractedFields{}, -10, MatchResult{})
	assert.GreaterOrEqual(t, out.Score, 0)
	assert.NotNil(t, out.Issues)
}

func TestExtractedFieldsJSONKeys(t *testing.T) {
	f := ExtractFields(sampleCertificate)
	b, err := json.Marshal(f)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, key := range []string{"Name", "Roll No.", "Certificate ID", "Course", "Marks", "Issued On"} {
		_, ok := m[key]
		assert.True(t, ok, "missing key %q", key)
	}
	assert.Len(t, m, 6)

	// absent fields serialize as null, not as missing keys
	b, err = json.Marshal(ExtractedFields{})
	require.NoError(t, err)
	var empty map[string]any
	require.NoError(t, json.Unmarshal(b, &empty))
	assert.Len(t, empty, 6)
	assert.Nil(t, empty["Name"])
}
