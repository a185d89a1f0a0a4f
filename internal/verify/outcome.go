package verify

import "math"

// Outcome is the final artifact of one verification: the combined score,
// the verdict, the prioritized issue list and the extraction itself.
type Outcome struct {
	Status    string          `json:"status"`
	Verdict   Verdict         `json:"verdict"`
	Score     int             `json:"score"`
	Issues    []string        `json:"issues"`
	Extracted ExtractedFields `json:"extracted"`
}

// BuildOutcome averages completeness with the match score and assembles the
// final outcome. The status label identifies the text source ("OCR
// complete" or "PDF parsed").
func BuildOutcome(status string, f ExtractedFields, completeness int, match MatchResult) Outcome {
	if completeness < 0 {
		completeness = 0
	} else if completeness > 100 {
		completeness = 100
	}
	score := int(math.Round(0.5*float64(completeness) + 0.5*float64(match.MatchScore)))
	issues := match.Issues
	if issues == nil {
		issues = []string{}
	}
	return Outcome{
		Status:    status,
		Verdict:   match.Verdict,
		Score:     score,
		Issues:    issues,
		Extracted: f,
	}
}
