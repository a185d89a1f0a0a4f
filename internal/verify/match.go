package verify

import (
	"fmt"
	"math"
)

// Verdict is the three-state trust classification for a verification.
type Verdict string

const (
	VerdictVerified     Verdict = "Verified"
	VerdictSuspect      Verdict = "Suspect"
	VerdictUnverifiable Verdict = "Unverifiable"
)

// RegistryRecord is a read-only view of one institution-published
// certificate, as handed to the matcher in a registry snapshot.
type RegistryRecord struct {
	CertificateID string `json:"certificateId"`
	RollNo        string `json:"rollNo"`
	Name          string `json:"name"`
	Course        string `json:"course"`
	IssuedOn      string `json:"issuedOn"`
	Marks         string `json:"marks"`
}

// MatchResult is the outcome of comparing one extraction against the
// registry. Issues carries at most three human-readable discrepancies.
type MatchResult struct {
	Verdict     Verdict  `json:"verdict"`
	MatchScore  int      `json:"matchScore"`
	Issues      []string `json:"issues"`
	HadMismatch bool     `json:"hadMismatch"`
}

const maxIssues = 3

// fieldChecks is the weighted comparison table, in issue-priority order.
// Weights sum to 1.00.
var fieldChecks = []struct {
	label    string
	weight   float64
	expected func(RegistryRecord) string
	got      func(ExtractedFields) *string
	equal    func(expected, got string) bool
}{
	{"Certificate ID", 0.32,
		func(r RegistryRecord) string { return r.CertificateID },
		func(f ExtractedFields) *string { return f.CertificateID },
		func(e, g string) bool { return TextNorm(e) == TextNorm(g) }},
	{"Roll No.", 0.28,
		func(r RegistryRecord) string { return r.RollNo },
		func(f ExtractedFields) *string { return f.RollNo },
		func(e, g string) bool { return RollNorm(e) == RollNorm(g) }},
	{"Name", 0.18,
		func(r RegistryRecord) string { return r.Name },
		func(f ExtractedFields) *string { return f.Name },
		func(e, g string) bool { return TextNorm(e) == TextNorm(g) }},
	{"Issued On", 0.12,
		func(r RegistryRecord) string { return r.IssuedOn },
		func(f ExtractedFields) *string { return f.IssuedOn },
		func(e, g string) bool { return TextNorm(DateNorm(e)) == TextNorm(DateNorm(g)) }},
	{"Course", 0.05,
		func(r RegistryRecord) string { return r.Course },
		func(f ExtractedFields) *string { return f.Course },
		func(e, g string) bool { return TextNorm(e) == TextNorm(g) }},
	{"Marks", 0.05,
		func(r RegistryRecord) string { return r.Marks },
		func(f ExtractedFields) *string { return f.Marks },
		func(e, g string) bool {
			en, eok := MarksNorm(e)
			gn, gok := MarksNorm(g)
			return eok == gok && en == gn
		}},
}

// FindCandidate locates the first record matching the extraction by
// certificate ID or roll number. Records with a duplicated roll number are
// a known limitation: the first one in snapshot order wins.
func FindCandidate(f ExtractedFields, snapshot []RegistryRecord) (RegistryRecord, bool) {
	for _, r := range snapshot {
		if f.CertificateID != nil && TextNorm(r.CertificateID) == TextNorm(*f.CertificateID) {
			return r, true
		}
		if f.RollNo != nil && RollNorm(r.RollNo) == RollNorm(*f.RollNo) {
			return r, true
		}
	}
	return RegistryRecord{}, false
}

// MatchAgainstRegistry scores an extraction against the registry snapshot.
// The snapshot is never modified.
func MatchAgainstRegistry(f ExtractedFields, snapshot []RegistryRecord) MatchResult {
	candidate, found := FindCandidate(f, snapshot)
	if !found {
		return MatchResult{
			Verdict:     VerdictUnverifiable,
			MatchScore:  0,
			Issues:      []string{"No matching record in registry"},
			HadMismatch: true,
		}
	}

	var score float64
	var issues []string
	hadMismatch := false

	for _, c := range fieldChecks {
		expected := c.expected(candidate)
		got := c.got(f)
		if expected != "" && got != nil && c.equal(expected, *got) {
			score += c.weight
			continue
		}
		hadMismatch = true
		if expected != "" {
			issues = append(issues, fmt.Sprintf("%s mismatch (expected %q)", c.label, expected))
		} else {
			issues = append(issues, c.label+" missing")
		}
	}

	if len(issues) > maxIssues {
		issues = issues[:maxIssues]
	}
	if issues == nil {
		issues = []string{}
	}

	matchScore := int(math.Round(score * 100))
	verdict := VerdictVerified
	if hadMismatch {
		if matchScore >= 50 {
			verdict = VerdictSuspect
		} else {
			verdict = VerdictUnverifiable
		}
	}

	return MatchResult{Verdict: verdict, MatchScore: matchScore, Issues: issues, HadMismatch: hadMismatch}
}
