package verify

import (
	"math"
	"regexp"
	"strings"
)

// ExtractedFields is the structured result of one extraction pass. A nil
// field means "not found"; values are always trimmed and never empty.
type ExtractedFields struct {
	Name          *string `json:"Name"`
	RollNo        *string `json:"Roll No."`
	CertificateID *string `json:"Certificate ID"`
	Course        *string `json:"Course"`
	Marks         *string `json:"Marks"`
	IssuedOn      *string `json:"Issued On"`
}

var (
	bulletGlyphRe = regexp.MustCompile(`[·•]+`)
	dashGlyphRe   = regexp.MustCompile(`[–—−]`)

	nameLabelRe   = regexp.MustCompile(`(?i)(?:^|\n)[ \t]*(?:Name|Student\s*Name|Candidate\s*Name)\s*[:\-]\s*(.+)`)
	certLabelRe   = regexp.MustCompile(`(?i)(?:^|\n)[ \t]*(?:Certificate(?:\s*ID)?|Cert(?:ificate)?\s*(?:No|#)|Cert\.?\s*No\.?)\s*[:\-]\s*([A-Z0-9\-]+)`)
	courseLabelRe = regexp.MustCompile(`(?i)(?:^|\n)[ \t]*(?:Course|Program|Programme|Degree)\s*[:\-]\s*(.+)`)
	marksLabelRe  = regexp.MustCompile(`(?i)(?:^|\n)[ \t]*(?:Marks|Percentage|CGPA|Score)\s*[:\-]\s*([0-9]+(?:\.[0-9]+)?%?)`)
	rollLabelRe   = regexp.MustCompile(`(?i)(?:^|\n)[ \t]*(?:Roll\s*No\.?|Enrollment\s*No\.?|Enroll(?:ment)?|Reg(?:istration)?\s*No\.?|Reg\.?\s*No\.?)\s*[:\-]\s*(.+)`)
	dateLabelRe   = regexp.MustCompile(`(?i)(?:^|\n)[ \t]*(?:Issued\s*On|Issue\s*Date|Date\s*of\s*Issue|Date)\s*[:\-]\s*([0-9]{4}[-/][0-9]{2}[-/][0-9]{2}|[0-9]{2}[-/][0-9]{2}[-/][0-9]{4})`)

	rollTokenRe = regexp.MustCompile(`(?i)[A-Z]{1,5}/\d{2,4}/\d{3,6}`)
	looseDateRe = regexp.MustCompile(`(?i)\b[0-3]?\d\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\s+\d{4}\b`)
	certShapeRe = regexp.MustCompile(`\b[A-Z]{3,5}-\d{4}-\d{3,5}\b`)
)

// labelRules is the ordered table of plain "<label> : <value>" extractions.
// Each rule is independent; the first match in the text wins for its field.
var labelRules = []struct {
	re  *regexp.Regexp
	set func(*ExtractedFields, *string)
}{
	{nameLabelRe, func(f *ExtractedFields, v *string) { f.Name = v }},
	{certLabelRe, func(f *ExtractedFields, v *string) { f.CertificateID = v }},
	{courseLabelRe, func(f *ExtractedFields, v *string) { f.Course = v }},
	{marksLabelRe, func(f *ExtractedFields, v *string) { f.Marks = v }},
}

func pick(re *regexp.Regexp, text string) *string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v := strings.TrimSpace(m[1])
	if v == "" {
		return nil
	}
	return &v
}

// ExtractFields scans raw recognized text for the six canonical certificate
// fields. Labeled lines take priority; shape-based fallback scans only fill
// fields the labeled pass left absent.
func ExtractFields(raw string) ExtractedFields {
	clean := strings.ReplaceAll(raw, "\r", "")
	clean = bulletGlyphRe.ReplaceAllString(clean, ".")
	clean = dashGlyphRe.ReplaceAllString(clean, "-")

	var f ExtractedFields
	for _, rule := range labelRules {
		rule.set(&f, pick(rule.re, clean))
	}

	// Roll labels capture the remainder of the line, but only a token
	// shaped like JH/2019/0456 counts as a roll number.
	if line := pick(rollLabelRe, clean); line != nil {
		if tok := rollTokenRe.FindString(*line); tok != "" {
			f.RollNo = &tok
		}
	}

	f.IssuedOn = pick(dateLabelRe, clean)
	if f.IssuedOn == nil {
		if tok := strings.TrimSpace(looseDateRe.FindString(clean)); tok != "" {
			f.IssuedOn = &tok
		}
	}

	if f.CertificateID == nil || f.RollNo == nil {
		for _, ln := range strings.Split(clean, "\n") {
			ln = strings.TrimSpace(ln)
			if ln == "" {
				continue
			}
			if f.CertificateID == nil {
				if tok := certShapeRe.FindString(ln); tok != "" {
					f.CertificateID = &tok
				}
			}
			if f.RollNo == nil {
				if tok := rollTokenRe.FindString(ln); tok != "" {
					f.RollNo = &tok
				}
			}
			if f.CertificateID != nil && f.RollNo != nil {
				break
			}
		}
	}

	return f
}

func (f ExtractedFields) all() []*string {
	return []*string{f.Name, f.RollNo, f.CertificateID, f.Course, f.Marks, f.IssuedOn}
}

// Completeness reports how much of the document was readable: the rounded
// percentage of the six fields that were extracted, regardless of whether
// they are correct.
func Completeness(f ExtractedFields) int {
	present := 0
	for _, v := range f.all() {
		if v != nil && *v != "" {
			present++
		}
	}
	return int(math.Round(float64(present) / 6 * 100))
}
