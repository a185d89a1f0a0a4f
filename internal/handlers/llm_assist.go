package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"credcheck/internal/verify"
)

// FillWithGemini asks Gemini for the fields the rule-based extractor left
// absent. The deterministic extraction always wins; this only fills gaps,
// and any API trouble leaves the input untouched.
func FillWithGemini(ctx context.Context, rawText string, f verify.ExtractedFields) verify.ExtractedFields {
	parsed, err := parseWithGemini(ctx, rawText)
	if err != nil {
		fmt.Println("gemini assist skipped:", err)
		return f
	}
	if f.Name == nil {
		f.Name = parsed["name"]
	}
	if f.RollNo == nil {
		f.RollNo = parsed["roll_no"]
	}
	if f.CertificateID == nil {
		f.CertificateID = parsed["certificate_id"]
	}
	if f.Course == nil {
		f.Course = parsed["course"]
	}
	if f.Marks == nil {
		f.Marks = parsed["marks"]
	}
	if f.IssuedOn == nil {
		f.IssuedOn = parsed["issued_on"]
	}
	return f
}

func parseWithGemini(ctx context.Context, ocrText string) (map[string]*string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("missing GEMINI_API_KEY")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to init Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.0-flash-lite")
	// Ask Gemini to return JSON only
	model.GenerationConfig = genai.GenerationConfig{ResponseMIMEType: "application/json"}

	prompt := `You are an expert data extraction assistant. Extract specific fields from the following raw text of an academic certificate and return the data as clean JSON.

Here are the rules:
1. The required fields are: "name", "roll_no", "certificate_id", "course", "marks", and "issued_on".
2. If a field cannot be found in the text, its value in the JSON must be null.
3. Your entire response must be ONLY the JSON object. Do not include any explanations, apologies, or any text before or after the JSON.
4. Clean the extracted data by removing any unnecessary newline characters or extra whitespace.

Here is the raw text:
"""
[INSERT RAW OCR TEXT HERE]
"""`
	prompt = strings.Replace(prompt, "[INSERT RAW OCR TEXT HERE]", ocrText, 1)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return nil, errors.New("empty response from Gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		} else {
			sb.WriteString(fmt.Sprint(part))
		}
	}
	jsonStr := strings.TrimSpace(sb.String())
	if jsonStr == "" {
		return nil, errors.New("no text in Gemini response")
	}

	// Normalize: strip code fences and extract the first JSON object if needed
	jsonStr = stripCodeFences(jsonStr)
	if candidate, ok := extractFirstJSON(jsonStr); ok {
		jsonStr = candidate
	}

	var tmp map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &tmp); err != nil {
		return nil, fmt.Errorf("failed to parse Gemini JSON: %w", err)
	}

	out := make(map[string]*string, len(tmp))
	for k, v := range tmp {
		if v == nil {
			continue
		}
		s := ""
		switch t := v.(type) {
		case string:
			s = strings.TrimSpace(t)
		default:
			b, _ := json.Marshal(t)
			s = strings.TrimSpace(string(b))
		}
		if s != "" {
			val := s
			out[k] = &val
		}
	}
	return out, nil
}

// stripCodeFences removes surrounding Markdown code fences like ```json ... ```.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
		if i := strings.IndexByte(s, '\n'); i != -1 {
			first := strings.TrimSpace(s[:i])
			if len(first) > 0 && len(first) < 20 { // likely a language tag like json
				s = s[i+1:]
			}
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}

// extractFirstJSON attempts to extract the first balanced JSON object or array.
func extractFirstJSON(s string) (string, bool) {
	if obj, ok := extractBalanced(s, '{', '}'); ok {
		return obj, true
	}
	if arr, ok := extractBalanced(s, '[', ']'); ok {
		return arr, true
	}
	return "", false
}

func extractBalanced(s string, open, close rune) (string, bool) {
	start := -1
	depth := 0
	for i, r := range s {
		if r == open {
			if depth == 0 {
				start = i
			}
			depth++
		} else if r == close {
			if depth > 0 {
				depth--
				if depth == 0 && start != -1 {
					return s[start : i+1], true
				}
			}
		}
	}
	return "", false
}
