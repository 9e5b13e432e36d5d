package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// SavedPlan is the JSON document a workspace is saved to and restored
// from. Field names match the calculator's browser save format so older
// saves load unchanged.
type SavedPlan struct {
	CurrentCGPA   FieldText      `json:"currentCGPA"`
	CreditsEarned FieldText      `json:"creditsEarned"`
	Courses       []CourseImport `json:"courses"`
	LastUpdated   string         `json:"lastUpdated,omitempty"`
}

// CourseImport is one saved course row. Browser saves number their rows
// 1..n, so ID decodes from either a string or a number.
type CourseImport struct {
	ID          FieldText `json:"id,omitempty"`
	CourseCode  string    `json:"courseCode"`
	CreditHours FieldText `json:"creditHours"`
	Grade       string    `json:"grade"`
}

// FieldText is raw form text. It decodes from a JSON string, number or
// null and always encodes as a string.
type FieldText string

func (f *FieldText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FieldText(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("expected string or number, got %s", data)
		}
		if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
			return fmt.Errorf("invalid number %s", data)
		}
		*f = FieldText(n.String())
		return nil
	}
}

// LoadSavedPlan reads and parses a saved-plan JSON file.
func LoadSavedPlan(path string) (*SavedPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSavedPlan(data)
}

func ParseSavedPlan(data []byte) (*SavedPlan, error) {
	var plan SavedPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parsing saved plan: %w", err)
	}
	return &plan, nil
}
