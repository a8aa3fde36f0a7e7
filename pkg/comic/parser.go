package comic

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Greedy on purpose: first '[' through last ']'
var arraySpanPattern = regexp.MustCompile(`(?s)\[.*\]`)

type Panel struct {
	SceneDescription string  `json:"sceneDescription"`
	Text             string  `json:"text"`
	ImageUrl         *string `json:"imageUrl"`
}

// ParseError reports that a model response did not contain a usable panel array.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid AI response format: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid AI response format: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParsePanels extracts the panel array from free-form model output.
// The bracket span is tried first; the whole response is parsed only when no span exists.
func ParsePanels(raw string) ([]Panel, error) {
	candidate := raw
	source := "response"
	if span := arraySpanPattern.FindString(raw); span != "" {
		candidate = span
		source = "bracket span"
	}

	// Pointers so a null element is distinguishable from an empty object
	var decoded []*Panel
	if err := json.Unmarshal([]byte(candidate), &decoded); err != nil {
		return nil, &ParseError{Reason: "could not parse " + source, Err: err}
	}

	if len(decoded) == 0 {
		return nil, &ParseError{Reason: "no panels returned"}
	}

	panels := make([]Panel, len(decoded))
	for i, p := range decoded {
		if p == nil {
			return nil, &ParseError{Reason: fmt.Sprintf("panel %d is null", i+1)}
		}
		if strings.TrimSpace(p.SceneDescription) == "" {
			return nil, &ParseError{Reason: fmt.Sprintf("panel %d has no scene description", i+1)}
		}
		panels[i] = Panel{
			SceneDescription: p.SceneDescription,
			Text:             p.Text,
		}
	}

	return panels, nil
}
