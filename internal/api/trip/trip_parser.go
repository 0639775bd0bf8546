package trip

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/tripforge/tripforge-api/internal/types"
)

// NormalizationErrorKind classifies why raw model output could not be turned
// into an Itinerary.
type NormalizationErrorKind string

const (
	// MalformedOutput: no parseable JSON object anywhere in the text.
	MalformedOutput NormalizationErrorKind = "malformed_output"
	// IncompleteSchema: valid JSON, but the required fields are missing or
	// have the wrong shape.
	IncompleteSchema NormalizationErrorKind = "incomplete_schema"
)

// NormalizationError is recovered by the orchestrator with a fallback
// itinerary; it is never surfaced to the HTTP caller.
type NormalizationError struct {
	Kind NormalizationErrorKind
	Err  error
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("normalization failed (%s): %v", e.Kind, e.Err)
}

func (e *NormalizationError) Unwrap() error { return e.Err }

var (
	fencedJSONRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	fencedRe     = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

// ParseItinerary coerces free-form model output into a validated Itinerary.
// The model is asked for pure JSON but routinely wraps it in commentary or
// code fences anyway, so extraction is deliberately forgiving: fenced block
// first, then the outermost brace pair, then a control-character sweep.
func ParseItinerary(raw string) (*types.Itinerary, error) {
	jsonStr := raw
	if m := fencedJSONRe.FindStringSubmatch(raw); m != nil {
		jsonStr = m[1]
	} else if m := fencedRe.FindStringSubmatch(raw); m != nil {
		jsonStr = m[1]
	}

	first := strings.Index(jsonStr, "{")
	last := strings.LastIndex(jsonStr, "}")
	if first != -1 && last != -1 && first < last {
		jsonStr = jsonStr[first : last+1]
	}

	jsonStr = stripControlChars(strings.TrimSpace(jsonStr))

	// Parse into an untyped tree first: the model's output is never trusted
	// to already satisfy the schema.
	var tree map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &tree); err != nil {
		return nil, &NormalizationError{Kind: MalformedOutput, Err: err}
	}

	title, _ := tree["title"].(string)
	if strings.TrimSpace(title) == "" {
		return nil, &NormalizationError{Kind: IncompleteSchema, Err: fmt.Errorf("missing or empty title")}
	}
	dests, ok := tree["destinations"].([]any)
	if !ok || len(dests) == 0 {
		return nil, &NormalizationError{Kind: IncompleteSchema, Err: fmt.Errorf("missing or empty destinations")}
	}

	// Project the tree into the strict type. A shape mismatch at this point
	// is a schema problem, not a parse problem.
	buf, err := json.Marshal(tree)
	if err != nil {
		return nil, &NormalizationError{Kind: IncompleteSchema, Err: err}
	}
	var itinerary types.Itinerary
	if err := json.Unmarshal(buf, &itinerary); err != nil {
		return nil, &NormalizationError{Kind: IncompleteSchema, Err: err}
	}

	return &itinerary, nil
}

// stripControlChars removes non-printable bytes the model sometimes leaks
// into its output, which would otherwise break the JSON decoder.
func stripControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r <= 0x1F || (r >= 0x7F && r <= 0x9F) {
			return -1
		}
		return r
	}, s)
}
