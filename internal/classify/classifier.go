// Package classify turns a waste-item photo into a structured classification
// by calling an external vision-capable chat-completion model.
package classify

import (
	"context"

	"github.com/ecosort/ecosort/internal/model"
)

// Source tags how a classification was produced.
type Source string

const (
	// SourceModel means the model returned well-formed structured JSON.
	SourceModel Source = "model"
	// SourceHeuristic means the model answered free text and the waste type
	// was recovered by a keyword scan.
	SourceHeuristic Source = "heuristic"
	// SourceFallback means the call itself failed and the fixed default
	// payload was substituted.
	SourceFallback Source = "fallback"
)

// Result is a classification payload plus the tier that produced it.
type Result struct {
	Classification model.Classification `json:"classification"`
	Source         Source               `json:"source"`
}

// Classifier produces a classification for an image. Implementations degrade
// internally — a Result always comes back, so classification never blocks
// item creation.
type Classifier interface {
	Classify(ctx context.Context, imageURL, userDescription string) *Result
}

// DefaultResult is the all-purpose payload used when the external call fails.
func DefaultResult() *Result {
	return &Result{
		Source: SourceFallback,
		Classification: model.Classification{
			WasteType:           model.WasteOther,
			Description:         "Unable to analyze image automatically",
			RecyclingTips:       "Please check local recycling guidelines",
			EnvironmentalImpact: "Proper disposal is important for the environment",
			ReuseIdeas:          "Consider reusing before disposing",
		},
	}
}
