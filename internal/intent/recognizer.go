package intent

import (
	"strings"

	"github.com/ewasteheroes/carbobot/internal/domain"
)

const (
	keywordWeight = 0.6
	patternWeight = 0.3

	// minConfidence is the recognition threshold; anything below it falls
	// back to the GENERAL intent.
	minConfidence = 0.3

	// fallbackConfidence is fixed regardless of how close the best score
	// came to the threshold.
	fallbackConfidence = 0.5

	// GeneralIntent is the fallback intent for unrecognized messages.
	GeneralIntent = "GENERAL"
)

// Recognizer scores messages against an ordered intent catalog.
type Recognizer struct {
	catalog []Intent
}

// NewRecognizer creates a recognizer over the given catalog. Catalog order
// decides ties, so the slice is used as-is.
func NewRecognizer(catalog []Intent) *Recognizer {
	return &Recognizer{catalog: catalog}
}

// Recognize classifies a message. It is total: every input yields a result,
// falling back to GENERAL when nothing scores above the threshold.
func (r *Recognizer) Recognize(message string) domain.RecognitionResult {
	normalized := strings.ToLower(strings.TrimSpace(message))

	best := -1.0
	bestIdx := -1
	for i, in := range r.catalog {
		score := scoreIntent(in, message, normalized)
		if score > best {
			best = score
			bestIdx = i
		}
	}

	if bestIdx < 0 || best < minConfidence {
		return domain.RecognitionResult{
			Intent:     GeneralIntent,
			Confidence: fallbackConfidence,
			Action:     domain.ActionChat,
		}
	}

	return domain.RecognitionResult{
		Intent:     r.catalog[bestIdx].Name,
		Confidence: best,
		Action:     r.catalog[bestIdx].Action,
	}
}

// scoreIntent computes the additive keyword/pattern score. Keywords match as
// substrings of the normalized message and contribute proportionally to the
// intent's keyword count; a single pattern hit on the original message adds
// a flat weight.
func scoreIntent(in Intent, original, normalized string) float64 {
	score := 0.0

	if len(in.Keywords) > 0 {
		matches := 0
		for _, kw := range in.Keywords {
			if strings.Contains(normalized, strings.ToLower(kw)) {
				matches++
			}
		}
		if matches > 0 {
			score += float64(matches) / float64(len(in.Keywords)) * keywordWeight
		}
	}

	for _, p := range in.Patterns {
		if p.MatchString(original) {
			score += patternWeight
			break
		}
	}

	return score
}
