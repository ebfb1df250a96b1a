// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

// Package sentiment wraps the VADER sentiment model (govader) behind the
// two-score contract the enrichment pipeline needs: a polarity in [-1, 1]
// and a subjectivity in [0, 1].
//
// The model itself is treated as an opaque scoring capability. Polarity is
// VADER's normalized compound score. VADER has no native subjectivity
// notion, so subjectivity is defined as the non-neutral proportion of the
// text (positive + negative valence mass), which is bounded to [0, 1] by
// construction and degrades to 0 for purely factual text.
package sentiment

import "github.com/jonreiter/govader"

// Scores holds the two sentiment dimensions attached to each tweet.
type Scores struct {
	// Polarity is in [-1, 1]: negative values mean negative sentiment,
	// magnitude means strength.
	Polarity float64

	// Subjectivity is in [0, 1]: 0 is purely factual, 1 is pure opinion.
	Subjectivity float64
}

// Analyzer scores text. It is safe for concurrent use after construction;
// the underlying lexicon is read-only.
type Analyzer struct {
	sia *govader.SentimentIntensityAnalyzer
}

// NewAnalyzer constructs an analyzer with the embedded VADER lexicon.
func NewAnalyzer() *Analyzer {
	return &Analyzer{sia: govader.NewSentimentIntensityAnalyzer()}
}

// Score computes polarity and subjectivity for one text input. Empty text
// scores as neutral and fully objective.
func (a *Analyzer) Score(text string) Scores {
	if text == "" {
		return Scores{}
	}

	s := a.sia.PolarityScores(text)

	return Scores{
		Polarity:     clamp(s.Compound, -1, 1),
		Subjectivity: clamp(s.Positive+s.Negative, 0, 1),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
