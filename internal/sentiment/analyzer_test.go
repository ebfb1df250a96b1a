// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

package sentiment

import "testing"

func TestScoreBounds(t *testing.T) {
	a := NewAnalyzer()

	texts := []string{
		"I love this, absolutely wonderful!",
		"This is terrible, I hate everything about it.",
		"The meeting is at 3pm in room 204.",
		"Dry fields again #drought #farming cc @noaa",
		"ok",
	}

	for _, text := range texts {
		s := a.Score(text)
		if s.Polarity < -1 || s.Polarity > 1 {
			t.Errorf("polarity out of range for %q: %f", text, s.Polarity)
		}
		if s.Subjectivity < 0 || s.Subjectivity > 1 {
			t.Errorf("subjectivity out of range for %q: %f", text, s.Subjectivity)
		}
	}
}

func TestScoreDirection(t *testing.T) {
	a := NewAnalyzer()

	pos := a.Score("I love this, absolutely wonderful!")
	neg := a.Score("This is terrible, I hate everything about it.")

	if pos.Polarity <= 0 {
		t.Errorf("clearly positive text scored %f", pos.Polarity)
	}
	if neg.Polarity >= 0 {
		t.Errorf("clearly negative text scored %f", neg.Polarity)
	}
}

func TestScoreEmptyText(t *testing.T) {
	a := NewAnalyzer()

	s := a.Score("")
	if s.Polarity != 0 || s.Subjectivity != 0 {
		t.Errorf("empty text should be neutral and objective, got %+v", s)
	}
}

func TestScoreDeterministic(t *testing.T) {
	a := NewAnalyzer()

	const text = "Dry fields again #drought #farming cc @noaa"
	first := a.Score(text)
	for i := 0; i < 5; i++ {
		if got := a.Score(text); got != first {
			t.Fatalf("scoring is not deterministic: %+v vs %+v", got, first)
		}
	}
}
