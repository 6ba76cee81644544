package model

import (
	"errors"
	"testing"
)

func TestNormalizeDefaults(t *testing.T) {
	q, err := SearchRequest{Query: "ransomware outbreak"}.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.MatchThreshold != 0.7 || q.MatchCount != 10 {
		t.Fatalf("expected defaults 0.7/10, got %v/%v", q.MatchThreshold, q.MatchCount)
	}
	if q.Text != "ransomware outbreak" {
		t.Fatalf("query text changed: %q", q.Text)
	}
}

func TestNormalizeExplicitValues(t *testing.T) {
	threshold := 0.5
	count := 5
	q, err := SearchRequest{Query: "q", MatchThreshold: &threshold, MatchCount: &count}.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.MatchThreshold != 0.5 || q.MatchCount != 5 {
		t.Fatalf("explicit values not applied: %v/%v", q.MatchThreshold, q.MatchCount)
	}
}

func TestNormalizeMissingQuery(t *testing.T) {
	_, err := SearchRequest{}.Normalize()
	if !errors.Is(err, ErrQueryRequired) {
		t.Fatalf("expected ErrQueryRequired, got %v", err)
	}
}
