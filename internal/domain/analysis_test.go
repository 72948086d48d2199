package domain

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestAIAnalysis_JSONRoundTrip(t *testing.T) {
	original := AIAnalysis{
		GeneratedAt: time.Date(2024, 3, 15, 9, 30, 12, 345678000, time.UTC),
		Working: []string{
			"Consistent water intake",
			"Exercise streak of 5 days",
		},
		Attention: []string{
			"Protein below target most days",
			"Sleep trending down",
		},
		Recommendations: []string{
			"Add a protein source to breakfast",
			"Keep a fixed bedtime on weekdays",
			"Take a short walk after lunch",
		},
	}

	payload, err := json.Marshal(&original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded AIAnalysis
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if !decoded.GeneratedAt.Equal(original.GeneratedAt) {
		t.Errorf("GeneratedAt = %v, want %v", decoded.GeneratedAt, original.GeneratedAt)
	}
	if !reflect.DeepEqual(decoded.Working, original.Working) {
		t.Errorf("Working = %v, want %v", decoded.Working, original.Working)
	}
	if !reflect.DeepEqual(decoded.Attention, original.Attention) {
		t.Errorf("Attention = %v, want %v", decoded.Attention, original.Attention)
	}
	if !reflect.DeepEqual(decoded.Recommendations, original.Recommendations) {
		t.Errorf("Recommendations = %v, want %v", decoded.Recommendations, original.Recommendations)
	}
}
