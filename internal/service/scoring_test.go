package service

import (
	"reflect"
	"testing"

	"tcm-quiz-backend/internal/domain/entity"
)

func TestDominantBodyType(t *testing.T) {
	tests := []struct {
		name       string
		labels     []string
		wantLabel  string
		wantCounts map[string]int
	}{
		{
			name:      "clear majority",
			labels:    []string{"qi_deficient", "qi_deficient", "damp_heat"},
			wantLabel: "qi_deficient",
			wantCounts: map[string]int{
				"qi_deficient": 2,
				"damp_heat":    1,
			},
		},
		{
			name:      "tie goes to first label reaching the max",
			labels:    []string{"yin_deficient", "yang_deficient"},
			wantLabel: "yin_deficient",
			wantCounts: map[string]int{
				"yin_deficient":  1,
				"yang_deficient": 1,
			},
		},
		{
			name:      "later label overtakes an early leader",
			labels:    []string{"balanced", "damp_heat", "damp_heat"},
			wantLabel: "damp_heat",
			wantCounts: map[string]int{
				"balanced":  1,
				"damp_heat": 2,
			},
		},
		{
			name:       "no labels falls back to unsure",
			labels:     nil,
			wantLabel:  entity.BodyTypeUnsure,
			wantCounts: map[string]int{},
		},
		{
			name:       "empty labels are ignored",
			labels:     []string{"", "", ""},
			wantLabel:  entity.BodyTypeUnsure,
			wantCounts: map[string]int{},
		},
		{
			name:      "empty labels do not disturb counting",
			labels:    []string{"", "liver_qi_stagnation", ""},
			wantLabel: "liver_qi_stagnation",
			wantCounts: map[string]int{
				"liver_qi_stagnation": 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotLabel, gotCounts := DominantBodyType(tt.labels)
			if gotLabel != tt.wantLabel {
				t.Errorf("DominantBodyType() label = %q, want %q", gotLabel, tt.wantLabel)
			}
			if !reflect.DeepEqual(gotCounts, tt.wantCounts) {
				t.Errorf("DominantBodyType() counts = %v, want %v", gotCounts, tt.wantCounts)
			}
		})
	}
}
