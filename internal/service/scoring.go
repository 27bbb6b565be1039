package service

import "tcm-quiz-backend/internal/domain/entity"

// DominantBodyType reduces a sequence of body-type labels (one per submitted
// answer, in answer order) to the dominant label and the full histogram.
// Empty labels are ignored, not counted. On a tie the first label to reach
// the maximum count wins, so the earliest answer among tied leaders decides.
// When nothing was counted the fallback label "unsure" is returned.
func DominantBodyType(labels []string) (string, map[string]int) {
	counts := make(map[string]int)

	dominant := ""
	best := 0
	for _, label := range labels {
		if label == "" {
			continue
		}
		counts[label]++
		if counts[label] > best {
			dominant = label
			best = counts[label]
		}
	}

	if dominant == "" {
		return entity.BodyTypeUnsure, counts
	}
	return dominant, counts
}
