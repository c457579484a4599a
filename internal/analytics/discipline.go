package analytics

import (
	"math"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/models"
)

// DisciplineScore combines a daily tracker's checklist and ratings
// into a 0-10 integer. Each checked checklist item is worth one point
// (up to 5); the four 0-10 ratings contribute the remaining 5 points
// proportionally. The score is monotonic in every input: checking a
// box or raising a rating never lowers it.
func DisciplineScore(tracker models.DailyTracker) int {
	checked := 0
	for _, on := range tracker.Checklist() {
		if on {
			checked++
		}
	}

	ratingSum := 0
	for _, r := range tracker.Ratings() {
		ratingSum += models.ClampInt(r, constants.RatingMin, constants.RatingMax)
	}
	maxRatingSum := len(tracker.Ratings()) * constants.RatingMax

	raw := float64(checked) + float64(ratingSum)*float64(constants.DisciplineScoreMax-constants.TrackerChecklistSize)/float64(maxRatingSum)
	score := int(math.Round(raw))
	return models.ClampInt(score, 0, constants.DisciplineScoreMax)
}
