package service

import (
	"math"
	"strconv"

	"availio-admin/internal/domain/entity"
)

// RatingSummary is the aggregate view of a rating collection.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// AggregateRatings computes the arithmetic mean of the given scores, rounded
// to one decimal. Non-finite scores are coerced to 0 before averaging rather
// than excluded, so Count always equals len(ratings). An empty input yields
// {0, 0}, never NaN.
func AggregateRatings(ratings []entity.Rating) RatingSummary {
	if len(ratings) == 0 {
		return RatingSummary{}
	}

	var sum float64
	for _, r := range ratings {
		score := r.Score
		if math.IsNaN(score) || math.IsInf(score, 0) {
			score = 0
		}
		sum += score
	}

	avg := sum / float64(len(ratings))
	return RatingSummary{
		Average: math.Round(avg*10) / 10,
		Count:   len(ratings),
	}
}

// Display renders the average to one decimal place, e.g. "4.3". A summary
// with no ratings renders as "0".
func (s RatingSummary) Display() string {
	if s.Count == 0 {
		return "0"
	}
	return strconv.FormatFloat(s.Average, 'f', 1, 64)
}
