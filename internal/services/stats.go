package services

import (
	"math"
	"sort"
	"time"

	"quizzy-backend/internal/models"
)

// Statistics over results and questions. Every function here is read-only
// and tolerant of dirty historical data: malformed records degrade to
// zero/empty defaults instead of failing a dashboard.

type ActivityItem struct {
	Type      string `json:"type"`
	User      string `json:"user"`
	Score     int    `json:"score"`
	Timestamp int64  `json:"timestamp"`
}

type TrendPoint struct {
	Date  string `json:"date"` // ISO-8601 calendar date, no time component
	Score int    `json:"score"`
}

// PerformanceTrend carries best-effort trend data. Degraded is set when the
// computation failed internally and the points were suppressed, so callers
// can tell "no data" apart from "computation failed".
type PerformanceTrend struct {
	Points   []TrendPoint `json:"points"`
	Degraded bool         `json:"-"`
}

type ResultStats struct {
	TotalAttempts  int             `json:"totalAttempts"`
	AverageScore   float64         `json:"averageScore"`
	HighestScore   int             `json:"highestScore"`
	LowestScore    int             `json:"lowestScore"`
	RecentAttempts []models.Result `json:"recentAttempts"`
	CompletionRate float64         `json:"completionRate"`
}

type QuestionStats struct {
	QuestionID          string  `json:"questionId"`
	Question            string  `json:"question"`
	Attempts            int     `json:"attempts"`
	CorrectCount        int     `json:"correctCount"`
	Accuracy            float64 `json:"accuracy"`
	AverageResponseTime int     `json:"averageResponseTime"` // seconds, rounded
}

// AverageScore is the arithmetic mean of score over all results, zero when
// there are none.
func AverageScore(results []models.Result) float64 {
	if len(results) == 0 {
		return 0
	}
	sum := 0
	for _, r := range results {
		sum += r.Score
	}
	return float64(sum) / float64(len(results))
}

// CompletionRate is the percentage of results marked completed, zero when
// there are none.
func CompletionRate(results []models.Result) float64 {
	if len(results) == 0 {
		return 0
	}
	completed := 0
	for _, r := range results {
		if r.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(results)) * 100
}

// RecentActivity returns the five most recent results, newest first,
// projected into dashboard activity items.
func RecentActivity(results []models.Result) []ActivityItem {
	sorted := make([]models.Result, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp > sorted[j].Timestamp
	})
	if len(sorted) > 5 {
		sorted = sorted[:5]
	}

	items := make([]ActivityItem, 0, len(sorted))
	for _, r := range sorted {
		items = append(items, ActivityItem{
			Type:      "quiz_completion",
			User:      r.StudentName,
			Score:     r.Score,
			Timestamp: r.Timestamp,
		})
	}
	return items
}

// ComputePerformanceTrend returns up to the seven most recent scores as
// calendar-dated points, newest first. Results without a usable timestamp
// are skipped. Trend data is non-critical: any internal failure yields an
// empty, degraded trend instead of an error.
func ComputePerformanceTrend(results []models.Result) (trend PerformanceTrend) {
	trend.Points = []TrendPoint{}

	defer func() {
		if r := recover(); r != nil {
			trend = PerformanceTrend{Points: []TrendPoint{}, Degraded: true}
		}
	}()

	dated := make([]models.Result, 0, len(results))
	for _, r := range results {
		if r.Timestamp > 0 {
			dated = append(dated, r)
		}
	}
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].Timestamp > dated[j].Timestamp
	})
	if len(dated) > 7 {
		dated = dated[:7]
	}

	for _, r := range dated {
		trend.Points = append(trend.Points, TrendPoint{
			Date:  time.UnixMilli(r.Timestamp).UTC().Format("2006-01-02"),
			Score: r.Score,
		})
	}
	return trend
}

// ComputeResultStats aggregates result-level metrics. Highest and lowest
// default to zero over an empty set; recent attempts keep insertion order.
func ComputeResultStats(results []models.Result) ResultStats {
	stats := ResultStats{
		TotalAttempts:  len(results),
		AverageScore:   AverageScore(results),
		CompletionRate: CompletionRate(results),
		RecentAttempts: []models.Result{},
	}

	for i, r := range results {
		if i == 0 || r.Score > stats.HighestScore {
			stats.HighestScore = r.Score
		}
		if i == 0 || r.Score < stats.LowestScore {
			stats.LowestScore = r.Score
		}
	}

	start := 0
	if len(results) > 5 {
		start = len(results) - 5
	}
	stats.RecentAttempts = append(stats.RecentAttempts, results[start:]...)
	return stats
}

// ComputeQuestionStats builds per-question accuracy and timing. A result
// counts as an attempt of a question when its answer list references the
// question's id; average response time only considers positive samples.
func ComputeQuestionStats(questions []models.Question, results []models.Result) []QuestionStats {
	stats := make([]QuestionStats, 0, len(questions))

	for _, q := range questions {
		qs := QuestionStats{QuestionID: q.ID, Question: q.Question}

		timeSum := 0
		timeSamples := 0
		for _, r := range results {
			attempted := false
			correct := false
			for _, a := range r.Answers {
				if a.QuestionID != q.ID {
					continue
				}
				attempted = true
				if a.Correct {
					correct = true
				}
				if a.TimeSpent > 0 {
					timeSum += a.TimeSpent
					timeSamples++
				}
			}
			if attempted {
				qs.Attempts++
				if correct {
					qs.CorrectCount++
				}
			}
		}

		if qs.Attempts > 0 {
			qs.Accuracy = float64(qs.CorrectCount) / float64(qs.Attempts) * 100
		}
		if timeSamples > 0 {
			qs.AverageResponseTime = int(math.Round(float64(timeSum) / float64(timeSamples)))
		}
		stats = append(stats, qs)
	}
	return stats
}
