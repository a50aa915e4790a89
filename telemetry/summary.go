package telemetry

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a batch of runs.
type Summary struct {
	Runs         int
	DistanceMean float64
	DistanceStd  float64
	DistanceP50  float64
	DistanceMax  float64
	ScoreMean    float64
	FramesMean   float64
}

// Summarize folds per-run records into batch statistics.
func Summarize(records []RunRecord) Summary {
	s := Summary{Runs: len(records)}
	if len(records) == 0 {
		return s
	}

	dist := make([]float64, len(records))
	score := make([]float64, len(records))
	frames := make([]float64, len(records))
	for i, r := range records {
		dist[i] = r.DistanceM
		score[i] = float64(r.Score)
		frames[i] = float64(r.Frames)
	}

	s.DistanceMean = stat.Mean(dist, nil)
	if len(dist) > 1 {
		s.DistanceStd = stat.StdDev(dist, nil)
	}

	sorted := append([]float64(nil), dist...)
	sort.Float64s(sorted)
	s.DistanceP50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.DistanceMax = sorted[len(sorted)-1]

	s.ScoreMean = stat.Mean(score, nil)
	s.FramesMean = stat.Mean(frames, nil)
	return s
}

func (s Summary) String() string {
	if s.Runs == 0 {
		return "no runs"
	}
	return fmt.Sprintf(
		"runs %d  distance mean %.1fm sd %.1f p50 %.1fm max %.1fm  score mean %.1f  frames mean %.0f",
		s.Runs, s.DistanceMean, s.DistanceStd, s.DistanceP50, s.DistanceMax,
		s.ScoreMean, s.FramesMean)
}
