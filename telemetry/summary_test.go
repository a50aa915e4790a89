package telemetry

import (
	"math"
	"testing"
)

// TestSummarize checks the batch statistics on a known spread.
func TestSummarize(t *testing.T) {
	recs := []RunRecord{
		{Frames: 100, DistanceM: 10, Score: 5},
		{Frames: 200, DistanceM: 20, Score: 10},
		{Frames: 300, DistanceM: 30, Score: 15},
		{Frames: 400, DistanceM: 40, Score: 20},
	}

	s := Summarize(recs)

	if s.Runs != 4 {
		t.Fatalf("Runs = %d, want 4", s.Runs)
	}
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"distance mean", s.DistanceMean, 25},
		{"distance p50", s.DistanceP50, 20},
		{"distance max", s.DistanceMax, 40},
		{"distance sd", s.DistanceStd, math.Sqrt(500.0 / 3.0)},
		{"score mean", s.ScoreMean, 12.5},
		{"frames mean", s.FramesMean, 250},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

// TestSummarizeDegenerate covers the empty batch and the single run,
// where a standard deviation has no meaning.
func TestSummarizeDegenerate(t *testing.T) {
	if s := Summarize(nil); s.Runs != 0 {
		t.Fatalf("empty batch Runs = %d, want 0", s.Runs)
	}

	s := Summarize([]RunRecord{{Frames: 100, DistanceM: 10, Score: 5}})
	if s.Runs != 1 || s.DistanceStd != 0 {
		t.Fatalf("single run Runs = %d sd = %v, want 1 and 0", s.Runs, s.DistanceStd)
	}
	if s.DistanceMean != 10 || s.DistanceMax != 10 {
		t.Fatalf("single run mean %v max %v, want 10 and 10", s.DistanceMean, s.DistanceMax)
	}
}
