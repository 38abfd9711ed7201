package service

import (
	"context"
	"errors"
	"testing"

	"github.com/somnolog/somnolog/internal/domain"
)

func TestGridDimension_Values(t *testing.T) {
	tests := []struct {
		name  string
		dim   GridDimension
		count int
		first float64
		last  float64
	}{
		{"start hour sweep", GridDimension{Min: 21, Max: 25, Step: 0.25}, 17, 21, 25},
		{"duration sweep", GridDimension{Min: 7, Max: 9, Step: 0.25}, 9, 7, 9},
		{"day sweep", GridDimension{Min: 0, Max: 6, Step: 1}, 7, 0, 6},
		{"half hour sweep", GridDimension{Min: 6, Max: 9, Step: 0.5}, 7, 6, 9},
		{"single value", GridDimension{Min: 5, Max: 5, Step: 1}, 1, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := tt.dim.Values()
			if len(values) != tt.count {
				t.Fatalf("len(Values()) = %d, want %d", len(values), tt.count)
			}
			if values[0] != tt.first {
				t.Errorf("first value = %v, want %v", values[0], tt.first)
			}
			if values[len(values)-1] != tt.last {
				t.Errorf("last value = %v, want %v", values[len(values)-1], tt.last)
			}
		})
	}
}

func TestGridSearch_VisitsFullProductLastDimensionFastest(t *testing.T) {
	dims := []GridDimension{
		{Min: 0, Max: 1, Step: 1},
		{Min: 0, Max: 2, Step: 1},
	}

	var visited [][]float64
	score := func(ctx context.Context, point []float64) (float64, bool) {
		visited = append(visited, append([]float64(nil), point...))
		return 1, true
	}

	if _, _, err := gridSearch(context.Background(), dims, Maximize, 0, score); err != nil {
		t.Fatalf("gridSearch() error = %v", err)
	}

	want := [][]float64{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
	}
	if len(visited) != len(want) {
		t.Fatalf("visited %d points, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i][0] != want[i][0] || visited[i][1] != want[i][1] {
			t.Errorf("visit %d = %v, want %v", i, visited[i], want[i])
		}
	}
}

func TestGridSearch_MinimizeStrictComparison(t *testing.T) {
	dims := []GridDimension{{Min: 0, Max: 4, Step: 1}}

	// Values 0..4 score 5,3,3,2,2: the first point reaching each new
	// minimum must win, so the result is point 3, not point 4.
	scores := []float64{5, 3, 3, 2, 2}
	score := func(ctx context.Context, point []float64) (float64, bool) {
		return scores[int(point[0])], true
	}

	best, bestScore, err := gridSearch(context.Background(), dims, Minimize, 10, score)
	if err != nil {
		t.Fatalf("gridSearch() error = %v", err)
	}
	if best[0] != 3 {
		t.Errorf("best point = %v, want 3", best[0])
	}
	if bestScore != 2 {
		t.Errorf("best score = %v, want 2", bestScore)
	}
}

func TestGridSearch_SentinelNeverBeaten(t *testing.T) {
	dims := []GridDimension{{Min: 0, Max: 4, Step: 1}}

	// Minimizing with sentinel 10: every candidate scores exactly 10,
	// which does not improve on the sentinel.
	score := func(ctx context.Context, point []float64) (float64, bool) {
		return 10, true
	}

	if _, _, err := gridSearch(context.Background(), dims, Minimize, 10, score); !errors.Is(err, domain.ErrNoRecommendation) {
		t.Errorf("gridSearch() error = %v, want %v", err, domain.ErrNoRecommendation)
	}
}
