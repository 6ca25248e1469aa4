package charts

import (
	"math"
	"reflect"
	"testing"

	"github.com/yiyuanlee/EPL-shot-maps/pkg/models"
)

func shot(player, outcome string, xg float64) models.Shot {
	return models.Shot{Player: player, Team: "T", Outcome: outcome, XG: xg, X: 90, Y: 34}
}

func TestAggregate(t *testing.T) {
	shots := []models.Shot{
		shot("Kane", models.OutcomeGoal, 0.5),
		shot("Kane", models.OutcomeSaved, 0.1),
		shot("Kane", models.OutcomeOffTarget, 0.05),
		shot("Salah", models.OutcomeGoal, 0.7),
		shot("Salah", models.OutcomeGoal, 0.3),
		shot("Son", models.OutcomeBlocked, 0.2),
	}

	stats := Aggregate(shots)
	if len(stats) != 3 {
		t.Fatalf("expected 3 players, got %d", len(stats))
	}

	kane := stats[0]
	if kane.Player != "Kane" || kane.Shots != 3 || kane.Goals != 1 {
		t.Errorf("stats[0] = %+v", kane)
	}
	if math.Abs(kane.TotalXG-0.65) > 1e-9 {
		t.Errorf("TotalXG = %v, want 0.65", kane.TotalXG)
	}
	if got := kane.Conversion(); math.Abs(got-1.0/3.0) > 1e-9 {
		t.Errorf("Conversion = %v", got)
	}

	// Ties on volume break by name.
	if stats[1].Player != "Salah" || stats[2].Player != "Son" {
		t.Errorf("order = %s, %s", stats[1].Player, stats[2].Player)
	}
}

func TestAggregateOrderOnVolumeTie(t *testing.T) {
	shots := []models.Shot{
		shot("Zaha", models.OutcomeSaved, 0.1),
		shot("Alli", models.OutcomeSaved, 0.1),
	}
	stats := Aggregate(shots)
	if stats[0].Player != "Alli" || stats[1].Player != "Zaha" {
		t.Errorf("tie order = %s, %s", stats[0].Player, stats[1].Player)
	}
}

func TestTopShooters(t *testing.T) {
	shots := []models.Shot{
		shot("A", models.OutcomeGoal, 0.2),
		shot("A", models.OutcomeSaved, 0.2),
		shot("B", models.OutcomeGoal, 0.2),
	}
	if got := TopShooters(shots, 1); !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("TopShooters(1) = %v", got)
	}
	if got := TopShooters(shots, 10); len(got) != 2 {
		t.Errorf("TopShooters(10) = %v", got)
	}
	if got := TopShooters(nil, 3); len(got) != 0 {
		t.Errorf("TopShooters(nil) = %v", got)
	}
}

func TestWithMinShots(t *testing.T) {
	stats := []PlayerStats{
		{Player: "A", Shots: 12},
		{Player: "B", Shots: 9},
		{Player: "C", Shots: 10},
	}
	got := withMinShots(stats, 10)
	if len(got) != 2 || got[0].Player != "A" || got[1].Player != "C" {
		t.Errorf("withMinShots = %+v", got)
	}
}

func TestConversionZeroShots(t *testing.T) {
	if got := (PlayerStats{}).Conversion(); got != 0 {
		t.Errorf("Conversion = %v, want 0", got)
	}
}

func TestVmap(t *testing.T) {
	if got := vmap(0.5, 0, 1, 0, 10); math.Abs(got-5) > 1e-9 {
		t.Errorf("vmap = %v, want 5", got)
	}
	if got := vmap(0, 0, 1, 4, 10); math.Abs(got-4) > 1e-9 {
		t.Errorf("vmap = %v, want 4", got)
	}
}
