package pipeline

import (
	"testing"

	"github.com/copgauge/copgauge/internal/model"
)

func TestTopNOrderAndBound(t *testing.T) {
	entities := map[string]model.Entity{
		"go":         {Name: "go", EngagedUsers: 30},
		"python":     {Name: "python", EngagedUsers: 50},
		"typescript": {Name: "typescript", EngagedUsers: 50},
		"rust":       {Name: "rust", EngagedUsers: 10},
		"java":       {Name: "java", EngagedUsers: 20},
		"kotlin":     {Name: "kotlin", EngagedUsers: 5},
	}

	top := TopN(entities, 4)
	if len(top) != 4 {
		t.Fatalf("got %d entities, want 4", len(top))
	}

	want := []string{"python", "typescript", "go", "java"}
	for i, name := range want {
		if top[i].Name != name {
			t.Errorf("top[%d] = %q, want %q", i, top[i].Name, name)
		}
	}
}

func TestTopNDefault(t *testing.T) {
	entities := make(map[string]model.Entity)
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		entities[name] = model.Entity{Name: name, EngagedUsers: 1}
	}

	if got := len(TopN(entities, 0)); got != DefaultTopN {
		t.Errorf("TopN with n=0 returned %d entities, want %d", got, DefaultTopN)
	}
	if got := len(TopN(entities, -3)); got != DefaultTopN {
		t.Errorf("TopN with n=-3 returned %d entities, want %d", got, DefaultTopN)
	}
}

func TestTopNFewerThanN(t *testing.T) {
	entities := map[string]model.Entity{
		"go": {Name: "go", EngagedUsers: 3},
	}
	if got := len(TopN(entities, 5)); got != 1 {
		t.Errorf("got %d entities, want 1", got)
	}
}

func TestRateRounding(t *testing.T) {
	for _, tc := range []struct {
		num, den int64
		want     int
	}{
		{40, 100, 40},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},    // half rounds up
		{1, 200, 1},   // 0.5% rounds up to 1
		{1, 201, 0},   // just under half a percent
		{0, 100, 0},
		{100, 100, 100},
		{0, 0, 0}, // zero denominator, never NaN
		{50, 0, 0},
	} {
		if got := Rate(tc.num, tc.den); got != tc.want {
			t.Errorf("Rate(%d, %d) = %d, want %d", tc.num, tc.den, got, tc.want)
		}
	}
}

func TestAcceptanceRate(t *testing.T) {
	e := model.Entity{Suggestions: 300, Acceptances: 120}
	if got := AcceptanceRate(e); got != 40 {
		t.Errorf("AcceptanceRate = %d, want 40", got)
	}
	if got := AcceptanceRate(model.Entity{}); got != 0 {
		t.Errorf("AcceptanceRate of zero entity = %d, want 0", got)
	}
}

func TestAdoptionRate(t *testing.T) {
	if got := AdoptionRate(30, 40); got != 75 {
		t.Errorf("AdoptionRate(30, 40) = %d, want 75", got)
	}
	if got := AdoptionRate(5, 0); got != 0 {
		t.Errorf("AdoptionRate with no active users = %d, want 0", got)
	}
}
