package companion

import (
	"testing"

	"claimscope/internal/domain/entities"
)

func TestMatches(t *testing.T) {
	ctx := DamageContext{DamageType: "water", Surface: "wall", Severity: "moderate", RoomType: "kitchen", ZoneType: "interior"}

	tests := []struct {
		name string
		cond *entities.ScopeConditions
		want bool
	}{
		{"nil conditions are a wildcard", nil, true},
		{"empty conditions are a wildcard", &entities.ScopeConditions{}, true},
		{"single key match", &entities.ScopeConditions{DamageTypes: []string{"water"}}, true},
		{"or within a key", &entities.ScopeConditions{DamageTypes: []string{"fire", "water"}}, true},
		{"and across keys", &entities.ScopeConditions{DamageTypes: []string{"water"}, Surfaces: []string{"wall"}}, true},
		{"one failing key fails the match", &entities.ScopeConditions{DamageTypes: []string{"water"}, Surfaces: []string{"ceiling"}}, false},
		{"damage type mismatch", &entities.ScopeConditions{DamageTypes: []string{"fire"}}, false},
		{"zone type mismatch", &entities.ScopeConditions{ZoneTypes: []string{"exterior"}}, false},
		{"room type match", &entities.ScopeConditions{RoomTypes: []string{"kitchen", "bathroom"}}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Matches(tc.cond, ctx); got != tc.want {
				t.Errorf("Matches(%+v) = %v, want %v", tc.cond, got, tc.want)
			}
		})
	}
}
