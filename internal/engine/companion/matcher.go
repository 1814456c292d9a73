package companion

import "claimscope/internal/domain/entities"

// DamageContext is the observation a scoping pass is evaluated against.

type DamageContext struct {
	DamageType     string
	Surface        string
	Severity       string
	RoomType       string
	ZoneType       string
	AffectedAreaSF float64
}

// Matches evaluates a catalog item's declarative scope conditions against a
// damage context: AND across populated predicate keys, OR within each key's
// allowed list. An absent key is a wildcard. A nil predicate matches nothing
// as a primary but is a wildcard for companion candidates; callers decide
// which reading they need, this function only answers "do the populated keys
// all match".
func Matches(c *entities.ScopeConditions, ctx DamageContext) bool {
	if c == nil {
		return true
	}
	if !oneOf(ctx.DamageType, c.DamageTypes) {
		return false
	}
	if !oneOf(ctx.Surface, c.Surfaces) {
		return false
	}
	if !oneOf(ctx.Severity, c.Severities) {
		return false
	}
	if !oneOf(ctx.RoomType, c.RoomTypes) {
		return false
	}
	if !oneOf(ctx.ZoneType, c.ZoneTypes) {
		return false
	}
	return true
}

func oneOf(v string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}
