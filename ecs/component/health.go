package component

// Health is a character's hit points. Current only decreases outside of an
// explicit reset.
type Health struct {
	Current int
	Max     int
}

var HealthComponent = NewComponent[Health]()

// Fill returns the 0..1 display fill for health-bar sinks.
func (h *Health) Fill() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	f := float64(h.Current) / float64(h.Max)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// ApplyDamage runs the damage model against a character: a character that
// is dead or mid-hurt-animation is damage-immune; otherwise health drops
// (clamped at zero) and the character transitions to Hurt, the mandatory
// hit-reaction waypoint between damage and Dead. Reports whether damage
// was applied.
func ApplyDamage(c *Character, h *Health, amount int) bool {
	if c == nil || h == nil {
		return false
	}
	if c.Dead || c.State == StateDead || c.State == StateHurt {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	c.SetState(StateHurt)
	return true
}
