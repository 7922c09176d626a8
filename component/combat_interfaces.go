package component

// Damageable is implemented by every combatant the resolver can hit.
type Damageable interface {
	Body() *Entity
	IsDefeated() bool
	MarkDefeated()
}

var (
	_ Damageable = (*Player)(nil)
	_ Damageable = (*Monster)(nil)
	_ Damageable = (*Boss)(nil)
)
