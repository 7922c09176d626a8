package component

// EffectKind is the visual flavour of a transient effect.
type EffectKind string

const (
	EffectHit       EffectKind = "hit"
	EffectSpecial   EffectKind = "special"
	EffectExplosion EffectKind = "explosion"
	EffectGlitch    EffectKind = "glitch"
)

// Effect is a transient expanding ring. It never affects simulation state.
type Effect struct {
	ID        string     `yaml:"id"`
	Kind      EffectKind `yaml:"kind"`
	X         float64    `yaml:"x"`
	Y         float64    `yaml:"y"`
	Radius    float64    `yaml:"radius"`
	MaxRadius float64    `yaml:"max_radius"`
	Color     string     `yaml:"color"`
	Duration  float64    `yaml:"duration"`
	Elapsed   float64    `yaml:"elapsed"`
	Damage    int        `yaml:"damage,omitempty"`
}

// Advance moves the effect forward by dt and reports whether it is still alive.
func (e *Effect) Advance(dt float64) bool {
	e.Elapsed += dt
	if e.Duration > 0 {
		e.Radius = e.Elapsed / e.Duration * e.MaxRadius
	}
	return e.Elapsed < e.Duration
}

// EffectColors are the default tints per kind.
var EffectColors = map[EffectKind]string{
	EffectHit:       "#ffffff",
	EffectSpecial:   "#8b6914",
	EffectExplosion: "#ff4444",
	EffectGlitch:    "#00ff00",
}
