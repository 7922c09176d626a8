package system

import "github.com/milk9111/terra/component"

// Sound names a cue the audio layer can play.
type Sound string

const (
	SoundAttack  Sound = "attack"
	SoundHurt    Sound = "hurt"
	SoundJump    Sound = "jump"
	SoundSpecial Sound = "special"
	SoundDeath   Sound = "death"
	SoundIntro   Sound = "intro"
)

// Event is a sound cue raised during a tick. Boss is empty for hero sounds.
type Event struct {
	Sound Sound
	Boss  component.BossKind
}

// HeroEvent returns a cue voiced by the player.
func HeroEvent(s Sound) Event {
	return Event{Sound: s}
}

// BossEvent returns a cue voiced by the given boss.
func BossEvent(kind component.BossKind, s Sound) Event {
	return Event{Sound: s, Boss: kind}
}

// FromBoss reports whether the cue belongs to a boss.
func (e Event) FromBoss() bool {
	return e.Boss != ""
}
