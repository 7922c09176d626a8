package component

// Key is a logical game input, independent of the device that produced it.
type Key string

const (
	KeyLeft    Key = "left"
	KeyRight   Key = "right"
	KeyUp      Key = "up"
	KeySpace   Key = "space"
	KeyAttack  Key = "attack"
	KeySpecial Key = "special"
)

// Keys lists every logical key.
var Keys = []Key{KeyLeft, KeyRight, KeyUp, KeySpace, KeyAttack, KeySpecial}

// KeySet is the set of keys currently held down. Discrete commands are
// removed with Consume so that holding a key fires it once.
type KeySet struct {
	held map[Key]bool
}

func NewKeySet(keys ...Key) *KeySet {
	s := &KeySet{held: make(map[Key]bool, len(keys))}
	for _, k := range keys {
		s.held[k] = true
	}
	return s
}

func (s *KeySet) Add(k Key) {
	if s == nil {
		return
	}
	if s.held == nil {
		s.held = map[Key]bool{}
	}
	s.held[k] = true
}

func (s *KeySet) Remove(k Key) {
	if s == nil {
		return
	}
	delete(s.held, k)
}

func (s *KeySet) Has(k Key) bool {
	return s != nil && s.held[k]
}

// Consume removes k and reports whether it was held.
func (s *KeySet) Consume(k Key) bool {
	if !s.Has(k) {
		return false
	}
	delete(s.held, k)
	return true
}

// Clear releases every key.
func (s *KeySet) Clear() {
	if s == nil {
		return
	}
	clear(s.held)
}

// Len is the number of held keys.
func (s *KeySet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.held)
}
