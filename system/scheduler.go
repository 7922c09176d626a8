package system

type System interface {
	Update(f *Frame)
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

// Update runs every system in order until one halts the frame.
func (s *Scheduler) Update(f *Frame) {
	for _, system := range s.systems {
		system.Update(f)
		if f.Halted() {
			return
		}
	}
}
