package scene

// Selection tracks at most one selected plane. Index, handle and cached pointer are always set and
// cleared together; an empty selection has Index() == -1 and Object() == nil.
type Selection struct {
	handle Handle
	object *Plane
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{handle: Handle{Index: -1}}
}

func (s *Selection) Select(reg *Registry, index int) error {
	p, err := reg.Get(index)
	if err != nil {
		s.Clear()
		return err
	}
	h, _ := reg.Handle(index)
	s.handle = h
	s.object = p
	return nil
}

func (s *Selection) Clear() {
	s.handle = Handle{Index: -1}
	s.object = nil
}

func (s *Selection) Index() int { return s.handle.Index }

func (s *Selection) Handle() Handle { return s.handle }

func (s *Selection) Object() *Plane { return s.object }

func (s *Selection) HasSelection() bool { return s.object != nil }

// Valid re-checks the handle against the registry and clears a stale selection.
func (s *Selection) Valid(reg *Registry) bool {
	if s.object == nil {
		return false
	}
	p, ok := reg.Resolve(s.handle)
	if !ok || p != s.object {
		s.Clear()
		return false
	}
	return true
}

// OnRemove updates the selection after reg.Remove(removed) returned rel. Removing the selected plane
// clears the selection; if the selected plane was the one moved into the freed slot, the selection
// follows it.
func (s *Selection) OnRemove(removed int, rel Relocation, reg *Registry) {
	if s.object == nil {
		return
	}
	switch {
	case s.handle.Index == removed:
		s.Clear()
	case rel.Moved && s.handle.Index == rel.From:
		if err := s.Select(reg, rel.To); err != nil {
			s.Clear()
		}
	}
}
