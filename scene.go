package spincube

// Scene is the root container: the ordered set of entities to render and the
// camera to render them from.
type Scene struct {
	members   []EntityId
	index     set[EntityId]
	camera    EntityId
	hasCamera bool
}

func NewScene() *Scene {
	return &Scene{index: make(set[EntityId])}
}

// Add registers eid as a member. It reports false if eid was already a member.
func (s *Scene) Add(eid EntityId) bool {
	if _, ok := s.index[eid]; ok {
		return false
	}
	s.index[eid] = struct{}{}
	s.members = append(s.members, eid)
	return true
}

func (s *Scene) Contains(eid EntityId) bool {
	_, ok := s.index[eid]
	return ok
}

// Members returns a copy of the member list in insertion order.
func (s *Scene) Members() []EntityId {
	return append([]EntityId(nil), s.members...)
}

func (s *Scene) Len() int {
	return len(s.members)
}

// UseCamera selects the camera entity; it must already be a member.
func (s *Scene) UseCamera(eid EntityId) error {
	if !s.Contains(eid) {
		return ErrNotInScene
	}
	s.camera = eid
	s.hasCamera = true
	return nil
}

func (s *Scene) Camera() (EntityId, bool) {
	return s.camera, s.hasCamera
}
