package feature

// EpochSchedule maps a slot to the epoch containing it.
type EpochSchedule interface {
	Epoch(slot Slot) uint64
}

// EpochOverride returns the epoch in which the feature id took effect, or false
// when id is not active and no override applies.
func (s *Set) EpochOverride(id ID, schedule EpochSchedule) (uint64, bool) {
	slot, ok := s.ActivatedSlot(id)
	if !ok {
		return 0, false
	}
	return schedule.Epoch(slot), true
}
