package booking

// UpcomingCounts maps an entity id to its number of upcoming shows.
// Entities with no upcoming shows are simply absent; Of returns 0 for
// them instead of failing the lookup.
type UpcomingCounts map[uint]int

func (uc UpcomingCounts) Of(id uint) int {
	return uc[id]
}
