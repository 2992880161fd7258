package ecs

// CommandBuffer records structural changes (spawns and destroys) while a
// system scans the store, so that iteration never observes a mutation
// mid-pass. Apply replays them against an EntityManager.
type CommandBuffer struct {
	spawns   [][]any
	destroys []EntityID
}

// NewCommandBuffer creates an empty command buffer.
func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{
		spawns:   make([][]any, 0),
		destroys: make([]EntityID, 0),
	}
}

// Spawn records the creation of an entity carrying the given components.
func (cb *CommandBuffer) Spawn(components ...any) {
	cb.spawns = append(cb.spawns, components)
}

// Destroy records the removal of an entity.
func (cb *CommandBuffer) Destroy(id EntityID) {
	cb.destroys = append(cb.destroys, id)
}

// Len returns the number of pending commands.
func (cb *CommandBuffer) Len() int {
	return len(cb.spawns) + len(cb.destroys)
}

// Apply performs the recorded destroys, then the recorded spawns in the order
// they were issued, and clears the buffer. It returns the ids of the spawned
// entities.
func (cb *CommandBuffer) Apply(em *EntityManager) []EntityID {
	for _, id := range cb.destroys {
		em.DestroyEntity(id)
	}
	em.RemoveMarkedEntities()

	spawned := make([]EntityID, 0, len(cb.spawns))
	for _, comps := range cb.spawns {
		id := em.CreateEntity()
		for _, c := range comps {
			em.AddComponent(id, c)
		}
		spawned = append(spawned, id)
	}

	cb.spawns = cb.spawns[:0]
	cb.destroys = cb.destroys[:0]
	return spawned
}
