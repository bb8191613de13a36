package ecs

import "strconv"

// Entity is an opaque handle: the low 32 bits are the slot id, the high 32
// bits the slot's generation. Destroying an entity bumps the generation, so
// a stale handle to a reused slot never resolves. Ids start at 1; the zero
// value is NilEntity and is never live.
type Entity uint64

// NilEntity is the zero handle returned when no entity could be produced.
const NilEntity Entity = 0

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// Valid reports whether the handle carries an id at all. It does not check
// liveness; use IsAlive for that.
func (e Entity) Valid() bool {
	return e.id() != 0
}
