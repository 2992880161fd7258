package game

// NotInCooldown is the LastShot value of a player that has not been shot
// since it last spawned.
const NotInCooldown = -1.0

// respawnEpsilon absorbs float drift between tick-derived timestamps.
const respawnEpsilon = 1e-9

// PlayerState is the alive/dead lifecycle of the player.
//
//	Alive --Shot(now)--> Dead(now) --CanRespawn && Spawned()--> Alive
//
// A fresh PlayerState is Dead with no cooldown, so the first respawn check
// succeeds immediately.
type PlayerState struct {
	Alive    bool
	LastShot float64 // simulation seconds of the last hit, or NotInCooldown

	respawnDelay float64
}

// NewPlayerState creates a dead player that may spawn at once.
func NewPlayerState(respawnDelay float64) *PlayerState {
	return &PlayerState{
		Alive:        false,
		LastShot:     NotInCooldown,
		respawnDelay: respawnDelay,
	}
}

// Shot moves the player to Dead(now). It is a no-op for a dead player, so the
// cooldown is keyed off the first hit.
func (p *PlayerState) Shot(now float64) {
	if !p.Alive {
		return
	}
	p.Alive = false
	p.LastShot = now
}

// CanRespawn reports whether a dead player may be re-created at now.
func (p *PlayerState) CanRespawn(now float64) bool {
	if p.Alive {
		return false
	}
	return p.LastShot == NotInCooldown || now-p.LastShot+respawnEpsilon >= p.respawnDelay
}

// Spawned moves the player to Alive and clears the cooldown marker.
func (p *PlayerState) Spawned() {
	p.Alive = true
	p.LastShot = NotInCooldown
}

// RespawnDelay returns the cooldown in simulation seconds.
func (p *PlayerState) RespawnDelay() float64 {
	return p.respawnDelay
}
