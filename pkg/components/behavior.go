package components

// Tag is a set of capability markers. Markers compose freely: a laser fired by
// the player carries TagLaser|TagFromPlayer.
type Tag uint8

const (
	// TagEnemy marks an orbiting enemy ship.
	TagEnemy Tag = 1 << iota
	// TagPlayer marks the player ship.
	TagPlayer
	// TagLaser marks a projectile. Always paired with exactly one of
	// TagFromPlayer or TagFromEnemy.
	TagLaser
	// TagFromPlayer marks a projectile fired by the player.
	TagFromPlayer
	// TagFromEnemy marks a projectile fired by an enemy.
	TagFromEnemy
)

// Common tag combinations.
const (
	TagPlayerLaser = TagLaser | TagFromPlayer
	TagEnemyLaser  = TagLaser | TagFromEnemy
)

// TagComponent holds the capability markers of an entity.
type TagComponent struct {
	Tags Tag
}

// Has reports whether every marker in want is set.
func (c *TagComponent) Has(want Tag) bool {
	return c.Tags&want == want
}

// HasTag reports whether t contains every marker in want.
func (t Tag) HasTag(want Tag) bool {
	return t&want == want
}

// String renders the set as a '|' separated list, e.g. "laser|from_player".
func (t Tag) String() string {
	if t == 0 {
		return "none"
	}
	names := []struct {
		tag  Tag
		name string
	}{
		{TagEnemy, "enemy"},
		{TagPlayer, "player"},
		{TagLaser, "laser"},
		{TagFromPlayer, "from_player"},
		{TagFromEnemy, "from_enemy"},
	}
	out := ""
	for _, n := range names {
		if t&n.tag == 0 {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += n.name
	}
	return out
}
