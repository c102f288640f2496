package event

// EventType is the tag carried by a Notification
// The set is open: callers may define their own tags, the constants below are the ones
// the game itself emits and consumes
type EventType string

const (
	// EventNone is the zero tag, never emitted
	EventNone EventType = ""

	// === Player Event ===

	// EventPlayerFire signals the player executed a fire command
	// Trigger: Player command queue drain (at most one per frame)
	// Consumer: Enemies (arm hit test), Level | Payload: FirePayload
	EventPlayerFire EventType = "player_fire"

	// === Enemy Event ===

	// EventEnemyHit signals a fire ray intersected an enemy and damage was applied
	// Trigger: Enemy Live update with a pending fire
	// Consumer: Level | Payload: HitPayload
	EventEnemyHit EventType = "enemy_hit"

	// EventEnemyDown signals health reached zero and the enemy started falling
	// Trigger: Enemy Live -> Falling transition
	// Consumer: Level | Payload: HitPayload
	EventEnemyDown EventType = "enemy_down"

	// EventEnemyGrounded signals a falling enemy reached the floor
	// Trigger: Enemy Falling -> Grounded transition
	// Consumer: Level | Payload: PositionPayload
	EventEnemyGrounded EventType = "enemy_grounded"

	// === Level Event ===

	// EventLevelCleared signals every enemy of the level is grounded
	// Trigger: Level after the last EventEnemyGrounded
	// Consumer: World | Payload: nil
	EventLevelCleared EventType = "level_cleared"
)

// String returns the tag text
func (t EventType) String() string {
	if t == EventNone {
		return "none"
	}
	return string(t)
}
