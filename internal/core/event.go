package core

// EventKind names something that happened during a simulation tick.
type EventKind int

const (
	EventFire EventKind = iota + 1
	EventEnemyHit
	EventEnemyKilled
	EventPlayerHit
	EventLevelUp
	EventJump
	EventLand
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventFire:
		return "fire"
	case EventEnemyHit:
		return "enemy_hit"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventPlayerHit:
		return "player_hit"
	case EventLevelUp:
		return "level_up"
	case EventJump:
		return "jump"
	case EventLand:
		return "land"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by Step for presentation sinks such as audio.
// Value carries the kind-specific number (damage, level, score).
type Event struct {
	Kind  EventKind
	Value int
}
