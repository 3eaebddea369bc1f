package game

import "snake-arcade/game/types"

// InputRouter maps key codes to directions and rejects 180-degree turns.
// Key codes are opaque to the router; the caller supplies the mapping.
type InputRouter struct {
	keys map[int32]types.Point
}

func NewInputRouter(keys map[int32]types.Point) *InputRouter {
	return &InputRouter{keys: keys}
}

// Lookup returns the direction bound to key. Unbound keys are ignored.
func (r *InputRouter) Lookup(key int32) (types.Point, bool) {
	dir, ok := r.keys[key]
	return dir, ok
}

// Accept reports whether dir may replace current.
func (r *InputRouter) Accept(current, dir types.Point) bool {
	// Prevent 180-degree turns
	if (dir.X != 0 && dir.X == -current.X) ||
		(dir.Y != 0 && dir.Y == -current.Y) {
		return false
	}
	return true
}
