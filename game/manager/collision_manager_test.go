package manager

import (
	"testing"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

func TestCollisionManager_CheckCollision(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid)
	tests := []struct {
		name string
		body []types.Point
		want CollisionType
	}{
		{"start body", types.StartBody(), NoCollision},
		{"off right edge", []types.Point{{X: 20, Y: 10}, {X: 19, Y: 10}, {X: 18, Y: 10}}, WallCollision},
		{"off top edge", []types.Point{{X: 3, Y: -1}, {X: 3, Y: 0}, {X: 3, Y: 1}}, WallCollision},
		{"self", []types.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 5}}, SelfCollision},
		{"idle repeat", []types.Point{{X: 5, Y: 10}, {X: 5, Y: 10}, {X: 4, Y: 10}}, SelfCollision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := entity.NewSnake(types.DefaultGrid)
			s.Body = tt.body
			if got := cm.CheckCollision(s); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if (tt.want != NoCollision) != s.CheckSelfOrWallCollision() {
				t.Errorf("CheckSelfOrWallCollision disagrees with %v", tt.want)
			}
		})
	}
}

func TestCollisionManager_IsFoodCollision(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid)
	if !cm.IsFoodCollision(types.Point{X: 2, Y: 3}, types.Point{X: 2, Y: 3}) {
		t.Error("same cell should be a food collision")
	}
	if cm.IsFoodCollision(types.Point{X: 2, Y: 3}, types.Point{X: 3, Y: 2}) {
		t.Error("different cells should not collide")
	}
}

func TestCollisionType_String(t *testing.T) {
	if WallCollision.String() != "wall" || SelfCollision.String() != "self" || NoCollision.String() != "none" {
		t.Errorf("unexpected names: %v %v %v", WallCollision, SelfCollision, NoCollision)
	}
}
