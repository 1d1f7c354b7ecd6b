package manager

import (
	"spelling-snake/game/entity"
	"spelling-snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

func (cm *CollisionManager) Grid() types.Grid {
	return cm.grid
}

// CheckMove resolves the next head and classifies it against walls, then
// against the pre-move body. Wall is checked first since an off-grid cell
// cannot overlap the body.
func (cm *CollisionManager) CheckMove(snake *entity.Snake, dir types.Direction, mode types.WrapMode, grow bool) (types.Cell, CollisionType) {
	next, ok := cm.grid.ResolveMove(snake.GetHead(), dir, mode)
	if !ok {
		return next, WallCollision
	}
	if snake.CollidesWithSelf(next, grow) {
		return next, SelfCollision
	}
	return next, NoCollision
}

// CheckLetterCollision returns the index of the letter at pos, or -1
func (cm *CollisionManager) CheckLetterCollision(pos types.Cell, letters []types.Letter) int {
	for i, l := range letters {
		if l.Cell == pos {
			return i
		}
	}
	return -1
}

// ValidateSpawnPosition checks if a position is in bounds and free
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Cell, occupied map[types.Cell]struct{}) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	_, taken := occupied[pos]
	return !taken
}
