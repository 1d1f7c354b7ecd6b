package manager

import (
	"spelling-snake/game/types"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// DefaultSpawnAttempts caps rejection sampling per placed item
const DefaultSpawnAttempts = 100

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// SpawnRequest describes one board (re)placement
type SpawnRequest struct {
	Occupied         map[types.Cell]struct{} // snake body and anything else already on the board
	Head             types.Cell
	TargetChar       byte // zero skips the target
	DecoyCount       int
	IncludeLifeToken bool
	ExclusionRadius  int
	Metric           types.Metric
	Mode             types.WrapMode // under Wrap the head neighborhood folds across edges
}

// SpawnResult holds the placed letters; Omitted counts items that found no cell
type SpawnResult struct {
	Letters []types.Letter
	Omitted int
}

// SpawnManager places letters by rejection sampling. It keeps no board
// state between calls; randomness comes from the caller's source.
type SpawnManager struct {
	collisionMgr *CollisionManager
	attempts     int
}

func NewSpawnManager(collisionMgr *CollisionManager, attempts int) *SpawnManager {
	if attempts <= 0 {
		attempts = DefaultSpawnAttempts
	}
	return &SpawnManager{
		collisionMgr: collisionMgr,
		attempts:     attempts,
	}
}

// Plan places the target, then decoys, then the optional life token. Each
// placement sees the cells taken by earlier ones; a failed item is skipped.
func (sm *SpawnManager) Plan(req SpawnRequest, rng *rand.Rand) SpawnResult {
	excluded := sm.exclusionSet(req)
	result := SpawnResult{Letters: make([]types.Letter, 0, req.DecoyCount+2)}

	place := func(l types.Letter) {
		pos, ok := sm.randomEmptyPosition(excluded, rng)
		if !ok {
			result.Omitted++
			log.Debug().Str("kind", l.Kind.String()).Msg("spawn attempts exhausted, item omitted")
			return
		}
		l.Cell = pos
		excluded[pos] = struct{}{}
		result.Letters = append(result.Letters, l)
	}

	if req.TargetChar != 0 {
		place(types.Letter{Char: req.TargetChar, Kind: types.Target})
	}
	for i := 0; i < req.DecoyCount; i++ {
		place(types.Letter{Char: DecoyChar(req.TargetChar, rng), Kind: types.Decoy})
	}
	if req.IncludeLifeToken {
		place(types.Letter{Kind: types.LifeToken})
	}
	return result
}

// OfferLifeToken decides once per spawn call whether a life token joins the board
func OfferLifeToken(strikes int, chance float64, rng *rand.Rand) bool {
	if strikes <= 0 {
		return false
	}
	return rng.Float64() < chance
}

// DecoyChar draws an uppercase letter different from target
func DecoyChar(target byte, rng *rand.Rand) byte {
	idx := int(target) - 'A'
	if idx < 0 || idx >= len(alphabet) {
		return alphabet[rng.Intn(len(alphabet))]
	}
	n := rng.Intn(len(alphabet) - 1)
	if n >= idx {
		n++
	}
	return alphabet[n]
}

func (sm *SpawnManager) exclusionSet(req SpawnRequest) map[types.Cell]struct{} {
	excluded := make(map[types.Cell]struct{}, len(req.Occupied)+(2*req.ExclusionRadius+1)*(2*req.ExclusionRadius+1))
	for c := range req.Occupied {
		excluded[c] = struct{}{}
	}
	grid := sm.collisionMgr.Grid()
	r := req.ExclusionRadius
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			c := types.Cell{X: req.Head.X + dx, Y: req.Head.Y + dy}
			if req.Metric.Distance(req.Head, c) > r {
				continue
			}
			if req.Mode == types.Wrap {
				c = grid.WrapCell(c)
			}
			excluded[c] = struct{}{}
		}
	}
	return excluded
}

func (sm *SpawnManager) randomEmptyPosition(excluded map[types.Cell]struct{}, rng *rand.Rand) (types.Cell, bool) {
	grid := sm.collisionMgr.Grid()
	for i := 0; i < sm.attempts; i++ {
		pos := types.Cell{
			X: rng.Intn(grid.Width),
			Y: rng.Intn(grid.Height),
		}
		if sm.collisionMgr.ValidateSpawnPosition(pos, excluded) {
			return pos, true
		}
	}
	return types.Cell{}, false
}
