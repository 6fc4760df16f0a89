// Package movegen generates every legal move for a player. The search is
// split across goroutines by piece and its results are cached by
// position.
package movegen

import (
	"slices"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/blokus/board"
	"github.com/domino14/blokus/cache"
	"github.com/domino14/blokus/config"
	"github.com/domino14/blokus/game"
	"github.com/domino14/blokus/move"
	"github.com/domino14/blokus/piece"
	"github.com/domino14/blokus/zobrist"
)

// MoveGenerator is the interface a player or analyzer uses to get moves.
type MoveGenerator interface {
	GenAll(b board.BitBoard, p board.Player) []*move.Move
}

type Generator struct {
	threads int
	zobrist *zobrist.Zobrist
	plays   *cache.Cache[[]*move.Move]
}

// NewGenerator creates a generator using the movegen settings in cfg.
func NewGenerator(cfg *config.Config) *Generator {
	z := &zobrist.Zobrist{}
	z.Initialize()
	return &Generator{
		threads: cfg.MovegenThreads(),
		zobrist: z,
		plays:   cache.New[[]*move.Move](cfg.MovegenCacheSize()),
	}
}

// GenAll returns every legal move for p, biggest pieces first. Ties keep
// piece, orientation, y, x order. If p has no placement the only move is
// a pass.
func (gen *Generator) GenAll(b board.BitBoard, p board.Player) []*move.Move {
	key := gen.zobrist.Hash(b, p)
	plays, err := gen.plays.Get(key, func(uint64) ([]*move.Move, error) {
		return gen.generate(b, p)
	})
	if err != nil {
		// generate never fails; keep going without the cache.
		log.Err(err).Msg("movegen-cache-error")
		plays, _ = gen.generate(b, p)
	}
	return slices.Clone(plays)
}

func (gen *Generator) generate(b board.BitBoard, p board.Player) ([]*move.Move, error) {
	pieces := lo.Filter(piece.All(), func(id piece.ID, _ int) bool {
		return b.HasPiece(p, int(id))
	})
	found := make([][]move.Placement, len(pieces))

	g := errgroup.Group{}
	g.SetLimit(gen.threads)
	for i, id := range pieces {
		i, id := i, id
		g.Go(func() error {
			found[i] = game.PiecePlacements(b, p, id)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	plays := lo.Map(lo.Flatten(found), func(pl move.Placement, _ int) *move.Move {
		return move.NewPlacementMove(p, pl)
	})
	sort.SliceStable(plays, func(i, j int) bool {
		return plays[i].Score() > plays[j].Score()
	})
	if len(plays) == 0 {
		plays = append(plays, move.NewPassMove(p))
	}
	log.Debug().Stringer("player", p).Int("nplays", len(plays)).
		Int("threads", gen.threads).Msg("generated plays")
	return plays, nil
}

// HasPlacement returns true if GenAll would return at least one piece
// placement for p.
func (gen *Generator) HasPlacement(b board.BitBoard, p board.Player) bool {
	plays := gen.GenAll(b, p)
	return plays[0].Action() == move.MoveTypePlay
}
