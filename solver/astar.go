package solver

import (
	"container/heap"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/taquinlab/taquin/board"
	"github.com/taquinlab/taquin/movegen"
)

// A frontierEntry carries an explicit f value, computed once when the
// entry is pushed. The heap never reaches back into solver state to
// order itself.
type frontierEntry struct {
	node  *movegen.Node
	fval  int
	index int
}

type priorityFrontier []*frontierEntry

func (p priorityFrontier) Len() int           { return len(p) }
func (p priorityFrontier) Less(i, j int) bool { return p[i].fval < p[j].fval }
func (p priorityFrontier) Swap(i, j int) {
	p[i], p[j] = p[j], p[i]
	p[i].index = i
	p[j].index = j
}

func (p *priorityFrontier) Push(x any) {
	e := x.(*frontierEntry)
	e.index = len(*p)
	*p = append(*p, e)
}

func (p *priorityFrontier) Pop() any {
	old := *p
	n := len(old)
	e := old[n-1]
	e.index = -1
	*p = old[:n-1]
	return e
}

// AStarSolver runs best-first search with f = moves so far + Manhattan
// distance to the goal. The heuristic is admissible, so the returned
// path is optimal in move count.
type AStarSolver struct {
	goal       board.Board
	nodeBudget int
}

func NewAStarSolver(goal board.Board) *AStarSolver {
	return &AStarSolver{goal: goal}
}

// SetNodeBudget caps the number of expanded states. Zero means
// unlimited, which is the default.
func (s *AStarSolver) SetNodeBudget(n int) {
	s.nodeBudget = n
}

// Solve searches from start and returns the optimal path together with
// the size of the frontier at termination.
//
// When a cheaper route to a queued position is found, the old entry
// stays on the heap rather than being re-prioritized; stale entries are
// discarded at pop time by the explored check. That does bounded extra
// work instead of implementing decrease-key.
func (s *AStarSolver) Solve(start board.Board) ([]Step, int, error) {
	tick := time.Now()
	frontier := &priorityFrontier{}
	heap.Init(frontier)
	heap.Push(frontier, &frontierEntry{
		node: movegen.NewRoot(start),
		fval: board.ManhattanDistance(start, s.goal),
	})

	costSoFar := map[uint64]int{start.Key(): 0}
	explored := map[uint64]bool{}
	popped := 0

	for frontier.Len() > 0 {
		cur := heap.Pop(frontier).(*frontierEntry).node
		key := cur.Board.Key()
		if explored[key] {
			// Stale duplicate, superseded by a cheaper route.
			continue
		}
		explored[key] = true
		popped++

		if cur.Board.Equals(s.goal) {
			log.Debug().Int("popped", popped).Int("frontier", frontier.Len()).
				Int("moves", cur.Cost).Dur("elapsed", time.Since(tick)).
				Msg("astar-solved")
			return reconstructPath(cur), frontier.Len(), nil
		}
		if s.nodeBudget > 0 && popped >= s.nodeBudget {
			return nil, frontier.Len(), ErrBudgetExceeded
		}
		for _, nb := range movegen.Neighbors(cur) {
			nbKey := nb.Board.Key()
			if explored[nbKey] {
				continue
			}
			newCost := cur.Cost + 1
			if best, seen := costSoFar[nbKey]; seen && newCost >= best {
				continue
			}
			costSoFar[nbKey] = newCost
			heap.Push(frontier, &frontierEntry{
				node: nb,
				fval: newCost + board.ManhattanDistance(nb.Board, s.goal),
			})
		}
	}
	log.Debug().Int("popped", popped).Dur("elapsed", time.Since(tick)).
		Msg("astar-exhausted")
	return nil, 0, ErrNoSolution
}
