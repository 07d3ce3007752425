package astar

import (
	"container/heap"
	"context"

	"go.uber.org/zap"

	"github.com/pdrpinto/astar/v2/internal/ledger"
)

// Phase is the state of a search driver.
type Phase int

const (
	Initialized Phase = iota
	Running
	Succeeded
	Exhausted
)

func (p Phase) String() string {
	switch p {
	case Initialized:
		return "initialized"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Done reports whether the phase is terminal.
func (p Phase) Done() bool { return p == Succeeded || p == Exhausted }

// StepSnapshot exposes the per-iteration state of the search.
// Path is set only once the goal has been matched.
type StepSnapshot[N comparable, C Cost] struct {
	Current   N
	Cost      C
	Phase     Phase
	Done      bool
	Found     bool
	Path      []N
	StepIndex int
}

// Stepper drives a search one expansion at a time. It owns its frontier and ledger and
// is not safe for concurrent use.
type Stepper[N comparable, G any, C Cost] struct {
	graph   Graph[N, G, C]
	goal    G
	options Options
	logger  *zap.Logger

	openSet    priorityQueue[N, C]
	openSetMap map[N]*queueItem[N, C]
	closedSet  map[N]bool
	scores     *ledger.Ledger[N, C]

	phase     Phase
	stepCount int
	current   N
	path      []N
}

// NewStepper creates a stepper with only startNode on the frontier.
func NewStepper[N comparable, G any, C Cost](
	graph Graph[N, G, C],
	startNode N,
	goal G,
	options ...Option,
) *Stepper[N, G, C] {
	opts := applyOptions(options)
	estimate := graph.Heuristic(startNode, goal)
	s := &Stepper[N, G, C]{
		graph:      graph,
		goal:       goal,
		options:    opts,
		logger:     opts.Logger,
		openSet:    make(priorityQueue[N, C], 0),
		openSetMap: make(map[N]*queueItem[N, C]),
		closedSet:  make(map[N]bool),
		scores:     ledger.New(startNode, estimate),
		current:    startNode,
	}
	startItem := &queueItem[N, C]{Node: startNode, FCost: estimate}
	heap.Push(&s.openSet, startItem)
	s.openSetMap[startNode] = startItem
	return s
}

// Phase returns the current state of the driver.
func (s *Stepper[N, G, C]) Phase() Phase { return s.phase }

// Step pops the cheapest frontier node, tests it against the goal and, failing that,
// relaxes its neighbors. Once the search is done further calls return the final snapshot.
func (s *Stepper[N, G, C]) Step() (StepSnapshot[N, C], error) {
	if s.phase.Done() {
		return s.snapshot(), nil
	}
	if s.phase == Initialized {
		s.phase = Running
		s.logger.Debug("search started", zap.Any("start", s.scores.Start()))
	}
	if s.openSet.Len() == 0 {
		s.phase = Exhausted
		s.logger.Debug("frontier exhausted", zap.Int("expanded", s.stepCount))
		return s.snapshot(), nil
	}
	if s.options.MaxExpansions > 0 && s.stepCount >= s.options.MaxExpansions {
		return s.snapshot(), ErrBudgetExceeded
	}

	s.stepCount++
	currentItem := heap.Pop(&s.openSet).(*queueItem[N, C])
	current := currentItem.Node
	delete(s.openSetMap, current)
	s.closedSet[current] = true
	s.current = current

	if s.graph.GoalMatch(current, s.goal) {
		s.phase = Succeeded
		s.path = s.scores.Path(current)
		s.logger.Debug("goal matched",
			zap.Int("expanded", s.stepCount),
			zap.Int("path_length", len(s.path)),
			zap.Any("cost", currentItem.GScore))
		return s.snapshot(), nil
	}

	for _, neighbor := range s.graph.Neighbors(current) {
		tentative := currentItem.GScore + neighbor.Cost
		if !s.scores.Improves(neighbor.ID, tentative) {
			continue
		}
		f := tentative + s.graph.Heuristic(neighbor.ID, s.goal)
		s.scores.Record(current, neighbor.ID, tentative, f)
		if item, inOpen := s.openSetMap[neighbor.ID]; inOpen {
			item.GScore = tentative
			item.FCost = f
			heap.Fix(&s.openSet, item.IndexInQueue)
			continue
		}
		// A node improved after expansion goes back on the frontier.
		delete(s.closedSet, neighbor.ID)
		item := &queueItem[N, C]{Node: neighbor.ID, GScore: tentative, FCost: f}
		heap.Push(&s.openSet, item)
		s.openSetMap[neighbor.ID] = item
	}

	return s.snapshot(), nil
}

// Run steps until the search succeeds, exhausts the frontier, hits the expansion budget
// or ctx is done.
func (s *Stepper[N, G, C]) Run(ctx context.Context) (Result[N, C], error) {
	for {
		select {
		case <-ctx.Done():
			return s.Result(), ctx.Err()
		default:
		}
		snapshot, err := s.Step()
		if err != nil {
			return s.Result(), err
		}
		if snapshot.Done {
			return s.Result(), nil
		}
	}
}

// Result summarizes the search so far.
func (s *Stepper[N, G, C]) Result() Result[N, C] {
	result := Result[N, C]{ExpandedNodes: s.stepCount}
	if s.phase == Succeeded {
		result.Found = true
		result.Path = append([]N(nil), s.path...)
		result.TotalCost, _ = s.scores.G(s.current)
	}
	return result
}

// Cost returns the best known cost from the start to node. After the frontier is
// exhausted this is the cheapest cost to every reachable node.
func (s *Stepper[N, G, C]) Cost(node N) (C, bool) {
	return s.scores.G(node)
}

// Open returns the nodes currently on the frontier.
func (s *Stepper[N, G, C]) Open() []N {
	nodes := make([]N, 0, len(s.openSetMap))
	for node := range s.openSetMap {
		nodes = append(nodes, node)
	}
	return nodes
}

// Closed returns the nodes expanded and not reopened since.
func (s *Stepper[N, G, C]) Closed() []N {
	nodes := make([]N, 0, len(s.closedSet))
	for node := range s.closedSet {
		nodes = append(nodes, node)
	}
	return nodes
}

// CameFrom returns a copy of the back-pointers recorded so far.
func (s *Stepper[N, G, C]) CameFrom() map[N]N {
	return s.scores.CameFrom()
}

func (s *Stepper[N, G, C]) snapshot() StepSnapshot[N, C] {
	cost, _ := s.scores.G(s.current)
	snapshot := StepSnapshot[N, C]{
		Current:   s.current,
		Cost:      cost,
		Phase:     s.phase,
		Done:      s.phase.Done(),
		Found:     s.phase == Succeeded,
		StepIndex: s.stepCount,
	}
	if snapshot.Found {
		snapshot.Path = append([]N(nil), s.path...)
	}
	return snapshot
}
