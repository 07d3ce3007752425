package astar

type queueItem[N comparable, C Cost] struct {
	Node         N
	GScore       C
	FCost        C
	IndexInQueue int
}

// priorityQueue is the open set, ordered by FCost. Ties are left to the heap layout.
type priorityQueue[N comparable, C Cost] []*queueItem[N, C]

func (queue priorityQueue[N, C]) Len() int           { return len(queue) }
func (queue priorityQueue[N, C]) Less(i, j int) bool { return queue[i].FCost < queue[j].FCost }
func (queue priorityQueue[N, C]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *priorityQueue[N, C]) Push(x any) {
	item := x.(*queueItem[N, C])
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *priorityQueue[N, C]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}
