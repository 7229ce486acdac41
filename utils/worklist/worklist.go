package worklist

// Worklist is a FIFO queue of pending elements. It keeps track of which
// elements are currently queued, such that duplicates can be avoided
// with AddUnique.
type Worklist[T comparable] struct {
	list   []T
	queued map[T]int
}

func Empty[T comparable]() Worklist[T] {
	return Worklist[T]{queued: make(map[T]int)}
}

func (w *Worklist[T]) GetNext() (ret T) {
	if len(w.list) == 0 {
		return
	}
	next := w.list[0]
	w.list = w.list[1:]

	if w.queued[next] <= 1 {
		delete(w.queued, next)
	} else {
		w.queued[next]--
	}
	return next
}

func (w *Worklist[T]) IsEmpty() bool {
	return len(w.list) == 0
}

// Len is the number of queued elements.
func (w *Worklist[T]) Len() int {
	return len(w.list)
}

// Contains checks whether the element is currently queued.
func (w *Worklist[T]) Contains(el T) bool {
	return w.queued[el] > 0
}

// Process drains the worklist. Elements added during processing
// are enqueued only if they are not already pending.
func (w *Worklist[T]) Process(
	do func(
		next T,
		add func(element T))) {
	for !w.IsEmpty() {
		do(w.GetNext(), func(el T) { w.AddUnique(el) })
	}
}

// Add appends the element, regardless of whether it is already queued.
func (w *Worklist[T]) Add(el T) {
	if w.queued == nil {
		w.queued = make(map[T]int)
	}
	w.list = append(w.list, el)
	w.queued[el]++
}

// AddUnique appends the element unless it is already queued.
// Reports whether the element was added.
func (w *Worklist[T]) AddUnique(el T) bool {
	if w.Contains(el) {
		return false
	}
	w.Add(el)
	return true
}
