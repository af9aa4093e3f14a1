package Queues

// Queue is a FIFO container.
type Queue[T any] interface {
	//Push item to the back.
	Push(item T)
	//Pop the front item. Popping an empty queue returns EmptyQueueError.
	Pop() (T, error)
	//Peek at the front item without removing it; the zero value if empty.
	Peek() T
	//Empty reports whether the queue holds nothing.
	Empty() bool
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
