package workers

// Workers runs a fixed set of background workers as one unit.
type Workers struct {
	workers []Worker
}

// NewWorkers groups workers. Run starts them in the given order and Stop
// stops them in reverse.
//
// Example usage:
//
//	w := workers.NewWorkers(poller)
//	w.Run()
//	defer w.Stop()
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
