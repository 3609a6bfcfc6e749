package workers

import "context"

type Workers struct {
	workers []Worker
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Shutdown stops workers in reverse start order.
func (w *Workers) Shutdown() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Shutdown()
	}
}
