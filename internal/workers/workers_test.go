package workers

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/enzg/one-big-key-sub004/internal/mock"
)

// countingWorker tracks how many times Run was called.
type countingWorker struct {
	runCount int
}

func (m *countingWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &countingWorker{}
	w2 := &countingWorker{}
	w3 := &countingWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*countingWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run()
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	newOrderWorker := func(id int) Worker {
		return &orderWorker{id: id, order: &order}
	}

	ws := NewWorkers(
		newOrderWorker(1),
		newOrderWorker(2),
		newOrderWorker(3),
	)
	ws.Run()

	expected := []int{1, 2, 3}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &countingWorker{}
	ws := NewWorkers(w)

	ws.Run()
	ws.Run()
	ws.Run()

	if w.runCount != 3 {
		t.Errorf("expected runCount=3 after 3 calls, got %d", w.runCount)
	}
}

func TestSyncWorker_StartsAndStopsTheJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	job := mock.NewMockClientSyncJob(ctrl)
	job.EXPECT().Start(gomock.Any(), 30*time.Second)
	job.EXPECT().Stop()

	w := NewSyncWorker(job, 30*time.Second)
	w.Run()
	w.Stop()
}

// orderWorker appends its id to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run() {
	*o.order = append(*o.order, o.id)
}
