// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gophervault/vaultsync/internal/mock"
)

// recordingWorker tracks Run/Stop calls and their order.
type recordingWorker struct {
	id    int
	runs  int
	stops int
	order *[]int
}

func (m *recordingWorker) Run(context.Context) {
	m.runs++
	if m.order != nil {
		*m.order = append(*m.order, m.id)
	}
}

func (m *recordingWorker) Stop() {
	m.stops++
	if m.order != nil {
		*m.order = append(*m.order, -m.id)
	}
}

func TestWorkers_RunAndStopAll(t *testing.T) {
	w1 := &recordingWorker{id: 1}
	w2 := &recordingWorker{id: 2}

	ws := New(w1, w2)
	ws.Run(context.Background())
	ws.Stop()

	for i, w := range []*recordingWorker{w1, w2} {
		assert.Equal(t, 1, w.runs, "worker %d runs", i)
		assert.Equal(t, 1, w.stops, "worker %d stops", i)
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := New()

	// must not panic with no registered workers
	ws.Run(context.Background())
	ws.Stop()
}

func TestWorkers_StopReversesRunOrder(t *testing.T) {
	var order []int
	w1 := &recordingWorker{id: 1, order: &order}
	w2 := &recordingWorker{id: 2, order: &order}
	w3 := &recordingWorker{id: 3, order: &order}

	ws := New(w1, w2, w3)
	ws.Run(context.Background())
	ws.Stop()

	assert.Equal(t, []int{1, 2, 3, -3, -2, -1}, order)
}

func TestSyncWorker_DelegatesToJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockSyncJob(ctrl)

	ctx := context.Background()
	job.EXPECT().Start(ctx, "user-1", 5*time.Minute)
	job.EXPECT().Stop()

	w := NewSyncWorker(job, "user-1", 5*time.Minute)
	w.Run(ctx)
	w.Stop()
}
