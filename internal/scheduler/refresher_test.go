package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Eursukkul/buggy-fleet/internal/allocation"
	"github.com/Eursukkul/buggy-fleet/pkg/log"
	"github.com/Eursukkul/buggy-fleet/pkg/rabbitmq"
	"github.com/Eursukkul/buggy-fleet/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPlanService struct {
	buildFn func(ctx context.Context, override *allocation.Fleet) (*allocation.Plan, error)
}

func (m *mockPlanService) BuildPlan(ctx context.Context, override *allocation.Fleet) (*allocation.Plan, error) {
	return m.buildFn(ctx, override)
}

type published struct {
	key     string
	payload any
}

type mockPublisher struct {
	mu   sync.Mutex
	msgs []published
	err  error
}

func (m *mockPublisher) Publish(ctx context.Context, key string, payload any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs = append(m.msgs, published{key, payload})
	return m.err
}

type mockArchive struct {
	objects map[string][]byte
}

func (m *mockArchive) CheckBucket(ctx context.Context) error { return nil }
func (m *mockArchive) Put(ctx context.Context, key string, data []byte, contentType string) error {
	m.objects[key] = data
	return nil
}

func overCapacityPlan() *allocation.Plan {
	plan := allocation.Build([]allocation.Row{
		{"start_time": "9:00", "adult_count": "2", "total_price": "9500"},
		{"start_time": "9:00", "adult_count": "3", "total_price": "14500"},
		{"start_time": "10:00", "adult_count": "1", "child_count": "1", "total_price": "5000"},
	}, allocation.Fleet{TwoSeat: 1, OneSeat: 3})
	return &plan
}

func newTestRefresher(plans *mockPlanService, pub Publisher, archive storage.Provider) *Refresher {
	r := NewRefresher(plans, pub, archive, time.Minute, log.NewNopLogger())
	r.now = func() time.Time { return time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC) }
	r.runID = func() string { return "run-1" }
	return r
}

func TestRunOnce_PublishesAndArchives(t *testing.T) {
	plans := &mockPlanService{
		buildFn: func(ctx context.Context, override *allocation.Fleet) (*allocation.Plan, error) {
			assert.Nil(t, override)
			return overCapacityPlan(), nil
		},
	}
	pub := &mockPublisher{}
	archive := &mockArchive{objects: map[string][]byte{}}

	plan, err := newTestRefresher(plans, pub, archive).RunOnce(context.Background())

	require.NoError(t, err)
	require.NotNil(t, plan)

	require.Len(t, pub.msgs, 2)
	assert.Equal(t, rabbitmq.RoutingPlanComputed, pub.msgs[0].key)
	assert.Equal(t, rabbitmq.RoutingSlotOverCapacity, pub.msgs[1].key)
	alert := pub.msgs[1].payload.(SlotOverCapacity)
	assert.Equal(t, "09:00", alert.Slot)
	assert.Equal(t, 2, alert.TwoSeatFinal)
	assert.Equal(t, 1, alert.Shortfall)

	data, ok := archive.objects["plans/2026-10-14/run-1.json"]
	require.True(t, ok)
	var snap Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Equal(t, "run-1", snap.RunID)
	assert.Len(t, snap.Plan.Bookings, 3)
}

func TestRunOnce_PublishFailureStillReturnsPlan(t *testing.T) {
	plans := &mockPlanService{
		buildFn: func(ctx context.Context, override *allocation.Fleet) (*allocation.Plan, error) {
			return overCapacityPlan(), nil
		},
	}
	pub := &mockPublisher{err: errors.New("channel closed")}

	plan, err := newTestRefresher(plans, pub, nil).RunOnce(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, plan)
	assert.Len(t, pub.msgs, 1)
}

func TestRunOnce_BuildError(t *testing.T) {
	plans := &mockPlanService{
		buildFn: func(ctx context.Context, override *allocation.Fleet) (*allocation.Plan, error) {
			return nil, errors.New("store unavailable")
		},
	}
	pub := &mockPublisher{}

	plan, err := newTestRefresher(plans, pub, nil).RunOnce(context.Background())

	assert.Error(t, err)
	assert.Nil(t, plan)
	assert.Empty(t, pub.msgs)
}

func TestRun_DisabledInterval(t *testing.T) {
	r := NewRefresher(&mockPlanService{}, nil, nil, 0, log.NewNopLogger())

	assert.NoError(t, r.Run(context.Background()))
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	plans := &mockPlanService{
		buildFn: func(context.Context, *allocation.Fleet) (*allocation.Plan, error) {
			calls++
			cancel()
			return overCapacityPlan(), nil
		},
	}

	err := NewRefresher(plans, nil, nil, time.Hour, log.NewNopLogger()).Run(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestObjectKey(t *testing.T) {
	at := time.Date(2026, 10, 14, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "plans/2026-10-14/abc.json", ObjectKey(at, "abc"))
}
