// Package scheduler recomputes the plan on a fixed interval and fans the result
// out to metrics, the message bus and the plan archive.
package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"github.com/Eursukkul/buggy-fleet/internal/allocation"
	"github.com/Eursukkul/buggy-fleet/internal/pkg/metrics"
	"github.com/Eursukkul/buggy-fleet/internal/service"
	"github.com/Eursukkul/buggy-fleet/pkg/log"
	"github.com/Eursukkul/buggy-fleet/pkg/rabbitmq"
	"github.com/Eursukkul/buggy-fleet/pkg/storage"
	"github.com/google/uuid"
)

type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type Refresher struct {
	plans     service.PlanService
	publisher Publisher
	archive   storage.Provider
	interval  time.Duration
	logger    log.Logger

	now   func() time.Time
	runID func() string
}

// NewRefresher wires a refresher. publisher and archive may be nil.
func NewRefresher(plans service.PlanService, publisher Publisher, archive storage.Provider, interval time.Duration, logger log.Logger) *Refresher {
	return &Refresher{
		plans:     plans,
		publisher: publisher,
		archive:   archive,
		interval:  interval,
		logger:    logger.WithName("refresher"),
		now:       time.Now,
		runID:     uuid.NewString,
	}
}

// Run refreshes once immediately and then on every tick until ctx is done.
// A zero interval disables the loop.
func (r *Refresher) Run(ctx context.Context) error {
	if r.interval <= 0 {
		r.logger.Info("scheduled refresh disabled")
		return nil
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		if _, err := r.RunOnce(ctx); err != nil {
			r.logger.Error(err, "plan refresh failed")
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// RunOnce computes one plan. Publish and archive failures are logged only; the
// plan is still returned.
func (r *Refresher) RunOnce(ctx context.Context) (*allocation.Plan, error) {
	start := r.now()
	plan, err := r.plans.BuildPlan(ctx, nil)
	metrics.PlanDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.PlanRuns.WithLabelValues("failed").Inc()
		return nil, err
	}
	metrics.PlanRuns.WithLabelValues("success").Inc()
	metrics.ObserveReport(plan.Report)

	runID := r.runID()
	logger := r.logger.WithValues("run_id", runID)
	logger.Info("plan computed",
		"slots", len(plan.Report.Slots),
		"active_bookings", plan.Report.ActiveBookings,
		"over_capacity", len(plan.Report.OverCapacitySlots))

	if r.publisher != nil {
		if err := r.publish(ctx, runID, start, plan.Report); err != nil {
			logger.Error(err, "failed to publish plan events")
		}
	}
	if r.archive != nil {
		if err := r.store(ctx, runID, start, plan); err != nil {
			logger.Error(err, "failed to archive plan")
		}
	}
	return plan, nil
}

func (r *Refresher) publish(ctx context.Context, runID string, at time.Time, report allocation.Report) error {
	if err := r.publisher.Publish(ctx, rabbitmq.RoutingPlanComputed, PlanComputed{
		RunID:             runID,
		ComputedAt:        at,
		Fleet:             report.Fleet,
		Slots:             report.Slots,
		OverCapacitySlots: report.OverCapacitySlots,
		ActiveBookings:    report.ActiveBookings,
	}); err != nil {
		return err
	}

	for _, s := range report.Slots {
		if !s.OverCapacity {
			continue
		}
		if err := r.publisher.Publish(ctx, rabbitmq.RoutingSlotOverCapacity, SlotOverCapacity{
			RunID:        runID,
			ComputedAt:   at,
			Slot:         s.Slot,
			TwoSeatFinal: s.TwoSeatFinal,
			TwoSeatStock: report.Fleet.TwoSeat,
			Shortfall:    s.TwoSeatShortfall,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (r *Refresher) store(ctx context.Context, runID string, at time.Time, plan *allocation.Plan) error {
	data, err := json.Marshal(Snapshot{RunID: runID, ComputedAt: at, Plan: *plan})
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return r.archive.Put(ctx, ObjectKey(at, runID), data, "application/json")
}

// ObjectKey is plans/<YYYY-MM-DD>/<run-id>.json.
func ObjectKey(at time.Time, runID string) string {
	return path.Join("plans", at.Format(time.DateOnly), runID+".json")
}
