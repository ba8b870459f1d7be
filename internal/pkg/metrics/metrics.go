package metrics

import (
	"github.com/Eursukkul/buggy-fleet/internal/allocation"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// PlanRuns counts scheduled plan passes by result (success/failed).
	PlanRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fleet_plan_runs_total",
			Help: "Total number of scheduled plan computations.",
		},
		[]string{"result"},
	)

	PlanDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fleet_plan_duration_seconds",
			Help:    "Time to load reservations and compute the plan.",
			Buckets: prometheus.DefBuckets,
		},
	)

	OverCapacitySlots = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "fleet_over_capacity_slots",
			Help: "Number of time slots whose two-seat need exceeds stock in the last plan.",
		},
	)

	SlotTwoSeatFinal = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fleet_slot_two_seat_final",
			Help: "Two-seat vehicles required per slot after overflow.",
		},
		[]string{"slot"},
	)

	SlotOneSeatFinal = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fleet_slot_one_seat_final",
			Help: "One-seat vehicles dispatched per slot after overflow.",
		},
		[]string{"slot"},
	)

	BookingsByStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fleet_bookings_by_status",
			Help: "Bookings in the last plan by status tag.",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(PlanRuns)
	prometheus.MustRegister(PlanDuration)
	prometheus.MustRegister(OverCapacitySlots)
	prometheus.MustRegister(SlotTwoSeatFinal)
	prometheus.MustRegister(SlotOneSeatFinal)
	prometheus.MustRegister(BookingsByStatus)
}

// ObserveReport replaces the per-slot and per-status gauges with r.
func ObserveReport(r allocation.Report) {
	OverCapacitySlots.Set(float64(len(r.OverCapacitySlots)))

	SlotTwoSeatFinal.Reset()
	SlotOneSeatFinal.Reset()
	for _, s := range r.Slots {
		SlotTwoSeatFinal.WithLabelValues(s.Slot).Set(float64(s.TwoSeatFinal))
		SlotOneSeatFinal.WithLabelValues(s.Slot).Set(float64(s.OneSeatFinal))
	}

	for _, st := range allocation.Statuses {
		BookingsByStatus.WithLabelValues(string(st)).Set(float64(r.StatusCounts[st]))
	}
}
