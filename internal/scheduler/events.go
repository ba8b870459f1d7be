package scheduler

import (
	"time"

	"github.com/Eursukkul/buggy-fleet/internal/allocation"
)

// PlanComputed is published after every successful refresh.
type PlanComputed struct {
	RunID             string                   `json:"run_id"`
	ComputedAt        time.Time                `json:"computed_at"`
	Fleet             allocation.Fleet         `json:"fleet"`
	Slots             []allocation.SlotSummary `json:"slots"`
	OverCapacitySlots []string                 `json:"over_capacity_slots"`
	ActiveBookings    int                      `json:"active_bookings"`
}

// SlotOverCapacity is published once per slot whose two-seat need exceeds stock.
type SlotOverCapacity struct {
	RunID        string    `json:"run_id"`
	ComputedAt   time.Time `json:"computed_at"`
	Slot         string    `json:"slot"`
	TwoSeatFinal int       `json:"two_seat_final"`
	TwoSeatStock int       `json:"two_seat_stock"`
	Shortfall    int       `json:"shortfall"`
}

// Snapshot is the archived form of one refresh.
type Snapshot struct {
	RunID      string          `json:"run_id"`
	ComputedAt time.Time       `json:"computed_at"`
	Plan       allocation.Plan `json:"plan"`
}
