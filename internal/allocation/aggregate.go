package allocation

import "sort"

// Fleet is the day's vehicle stock by seat type.
type Fleet struct {
	TwoSeat int `json:"two_seat_stock"`
	OneSeat int `json:"one_seat_stock"`
}

func (f Fleet) clamped() Fleet {
	return Fleet{TwoSeat: max(0, f.TwoSeat), OneSeat: max(0, f.OneSeat)}
}

// Booking is a normalized record together with its allocation.
type Booking struct {
	Record
	Allocation
	VehicleSummary string `json:"vehicle_summary"`
}

// SlotSummary is the vehicle demand of one start time against the fleet.
type SlotSummary struct {
	Slot             string `json:"slot"`
	Bookings         int    `json:"bookings"`
	Headcount        int    `json:"headcount"`
	TwoSeatRequired  int    `json:"two_seat_required"`
	OneSeatRequired  int    `json:"one_seat_required"`
	Overflow         int    `json:"overflow"`
	TwoSeatFinal     int    `json:"two_seat_final"`
	OneSeatFinal     int    `json:"one_seat_final"`
	TwoSeatShortfall int    `json:"two_seat_shortfall"`
	TwoSeatSpare     int    `json:"two_seat_spare"`
	OneSeatSpare     int    `json:"one_seat_spare"`
	OverCapacity     bool   `json:"over_capacity"`

	slot Slot
}

// Report is the per-slot utilization of the fleet.
type Report struct {
	Fleet             Fleet          `json:"fleet"`
	Slots             []SlotSummary  `json:"slots"`
	OverCapacitySlots []string       `json:"over_capacity_slots"`
	StatusCounts      map[Status]int `json:"status_counts"`
	ActiveBookings    int            `json:"active_bookings"`
	CancelledBookings int            `json:"cancelled_bookings"`
}

// OverCapacity reports whether any slot needs more two-seat vehicles than the fleet has.
func (r Report) OverCapacity() bool {
	return len(r.OverCapacitySlots) > 0
}

// Aggregate groups active bookings by slot and matches their demand against the fleet.
// One-seat demand beyond one-seat stock overflows onto two-seat vehicles; spare one-seat
// stock never covers two-seat demand.
func Aggregate(bookings []Booking, fleet Fleet) Report {
	fleet = fleet.clamped()
	report := Report{
		Fleet:             fleet,
		Slots:             []SlotSummary{},
		OverCapacitySlots: []string{},
		StatusCounts:      make(map[Status]int, len(Statuses)),
	}

	index := make(map[string]int)
	for _, b := range bookings {
		if !b.Active() {
			report.CancelledBookings++
			continue
		}
		report.ActiveBookings++
		report.StatusCounts[b.Tag]++

		key := b.Slot.Label
		i, ok := index[key]
		if !ok {
			i = len(report.Slots)
			index[key] = i
			report.Slots = append(report.Slots, SlotSummary{Slot: key, slot: b.Slot})
		}

		s := &report.Slots[i]
		s.Bookings++
		s.Headcount += b.Headcount()
		s.TwoSeatRequired += b.TwoSeatNeed
		s.OneSeatRequired += b.OneSeatNeed
	}

	sort.SliceStable(report.Slots, func(a, b int) bool {
		return slotLess(report.Slots[a].slot, report.Slots[b].slot)
	})

	for i := range report.Slots {
		s := &report.Slots[i]
		redistribute(s, fleet)
		if s.OverCapacity {
			report.OverCapacitySlots = append(report.OverCapacitySlots, s.Slot)
		}
	}

	return report
}

func redistribute(s *SlotSummary, fleet Fleet) {
	s.Overflow = max(0, s.OneSeatRequired-fleet.OneSeat)
	s.OneSeatFinal = s.OneSeatRequired - s.Overflow
	s.TwoSeatFinal = s.TwoSeatRequired + s.Overflow
	s.TwoSeatShortfall = max(0, s.TwoSeatFinal-fleet.TwoSeat)
	s.TwoSeatSpare = max(0, fleet.TwoSeat-s.TwoSeatFinal)
	s.OneSeatSpare = fleet.OneSeat - s.OneSeatFinal
	s.OverCapacity = s.TwoSeatFinal > fleet.TwoSeat
}
