// Package allocation turns raw same-day reservation rows into a vehicle plan.
//
// The pipeline has three pure steps: Normalize types and orders the rows, Allocate
// derives each booking's driver/passenger split and vehicle need, and Aggregate
// matches per-slot demand against the fleet. Every call recomputes from its input.
package allocation

// Plan is the annotated booking table plus the slot report.
type Plan struct {
	Bookings []Booking `json:"bookings"`
	Report   Report    `json:"report"`
}

// AllocateAll annotates every record, preserving order.
func AllocateAll(records []Record) []Booking {
	bookings := make([]Booking, len(records))
	for i, r := range records {
		a := Allocate(r)
		bookings[i] = Booking{Record: r, Allocation: a, VehicleSummary: VehicleSummary(a)}
	}
	return bookings
}

// Build runs the full pipeline over one snapshot of the reservation table.
func Build(rows []Row, fleet Fleet) Plan {
	bookings := AllocateAll(Normalize(rows))
	return Plan{
		Bookings: bookings,
		Report:   Aggregate(bookings, fleet),
	}
}
