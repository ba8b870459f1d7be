package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func record(adults, children, price int) Record {
	return Record{AdultCount: adults, ChildCount: children, TotalPrice: price}
}

func TestAllocate_Examples(t *testing.T) {
	tests := []struct {
		name   string
		rec    Record
		expect Allocation
	}{
		{
			name:   "two drivers, no passengers",
			rec:    record(2, 0, 9500),
			expect: Allocation{Drivers: 2, Passengers: 0, TwoSeatNeed: 0, OneSeatNeed: 2, Tag: StatusOK},
		},
		{
			name:   "adult drives child",
			rec:    record(1, 1, 5000),
			expect: Allocation{Drivers: 1, Passengers: 1, TwoSeatNeed: 1, OneSeatNeed: 0, Tag: StatusOK},
		},
		{
			name:   "insurance only is driver shortage",
			rec:    record(4, 0, 2000),
			expect: Allocation{Drivers: 0, Passengers: 4, TwoSeatNeed: 4, OneSeatNeed: 0, Tag: StatusDriverShortage},
		},
		{
			name:   "empty booking",
			rec:    record(0, 0, 0),
			expect: Allocation{Tag: StatusNoPeople},
		},
		{
			name:   "price not entered yet",
			rec:    record(3, 0, 0),
			expect: Allocation{Drivers: 0, Passengers: 3, TwoSeatNeed: 3, OneSeatNeed: 0, Tag: StatusPriceMissing},
		},
		{
			name:   "price on empty booking is still no people",
			rec:    record(0, 0, 9000),
			expect: Allocation{Tag: StatusNoPeople},
		},
		{
			name:   "mixed group",
			rec:    record(3, 1, 3*DriverFare+PassengerFare),
			expect: Allocation{Drivers: 3, Passengers: 1, TwoSeatNeed: 1, OneSeatNeed: 2, Tag: StatusOK},
		},
		{
			name:   "two drivers two passengers",
			rec:    record(2, 2, 10000),
			expect: Allocation{Drivers: 2, Passengers: 2, TwoSeatNeed: 2, OneSeatNeed: 0, Tag: StatusOK},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Allocate(tt.rec))
		})
	}
}

func TestAllocate_RoundsToNearestDriver(t *testing.T) {
	// surplus 1999 rounds down, 2000 rounds up
	a := Allocate(record(2, 0, 2*PassengerFare+1999))
	assert.Equal(t, 0, a.Drivers)

	a = Allocate(record(2, 0, 2*PassengerFare+2000))
	assert.Equal(t, 1, a.Drivers)
	assert.Equal(t, 1, a.Passengers)
	assert.Equal(t, StatusOK, a.Tag)

	// slight under-entry still counts the driver
	a = Allocate(record(1, 0, 4450))
	assert.Equal(t, 1, a.Drivers)
	assert.Equal(t, StatusOK, a.Tag)
}

func TestAllocate_OverpaymentCapsDriversAtHeadcount(t *testing.T) {
	a := Allocate(record(1, 0, 20000))
	assert.Equal(t, 1, a.Drivers)
	assert.Equal(t, 0, a.Passengers)
	assert.Equal(t, 1, a.OneSeatNeed)
}

func TestAllocate_Properties(t *testing.T) {
	for total := 0; total <= 8; total++ {
		prev := -1
		for price := 0; price <= 50000; price += 250 {
			r := record(total, 0, price)
			a := Allocate(r)

			assert.GreaterOrEqual(t, a.TwoSeatNeed, 0)
			assert.GreaterOrEqual(t, a.OneSeatNeed, 0)
			assert.Equal(t, a, Allocate(r), "allocation must be deterministic")

			if total > 0 {
				assert.Equal(t, total, a.Drivers+a.Passengers)
			}
			if a.Tag == StatusOK && total > 0 {
				assert.GreaterOrEqual(t, a.Drivers, a.Passengers)
			}
			assert.GreaterOrEqual(t, a.Drivers, prev, "driver count must not drop as price rises")
			prev = a.Drivers
		}
	}
}

func TestVehicleSummary(t *testing.T) {
	assert.Equal(t, "【2人】1台 【1人】2台", VehicleSummary(Allocation{TwoSeatNeed: 1, OneSeatNeed: 2}))
	assert.Equal(t, "【2人】3台", VehicleSummary(Allocation{TwoSeatNeed: 3}))
	assert.Equal(t, "【1人】2台", VehicleSummary(Allocation{OneSeatNeed: 2}))
	assert.Equal(t, "", VehicleSummary(Allocation{}))
}
