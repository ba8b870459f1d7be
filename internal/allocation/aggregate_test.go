package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking(slot string, twoSeat, oneSeat int, status string) Booking {
	return Booking{
		Record:     Record{StartTime: slot, Slot: ParseSlot(slot), Status: status, AdultCount: twoSeat*2 + oneSeat},
		Allocation: Allocation{TwoSeatNeed: twoSeat, OneSeatNeed: oneSeat, Tag: StatusOK},
	}
}

func TestAggregate_OverflowMovesToTwoSeat(t *testing.T) {
	bookings := []Booking{
		booking("9:00", 0, 2, ""),
		booking("9:00", 1, 3, "confirmed"),
	}

	report := Aggregate(bookings, Fleet{TwoSeat: 3, OneSeat: 3})

	require.Len(t, report.Slots, 1)
	s := report.Slots[0]
	assert.Equal(t, "09:00", s.Slot)
	assert.Equal(t, 2, s.Bookings)
	assert.Equal(t, 1, s.TwoSeatRequired)
	assert.Equal(t, 5, s.OneSeatRequired)
	assert.Equal(t, 2, s.Overflow)
	assert.Equal(t, 3, s.OneSeatFinal)
	assert.Equal(t, 3, s.TwoSeatFinal)
	assert.False(t, s.OverCapacity)
	assert.Equal(t, 0, s.TwoSeatSpare)
	assert.Equal(t, 0, s.OneSeatSpare)
	assert.Empty(t, report.OverCapacitySlots)
}

func TestAggregate_FlagsResidualTwoSeatShortage(t *testing.T) {
	bookings := []Booking{
		booking("10:00", 3, 4, ""),
	}

	report := Aggregate(bookings, Fleet{TwoSeat: 3, OneSeat: 3})

	s := report.Slots[0]
	assert.Equal(t, 1, s.Overflow)
	assert.Equal(t, 4, s.TwoSeatFinal)
	assert.Equal(t, 1, s.TwoSeatShortfall)
	assert.True(t, s.OverCapacity)
	assert.Equal(t, []string{"10:00"}, report.OverCapacitySlots)
	assert.True(t, report.OverCapacity())
}

func TestAggregate_SpareOneSeatNeverCoversTwoSeat(t *testing.T) {
	report := Aggregate([]Booking{booking("11:00", 5, 0, "")}, Fleet{TwoSeat: 3, OneSeat: 10})

	s := report.Slots[0]
	assert.Equal(t, 0, s.Overflow)
	assert.Equal(t, 5, s.TwoSeatFinal)
	assert.Equal(t, 0, s.OneSeatFinal)
	assert.Equal(t, 10, s.OneSeatSpare)
	assert.True(t, s.OverCapacity)
}

func TestAggregate_SkipsCancelledAndOrdersSlots(t *testing.T) {
	bookings := []Booking{
		booking("tbd", 1, 0, ""),
		booking("13:00", 1, 1, ""),
		booking("9:00", 2, 0, CancelledStatus),
		booking("09:30", 0, 1, "Cancelled"),
		booking("13:00", 0, 1, ""),
	}

	report := Aggregate(bookings, Fleet{TwoSeat: 3, OneSeat: 3})

	slots := make([]string, len(report.Slots))
	for i, s := range report.Slots {
		slots[i] = s.Slot
	}
	assert.Equal(t, []string{"09:30", "13:00", "tbd"}, slots)
	assert.Equal(t, 1, report.CancelledBookings)
	assert.Equal(t, 4, report.ActiveBookings)
	assert.Equal(t, 2, report.Slots[1].OneSeatRequired)
	assert.Equal(t, 4, report.StatusCounts[StatusOK])
}

func TestAggregate_OverflowLaw(t *testing.T) {
	for oneSeatStock := 0; oneSeatStock <= 6; oneSeatStock++ {
		for oneSeat := 0; oneSeat <= 8; oneSeat++ {
			for twoSeat := 0; twoSeat <= 4; twoSeat++ {
				fleet := Fleet{TwoSeat: 3, OneSeat: oneSeatStock}
				s := Aggregate([]Booking{booking("9:00", twoSeat, oneSeat, "")}, fleet).Slots[0]

				assert.LessOrEqual(t, s.OneSeatFinal, oneSeatStock)
				assert.Equal(t, twoSeat+max(0, oneSeat-oneSeatStock), s.TwoSeatFinal)
				assert.Equal(t, s.TwoSeatFinal > fleet.TwoSeat, s.OverCapacity)
			}
		}
	}
}

func TestAggregate_NegativeStockTreatedAsZero(t *testing.T) {
	report := Aggregate([]Booking{booking("9:00", 0, 2, "")}, Fleet{TwoSeat: -1, OneSeat: -5})

	assert.Equal(t, Fleet{}, report.Fleet)
	assert.Equal(t, 2, report.Slots[0].TwoSeatFinal)
	assert.True(t, report.Slots[0].OverCapacity)
}

func TestBuild_EndToEnd(t *testing.T) {
	rows := []Row{
		{"start_time": "9:00", "customer_name": "A", "adult_count": "2", "total_price": "9500"},
		{"start_time": "9:00", "customer_name": "B", "adult_count": "3", "total_price": "14500"},
		{"start_time": "10:00", "customer_name": "C", "adult_count": "1", "child_count": "1", "total_price": "5000"},
		{"start_time": "10:00", "customer_name": "D", "adult_count": "2", "total_price": "9000", "status": "cancelled"},
		{"customer_name": "E"},
	}

	plan := Build(rows, Fleet{TwoSeat: 3, OneSeat: 3})

	require.Len(t, plan.Bookings, 5)
	assert.Equal(t, "【1人】2台", plan.Bookings[0].VehicleSummary)
	assert.Equal(t, "【1人】3台", plan.Bookings[1].VehicleSummary)
	assert.Equal(t, "【2人】1台", plan.Bookings[2].VehicleSummary)
	assert.Equal(t, StatusNoPeople, plan.Bookings[4].Tag)

	require.Len(t, plan.Report.Slots, 3)
	nine := plan.Report.Slots[0]
	assert.Equal(t, 5, nine.OneSeatRequired)
	assert.Equal(t, 2, nine.Overflow)
	assert.Equal(t, 3, nine.OneSeatFinal)
	assert.Equal(t, 2, nine.TwoSeatFinal)

	ten := plan.Report.Slots[1]
	assert.Equal(t, 1, ten.Bookings)
	assert.Equal(t, 1, ten.TwoSeatFinal)

	assert.Equal(t, "", plan.Report.Slots[2].Slot)
	assert.Equal(t, 1, plan.Report.StatusCounts[StatusNoPeople])
}
