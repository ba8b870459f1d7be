package allocation

import "strconv"

// Pricing model: a driver pays the vehicle fee plus insurance, a passenger pays insurance only.
const (
	InsuranceFee  = 500
	VehicleFee    = 4000
	DriverFare    = VehicleFee + InsuranceFee
	PassengerFare = InsuranceFee
)

// Status classifies one booking's allocation.
type Status string

const (
	StatusOK             Status = "OK"
	StatusDriverShortage Status = "DRIVER_SHORTAGE"
	StatusPriceMissing   Status = "PRICE_MISSING"
	StatusNoPeople       Status = "NO_PEOPLE"
)

// Statuses lists every tag in display order.
var Statuses = []Status{StatusOK, StatusDriverShortage, StatusPriceMissing, StatusNoPeople}

// Allocation is the derived vehicle requirement of one booking.
type Allocation struct {
	Drivers     int    `json:"driver_count"`
	Passengers  int    `json:"passenger_count"`
	TwoSeatNeed int    `json:"two_seat_need"`
	OneSeatNeed int    `json:"one_seat_need"`
	Tag         Status `json:"status_tag"`
}

// Allocate recovers the driver/passenger split of a booking from its headcount and
// total price, then maps it to vehicle need. It never fails.
func Allocate(r Record) Allocation {
	total := r.Headcount()
	if total == 0 {
		return Allocation{Tag: StatusNoPeople}
	}

	drivers, passengers := splitRiders(total, r.TotalPrice)
	a := Allocation{
		Drivers:     drivers,
		Passengers:  passengers,
		TwoSeatNeed: passengers,
		OneSeatNeed: max(0, drivers-passengers),
	}

	switch {
	case r.TotalPrice == 0:
		a.Tag = StatusPriceMissing
	case drivers < passengers:
		a.Tag = StatusDriverShortage
	default:
		a.Tag = StatusOK
	}
	return a
}

// splitRiders solves 4500·d + 500·p = revenue, d + p = total for d, rounding to the
// nearest whole driver (half away from zero). d is kept within [0, total].
func splitRiders(total, revenue int) (drivers, passengers int) {
	surplus := revenue - PassengerFare*total
	if surplus > 0 {
		drivers = (surplus + VehicleFee/2) / VehicleFee
	}
	drivers = min(drivers, total)
	return drivers, max(0, total-drivers)
}

// VehicleSummary renders the need as "【2人】n台 【1人】m台", omitting zero segments.
func VehicleSummary(a Allocation) string {
	s := ""
	if a.TwoSeatNeed > 0 {
		s = "【2人】" + strconv.Itoa(a.TwoSeatNeed) + "台"
	}
	if a.OneSeatNeed > 0 {
		if s != "" {
			s += " "
		}
		s += "【1人】" + strconv.Itoa(a.OneSeatNeed) + "台"
	}
	return s
}
