package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Eursukkul/buggy-fleet/internal/allocation"
)

type LoginRequest struct {
	Password string `json:"password"`
}

// ReservationRequest is one sheet row as JSON. Cells may be strings, numbers,
// booleans or null; they are stored as text.
type ReservationRequest map[string]any

func (r ReservationRequest) ToRow() allocation.Row {
	row := make(allocation.Row, len(r))
	for k, v := range r {
		row[k] = cellText(v)
	}
	return row
}

func cellText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

type CheckInRequest struct {
	CheckedIn *bool `json:"checked_in"`
}

type FleetRequest struct {
	TwoSeatStock *int `json:"two_seat_stock"`
	OneSeatStock *int `json:"one_seat_stock"`
}
