package dto

import (
	"time"

	"github.com/Eursukkul/buggy-fleet/internal/allocation"
	"github.com/Eursukkul/buggy-fleet/internal/models"
)

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ReservationResponse struct {
	ID           uint              `json:"id"`
	ExternalRef  *string           `json:"external_ref,omitempty"`
	StartTime    string            `json:"start_time"`
	CustomerName string            `json:"customer_name"`
	AdultCount   string            `json:"adult_count"`
	ChildCount   string            `json:"child_count"`
	TotalPrice   string            `json:"total_price"`
	Status       string            `json:"status"`
	CheckedIn    bool              `json:"checked_in"`
	Extra        map[string]string `json:"extra,omitempty"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type FleetResponse struct {
	TwoSeatStock int `json:"two_seat_stock"`
	OneSeatStock int `json:"one_seat_stock"`
}

type SlotsResponse struct {
	Fleet             FleetResponse            `json:"fleet"`
	Slots             []allocation.SlotSummary `json:"slots"`
	OverCapacitySlots []string                 `json:"over_capacity_slots"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToReservationResponse(r *models.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:           r.ID,
		ExternalRef:  r.ExternalRef,
		StartTime:    r.StartTime,
		CustomerName: r.CustomerName,
		AdultCount:   r.AdultCount,
		ChildCount:   r.ChildCount,
		TotalPrice:   r.TotalPrice,
		Status:       r.Status,
		CheckedIn:    r.CheckedIn,
		Extra:        r.Extra,
		UpdatedAt:    r.UpdatedAt,
	}
}

func ToFleetResponse(f allocation.Fleet) FleetResponse {
	return FleetResponse{TwoSeatStock: f.TwoSeat, OneSeatStock: f.OneSeat}
}

func ToSlotsResponse(r allocation.Report) SlotsResponse {
	return SlotsResponse{
		Fleet:             ToFleetResponse(r.Fleet),
		Slots:             r.Slots,
		OverCapacitySlots: r.OverCapacitySlots,
	}
}
