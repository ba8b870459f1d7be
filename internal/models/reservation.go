package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/Eursukkul/buggy-fleet/internal/allocation"
)

// ColExternalRef carries the upstream booking system's identifier in imported rows.
const ColExternalRef = "external_ref"

// Reservation is one row of the reservation sheet. Cells stay as entered;
// typing happens in allocation.Normalize on every pass.
type Reservation struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	ExternalRef  *string           `gorm:"uniqueIndex;size:128" json:"external_ref,omitempty"`
	StartTime    string            `gorm:"not null;default:''" json:"start_time"`
	CustomerName string            `gorm:"not null;default:''" json:"customer_name"`
	AdultCount   string            `gorm:"not null;default:''" json:"adult_count"`
	ChildCount   string            `gorm:"not null;default:''" json:"child_count"`
	TotalPrice   string            `gorm:"not null;default:''" json:"total_price"`
	Status       string            `gorm:"type:varchar(64);not null;default:''" json:"status"`
	CheckedIn    bool              `gorm:"not null;default:false" json:"checked_in"`
	Extra        map[string]string `gorm:"serializer:json" json:"extra,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// ToRow exposes the reservation as a raw table row for the allocation pipeline.
func (r *Reservation) ToRow() allocation.Row {
	row := make(allocation.Row, len(r.Extra)+8)
	for k, v := range r.Extra {
		row[k] = v
	}
	row[allocation.ColID] = strconv.FormatUint(uint64(r.ID), 10)
	row[allocation.ColStartTime] = r.StartTime
	row[allocation.ColCustomerName] = r.CustomerName
	row[allocation.ColAdultCount] = r.AdultCount
	row[allocation.ColChildCount] = r.ChildCount
	row[allocation.ColTotalPrice] = r.TotalPrice
	row[allocation.ColStatus] = r.Status
	row[allocation.ColCheckedIn] = strconv.FormatBool(r.CheckedIn)
	return row
}

// ReservationFromRow maps a raw row onto the stored columns. Header aliases are
// resolved the same way the normalizer resolves them; other columns land in Extra.
func ReservationFromRow(row allocation.Row) Reservation {
	rec := allocation.Normalize([]allocation.Row{row})[0]
	res := Reservation{
		StartTime:    rec.StartTime,
		CustomerName: rec.CustomerName,
		AdultCount:   rawCell(row, allocation.ColAdultCount, "大人人数"),
		ChildCount:   rawCell(row, allocation.ColChildCount, "小人人数"),
		TotalPrice:   rawCell(row, allocation.ColTotalPrice, "総販売金額"),
		Status:       rec.Status,
		CheckedIn:    rec.CheckedIn,
		Extra:        rec.Extra,
	}
	if ref, ok := rec.Extra[ColExternalRef]; ok {
		delete(res.Extra, ColExternalRef)
		if ref = strings.TrimSpace(ref); ref != "" {
			res.ExternalRef = &ref
		}
	}
	if len(res.Extra) == 0 {
		res.Extra = nil
	}
	return res
}

func rawCell(row allocation.Row, keys ...string) string {
	for _, want := range keys {
		for k, v := range row {
			if strings.TrimSpace(k) == want {
				return strings.TrimSpace(v)
			}
		}
	}
	return ""
}
