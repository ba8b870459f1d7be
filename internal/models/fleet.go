package models

import "time"

// FleetSettingID is the primary key of the single stored fleet row.
const FleetSettingID = 1

// FleetSetting holds the day's vehicle stock as last set by an operator.
type FleetSetting struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	TwoSeatStock int       `gorm:"not null" json:"two_seat_stock"`
	OneSeatStock int       `gorm:"not null" json:"one_seat_stock"`
	UpdatedAt    time.Time `json:"updated_at"`
}
