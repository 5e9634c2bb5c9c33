package model

import (
	"time"
)

// SafeLocationModel is the GORM-specific struct for the 'safe_locations' table.
// One row per user; saves overwrite it.
type SafeLocationModel struct {
	UserID    string  `gorm:"type:varchar(128);primaryKey"`
	Latitude  float64 `gorm:"type:double precision;not null;check:chk_safe_locations_latitude,latitude BETWEEN -90 AND 90"`
	Longitude float64 `gorm:"type:double precision;not null;check:chk_safe_locations_longitude,longitude BETWEEN -180 AND 180"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SafeLocationModel) TableName() string {
	return "safe_locations"
}
