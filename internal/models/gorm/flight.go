package gorm

import (
	"skyward/reservations/internal/constants"
	"time"
)

// Flight is the persisted flight listing. Column names match the legacy
// schema (dep_city / arr_city / dep_dt / arr_dt / img).
type Flight struct {
	ID                uint                   `gorm:"column:id;primaryKey;autoIncrement"`
	Airline           string                 `gorm:"column:airline;size:100;not null"`
	Type              string                 `gorm:"column:type;size:50;not null"`
	Price             float64                `gorm:"column:price;not null"`
	DepartureCity     string                 `gorm:"column:dep_city;size:100;not null;index:idx_dep_city"`
	ArrivalCity       string                 `gorm:"column:arr_city;size:100;not null;index:idx_arr_city"`
	DepartureDateTime time.Time              `gorm:"column:dep_dt;not null"`
	ArrivalDateTime   time.Time              `gorm:"column:arr_dt;not null"`
	Status            constants.FlightStatus `gorm:"column:status;size:20;not null;index:idx_status"`
	ImageURL          *string                `gorm:"column:img"`
	Email             string                 `gorm:"column:email;size:100;not null"`
	Version           int64                  `gorm:"column:version;not null;default:0"`
	CreatedAt         time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flights"
}
