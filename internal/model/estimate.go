package model

import "time"

// Estimate is a saved electricity cost estimate.
type Estimate struct {
	ID                  int64     `gorm:"primaryKey" json:"id"`
	Device              string    `gorm:"size:128;not null;index" json:"device"`
	PowerSaving         bool      `gorm:"not null" json:"power_saving"`
	PowerWatts          int       `gorm:"not null" json:"power_watts"`
	EffectivePowerWatts float64   `gorm:"not null" json:"effective_power_watts"`
	HoursPerDay         float64   `gorm:"not null" json:"hours_per_day"`
	DaysPerMonth        int       `gorm:"not null" json:"days_per_month"`
	UnitPrice           float64   `gorm:"not null" json:"unit_price"`
	DailyEnergyKWh      float64   `gorm:"column:daily_energy_kwh;not null" json:"daily_energy_kwh"`
	MonthlyEnergyKWh    float64   `gorm:"column:monthly_energy_kwh;not null" json:"monthly_energy_kwh"`
	MonthlyCost         float64   `gorm:"not null" json:"monthly_cost"`
	Currency            string    `gorm:"size:8;not null" json:"currency"`
	CreatedAt           time.Time `gorm:"not null;index" json:"created_at"`
}

// DeviceSummary aggregates saved estimates for a single device.
type DeviceSummary struct {
	Device           string  `json:"device"`
	Count            int64   `json:"count"`
	MonthlyEnergyKWh float64 `gorm:"column:monthly_energy_kwh" json:"monthly_energy_kwh"`
	MonthlyCost      float64 `json:"monthly_cost"`
}
