package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	SubscriptionActive    = "ativa"
	SubscriptionOverdue   = "vencida"
	SubscriptionCancelled = "cancelada"
)

type Plan struct {
	ID     string  `gorm:"primaryKey;size:36" json:"id"`
	Name   string  `gorm:"size:255" json:"name"`
	Price  float64 `json:"price"`
	Active bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type Subscription struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	CustomerID  string    `gorm:"index;size:36;column:customer_id" json:"customer_id"`
	PlanID      string    `gorm:"index;size:36;column:plan_id" json:"plan_id"`
	StartDate   time.Time `gorm:"column:start_date" json:"start_date"`
	NextRenewal time.Time `gorm:"column:next_renewal" json:"next_renewal"`
	Status      string    `gorm:"size:32" json:"status"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type Payment struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	SubscriptionID string    `gorm:"index;size:36;column:subscription_id" json:"subscription_id"`
	Amount         float64   `json:"amount"`
	PaidAt         time.Time `gorm:"column:paid_at" json:"paid_at"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
