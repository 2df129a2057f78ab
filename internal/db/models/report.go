package models

import "time"

// Report is a complaint or feedback message filed from the mobile app
type Report struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ReporterName string    `json:"reporterName" gorm:"index"`
	Subject      string    `json:"subject" gorm:"index"`
	Message      string    `json:"message" gorm:"type:text"`
	CreatedAt    time.Time `json:"createdAt" gorm:"index"`
}
