package models

import "time"

// VerificationLog records one completed verification for auditing and the
// CSV/XLSX exports. The extraction itself is not stored, only its keys.
type VerificationLog struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	TS            time.Time `gorm:"column:ts;index" json:"ts"`
	Verdict       string    `json:"verdict"`
	Score         int       `json:"score"`
	CertificateID string    `gorm:"column:certificate_id" json:"certificateId"`
	RollNo        string    `gorm:"column:roll_number" json:"rollNo"`
	Status        string    `json:"status"`
}
