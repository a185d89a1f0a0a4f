package models

import "time"

// RegistryRecord is one institution-published certificate row. Either the
// certificate id or the roll number identifies a record; publish upserts on
// whichever matches first.
type RegistryRecord struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	CertificateID string    `gorm:"column:certificate_id;uniqueIndex" json:"certificateId"`
	RollNo        string    `gorm:"column:roll_number;index" json:"rollNo"`
	Name          string    `json:"name"`
	Course        string    `json:"course"`
	IssuedOn      string    `json:"issuedOn"`
	Marks         string    `json:"marks"`
	TS            time.Time `gorm:"column:ts;autoUpdateTime" json:"ts"`
}
