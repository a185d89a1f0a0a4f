package registry

import (
	"errors"
	"time"

	"credcheck/internal/db"
	"credcheck/internal/models"
	"credcheck/internal/verify"

	"gorm.io/gorm"
)

// Snapshot returns a read-only copy of the full registry for matching.
// Matching performs a full scan, so rows come back in primary-key order.
func Snapshot() ([]verify.RegistryRecord, error) {
	var rows []models.RegistryRecord
	if err := db.DB.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]verify.RegistryRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, verify.RegistryRecord{
			CertificateID: r.CertificateID,
			RollNo:        r.RollNo,
			Name:          r.Name,
			Course:        r.Course,
			IssuedOn:      r.IssuedOn,
			Marks:         r.Marks,
		})
	}
	return out, nil
}

// Publish upserts a record keyed by certificate id OR roll number. Returns
// true when a new row was created, false when an existing row was updated.
func Publish(rec *models.RegistryRecord) (bool, error) {
	var existing models.RegistryRecord
	err := db.DB.Where("certificate_id = ? OR roll_number = ?", rec.CertificateID, rec.RollNo).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec.TS = time.Now()
		if err := db.DB.Create(rec).Error; err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}

	existing.CertificateID = rec.CertificateID
	existing.RollNo = rec.RollNo
	existing.Name = rec.Name
	existing.Course = rec.Course
	existing.IssuedOn = rec.IssuedOn
	existing.Marks = rec.Marks
	existing.TS = time.Now()
	if err := db.DB.Save(&existing).Error; err != nil {
		return false, err
	}
	*rec = existing
	return false, nil
}

// Count reports the number of published records.
func Count() (int64, error) {
	var n int64
	err := db.DB.Model(&models.RegistryRecord{}).Count(&n).Error
	return n, err
}
