package entity

import "time"

// AppointmentStatusScheduled is stored when a new appointment omits its status.
const AppointmentStatusScheduled = "Scheduled"

type Appointment struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID   int64     `gorm:"not null;index" json:"doctor_id"`
	PatientID  int64     `gorm:"not null;index" json:"patient_id"`
	HospitalID int64     `gorm:"not null;index" json:"hospital_id"`
	Date       time.Time `gorm:"not null;index" json:"date"`
	Reason     string    `gorm:"type:text;not null" json:"reason"`
	Status     string    `gorm:"type:varchar(50);not null;default:'Scheduled'" json:"status"`

	// Relationships
	Doctor   *Doctor   `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Patient  *Patient  `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Hospital *Hospital `gorm:"foreignKey:HospitalID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Appointment) TableName() string {
	return "appointments"
}
