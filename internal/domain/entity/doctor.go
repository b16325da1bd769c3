package entity

type Doctor struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	HospitalID int64  `gorm:"not null;index" json:"hospital_id"`
	Name       string `gorm:"type:varchar(255);not null" json:"name"`
	Specialty  string `gorm:"type:varchar(255);not null" json:"specialty"`
	Phone      string `gorm:"type:varchar(20);not null" json:"phone"`
	Email      string `gorm:"type:varchar(254);not null" json:"email"`

	// Relationships
	Hospital *Hospital `gorm:"foreignKey:HospitalID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Doctor) TableName() string {
	return "doctors"
}
