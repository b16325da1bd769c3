package entity

type Patient struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	HospitalID int64  `gorm:"not null;index" json:"hospital_id"`
	Name       string `gorm:"type:varchar(255);not null" json:"name"`
	Age        int32  `gorm:"not null" json:"age"`
	Phone      string `gorm:"type:varchar(20);not null" json:"phone"`
	Email      string `gorm:"type:varchar(254);not null" json:"email"`
	Address    string `gorm:"type:text;not null" json:"address"`

	// Relationships
	Hospital *Hospital `gorm:"foreignKey:HospitalID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Patient) TableName() string {
	return "patients"
}
