package entity

// Hospital is the root of the data model; every other row belongs to one.
type Hospital struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Location string `gorm:"type:varchar(255);not null" json:"location"`
	Phone    string `gorm:"type:varchar(20);not null" json:"phone"`
	Email    string `gorm:"type:varchar(254);not null" json:"email"`
}

func (Hospital) TableName() string {
	return "hospitals"
}
