package service

import (
	"context"
	"fmt"
	"time"

	"maareeye-hospital/internal/domain/entity"
	"maareeye-hospital/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedService loads a small set of sample rows into an empty database.
type SeedService interface {
	// Seed inserts the sample data unless at least one hospital exists.
	// It reports whether anything was written.
	Seed(ctx context.Context) (bool, error)
}

type seedService struct {
	db           *gorm.DB
	log          *logrus.Logger
	hospitalRepo repository.HospitalRepository
	now          func() time.Time
}

func NewSeedService(db *gorm.DB, log *logrus.Logger, hospitalRepo repository.HospitalRepository) SeedService {
	return &seedService{
		db:           db,
		log:          log,
		hospitalRepo: hospitalRepo,
		now:          time.Now,
	}
}

type samplePatient struct {
	name        string
	email       string
	phone       string
	dateOfBirth time.Time
}

var sampleDoctors = []entity.Doctor{
	{Name: "Dr. Ahmed Hassan", Specialty: "Cardiology", Phone: "+252-1-111111", Email: "ahmed@maareeye.com"},
	{Name: "Dr. Fatima Mohamed", Specialty: "Pediatrics", Phone: "+252-1-222222", Email: "fatima@maareeye.com"},
	{Name: "Dr. Mohamed Ali", Specialty: "General Surgery", Phone: "+252-1-333333", Email: "mohamed@maareeye.com"},
}

var samplePatients = []samplePatient{
	{"Hassan Abdi", "hassan@example.com", "+252-1-444444", time.Date(1990, 1, 15, 0, 0, 0, 0, time.UTC)},
	{"Amina Ahmed", "amina@example.com", "+252-1-555555", time.Date(1985, 6, 20, 0, 0, 0, 0, time.UTC)},
	{"Samir Ibrahim", "samir@example.com", "+252-1-666666", time.Date(1992, 3, 10, 0, 0, 0, 0, time.UTC)},
}

func (s *seedService) Seed(ctx context.Context) (bool, error) {
	count, err := s.hospitalRepo.Count(ctx)
	if err != nil {
		s.log.Warnf("Failed to count hospitals: %+v", err)
		return false, err
	}
	if count > 0 {
		s.log.Info("Database already has data, skipping seed")
		return false, nil
	}

	now := s.now().UTC()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		hospital := &entity.Hospital{
			Name:     "Maareeye Hospital",
			Location: "123 Main St, Mogadishu",
			Phone:    "+252-1-234567",
			Email:    "info@maareeye.com",
		}
		if err := tx.Create(hospital).Error; err != nil {
			return fmt.Errorf("seed hospital: %w", err)
		}

		doctors := make([]entity.Doctor, len(sampleDoctors))
		copy(doctors, sampleDoctors)
		for i := range doctors {
			doctors[i].HospitalID = hospital.ID
		}
		if err := tx.Create(&doctors).Error; err != nil {
			return fmt.Errorf("seed doctors: %w", err)
		}

		patients := make([]entity.Patient, len(samplePatients))
		for i, p := range samplePatients {
			patients[i] = entity.Patient{
				HospitalID: hospital.ID,
				Name:       p.name,
				Age:        int32(ageOn(p.dateOfBirth, now)),
				Phone:      p.phone,
				Email:      p.email,
				Address:    "Mogadishu",
			}
		}
		if err := tx.Create(&patients).Error; err != nil {
			return fmt.Errorf("seed patients: %w", err)
		}

		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		appointments := []entity.Appointment{
			{DoctorID: doctors[0].ID, PatientID: patients[0].ID, Date: today.Add(9 * time.Hour), Reason: "Regular checkup"},
			{DoctorID: doctors[0].ID, PatientID: patients[1].ID, Date: today.Add(10*time.Hour + 30*time.Minute), Reason: "Follow-up visit"},
			{DoctorID: doctors[1].ID, PatientID: patients[2].ID, Date: today.Add(14 * time.Hour), Reason: "Emergency visit"},
		}
		for i := range appointments {
			appointments[i].HospitalID = hospital.ID
			appointments[i].Status = entity.AppointmentStatusScheduled
		}
		if err := tx.Create(&appointments).Error; err != nil {
			return fmt.Errorf("seed appointments: %w", err)
		}

		return nil
	})
	if err != nil {
		s.log.Warnf("Failed to seed database: %+v", err)
		return false, err
	}

	s.log.Info("Database seeded with sample data")
	return true, nil
}

// ageOn returns the age in whole years on the given day.
func ageOn(dateOfBirth, day time.Time) int {
	age := day.Year() - dateOfBirth.Year()
	if day.Month() < dateOfBirth.Month() || (day.Month() == dateOfBirth.Month() && day.Day() < dateOfBirth.Day()) {
		age--
	}
	return age
}
