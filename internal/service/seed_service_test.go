package service

import (
	"context"
	"io"
	"testing"
	"time"

	"maareeye-hospital/internal/domain/entity"
	"maareeye-hospital/internal/infrastructure/database"
	"maareeye-hospital/internal/repository"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSeedService(t *testing.T) {
	ctx := context.Background()
	log := logrus.New()
	log.SetOutput(io.Discard)

	Convey("Given an empty database", t, func() {
		db, err := database.NewSQLiteConnection(":memory:", false)
		So(err, ShouldBeNil)
		So(database.AutoMigrate(db), ShouldBeNil)
		Reset(func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		})

		svc := NewSeedService(db, log, repository.NewHospitalRepository(db)).(*seedService)
		svc.now = func() time.Time { return time.Date(2025, 3, 9, 15, 0, 0, 0, time.UTC) }

		Convey("When seeding", func() {
			seeded, err := svc.Seed(ctx)
			So(err, ShouldBeNil)
			So(seeded, ShouldBeTrue)

			Convey("Then one hospital with three doctors, patients and appointments exists", func() {
				var hospitals, doctors, patients, appointments int64
				db.Model(&entity.Hospital{}).Count(&hospitals)
				db.Model(&entity.Doctor{}).Count(&doctors)
				db.Model(&entity.Patient{}).Count(&patients)
				db.Model(&entity.Appointment{}).Count(&appointments)

				So(hospitals, ShouldEqual, 1)
				So(doctors, ShouldEqual, 3)
				So(patients, ShouldEqual, 3)
				So(appointments, ShouldEqual, 3)
			})

			Convey("And appointments are scheduled for the seeding day", func() {
				var first entity.Appointment
				So(db.Order("id ASC").First(&first).Error, ShouldBeNil)
				So(first.Status, ShouldEqual, entity.AppointmentStatusScheduled)
				So(first.Date.Equal(time.Date(2025, 3, 9, 9, 0, 0, 0, time.UTC)), ShouldBeTrue)
			})

			Convey("And patient ages follow their birthdays", func() {
				var samir entity.Patient
				So(db.Where("name = ?", "Samir Ibrahim").First(&samir).Error, ShouldBeNil)
				So(samir.Age, ShouldEqual, 32)
			})

			Convey("And seeding again does nothing", func() {
				seeded, err := svc.Seed(ctx)
				So(err, ShouldBeNil)
				So(seeded, ShouldBeFalse)

				var hospitals int64
				db.Model(&entity.Hospital{}).Count(&hospitals)
				So(hospitals, ShouldEqual, 1)
			})
		})
	})
}

func TestAgeOn(t *testing.T) {
	Convey("ageOn counts completed years", t, func() {
		dob := time.Date(1990, 1, 15, 0, 0, 0, 0, time.UTC)

		So(ageOn(dob, time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)), ShouldEqual, 33)
		So(ageOn(dob, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)), ShouldEqual, 34)
		So(ageOn(dob, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)), ShouldEqual, 34)
	})
}
