package repository

import (
	"context"
	"testing"
	"time"

	"maareeye-hospital/internal/domain/entity"
	"maareeye-hospital/internal/infrastructure/database"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCRUDRepository(t *testing.T) {
	ctx := context.Background()

	Convey("Given a migrated in-memory database", t, func() {
		db, err := database.NewSQLiteConnection(":memory:", false)
		So(err, ShouldBeNil)
		So(database.AutoMigrate(db), ShouldBeNil)
		Reset(func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		})

		hospitals := NewHospitalRepository(db)
		doctors := NewDoctorRepository(db)
		patients := NewPatientRepository(db)
		appointments := NewAppointmentRepository(db)

		Convey("When the tables are empty", func() {
			rows, err := hospitals.List(ctx)
			So(err, ShouldBeNil)
			So(rows, ShouldNotBeNil)
			So(rows, ShouldBeEmpty)

			missing, err := hospitals.FindByID(ctx, 1)
			So(err, ShouldBeNil)
			So(missing, ShouldBeNil)

			affected, err := hospitals.Delete(ctx, 1)
			So(err, ShouldBeNil)
			So(affected, ShouldEqual, 0)
		})

		Convey("When rows are created", func() {
			first := &entity.Hospital{Name: "A", Location: "L", Phone: "1", Email: "a@h.so"}
			second := &entity.Hospital{Name: "B", Location: "L", Phone: "2", Email: "b@h.so"}
			So(hospitals.Create(ctx, first), ShouldBeNil)
			So(hospitals.Create(ctx, second), ShouldBeNil)

			Convey("Then ids are assigned in order", func() {
				So(first.ID, ShouldEqual, 1)
				So(second.ID, ShouldEqual, 2)

				rows, err := hospitals.List(ctx)
				So(err, ShouldBeNil)
				So(len(rows), ShouldEqual, 2)
				So(rows[0].Name, ShouldEqual, "A")

				total, err := hospitals.Count(ctx)
				So(err, ShouldBeNil)
				So(total, ShouldEqual, 2)
			})

			Convey("And an update is persisted", func() {
				first.Phone = "252-61"
				affected, err := hospitals.Update(ctx, first)
				So(err, ShouldBeNil)
				So(affected, ShouldEqual, 1)

				got, err := hospitals.FindByID(ctx, first.ID)
				So(err, ShouldBeNil)
				So(got.Phone, ShouldEqual, "252-61")
				So(got.Name, ShouldEqual, "A")
			})

			Convey("And updating a row deleted after it was loaded writes nothing", func() {
				loaded, err := hospitals.FindByID(ctx, first.ID)
				So(err, ShouldBeNil)

				deleted, err := hospitals.Delete(ctx, first.ID)
				So(err, ShouldBeNil)
				So(deleted, ShouldEqual, 1)

				loaded.Name = "Renamed"
				affected, err := hospitals.Update(ctx, loaded)
				So(err, ShouldBeNil)
				So(affected, ShouldEqual, 0)

				gone, err := hospitals.FindByID(ctx, first.ID)
				So(err, ShouldBeNil)
				So(gone, ShouldBeNil)

				total, err := hospitals.Count(ctx)
				So(err, ShouldBeNil)
				So(total, ShouldEqual, 1)
			})
		})

		Convey("When a doctor references a missing hospital", func() {
			err := doctors.Create(ctx, &entity.Doctor{HospitalID: 42, Name: "D", Specialty: "S", Phone: "1", Email: "d@h.so"})

			Convey("Then the database rejects it", func() {
				So(err, ShouldNotBeNil)

				rows, _ := doctors.List(ctx)
				So(rows, ShouldBeEmpty)
			})
		})

		Convey("When a hospital with dependents is deleted", func() {
			hospital := &entity.Hospital{Name: "H", Location: "L", Phone: "1", Email: "h@h.so"}
			So(hospitals.Create(ctx, hospital), ShouldBeNil)
			doctor := &entity.Doctor{HospitalID: hospital.ID, Name: "D", Specialty: "S", Phone: "1", Email: "d@h.so"}
			So(doctors.Create(ctx, doctor), ShouldBeNil)
			patient := &entity.Patient{HospitalID: hospital.ID, Name: "P", Age: 3, Phone: "1", Email: "p@h.so", Address: "A"}
			So(patients.Create(ctx, patient), ShouldBeNil)
			So(appointments.Create(ctx, &entity.Appointment{
				DoctorID: doctor.ID, PatientID: patient.ID, HospitalID: hospital.ID,
				Date: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), Reason: "checkup", Status: entity.AppointmentStatusScheduled,
			}), ShouldBeNil)

			affected, err := hospitals.Delete(ctx, hospital.ID)

			Convey("Then every dependent row is removed with it", func() {
				So(err, ShouldBeNil)
				So(affected, ShouldEqual, 1)

				d, _ := doctors.List(ctx)
				p, _ := patients.List(ctx)
				a, _ := appointments.List(ctx)
				So(d, ShouldBeEmpty)
				So(p, ShouldBeEmpty)
				So(a, ShouldBeEmpty)
			})
		})
	})
}
