package usecase

import (
	"context"
	"errors"
	"testing"

	"maareeye-hospital/internal/delivery/dto"

	. "github.com/smartystreets/goconvey/convey"
)

func TestHospitalUsecase(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty hospital store", t, func() {
		hospitals := newFakeHospitals()
		uc := NewHospitalUsecase(quietLogger(), hospitals)

		Convey("When creating a hospital", func() {
			created, err := uc.CreateHospital(ctx, &dto.CreateHospitalRequest{
				Name: "H1", Location: "L", Phone: "1", Email: "a@b.c",
			})

			Convey("Then it gets an id and can be fetched back", func() {
				So(err, ShouldBeNil)
				So(created.ID, ShouldEqual, 1)

				got, err := uc.GetHospital(ctx, created.ID)
				So(err, ShouldBeNil)
				So(got, ShouldResemble, created)
			})

			Convey("And a partial update changes only the given field", func() {
				updated, err := uc.UpdateHospital(ctx, created.ID, &dto.UpdateHospitalRequest{Phone: ptr("252-61")})
				So(err, ShouldBeNil)
				So(updated.Phone, ShouldEqual, "252-61")
				So(updated.Name, ShouldEqual, "H1")
				So(updated.Email, ShouldEqual, "a@b.c")
			})

			Convey("And an update of a row removed after it was read reports not found", func() {
				hospitals.vanish = true
				_, err := uc.UpdateHospital(ctx, created.ID, &dto.UpdateHospitalRequest{Name: ptr("H2")})
				So(err, ShouldEqual, ErrHospitalNotFound)
				So(hospitals.rows[created.ID].Name, ShouldEqual, "H1")
			})

			Convey("And deleting it twice reports not found the second time", func() {
				So(uc.DeleteHospital(ctx, created.ID), ShouldBeNil)
				So(uc.DeleteHospital(ctx, created.ID), ShouldEqual, ErrHospitalNotFound)
			})
		})

		Convey("When listing with no rows", func() {
			list, err := uc.GetAllHospitals(ctx)

			Convey("Then an empty list is returned", func() {
				So(err, ShouldBeNil)
				So(list, ShouldNotBeNil)
				So(list, ShouldBeEmpty)
			})
		})

		Convey("When listing several rows", func() {
			for _, name := range []string{"A", "B", "C"} {
				_, err := uc.CreateHospital(ctx, &dto.CreateHospitalRequest{Name: name, Location: "L", Phone: "1", Email: "e"})
				So(err, ShouldBeNil)
			}
			list, err := uc.GetAllHospitals(ctx)

			Convey("Then they come back in id order", func() {
				So(err, ShouldBeNil)
				So(len(list), ShouldEqual, 3)
				So(list[0].Name, ShouldEqual, "A")
				So(list[2].Name, ShouldEqual, "C")
			})
		})

		Convey("When the id does not exist", func() {
			_, getErr := uc.GetHospital(ctx, 42)
			_, updateErr := uc.UpdateHospital(ctx, 42, &dto.UpdateHospitalRequest{Name: ptr("x")})

			Convey("Then every operation reports not found and nothing is written", func() {
				So(getErr, ShouldEqual, ErrHospitalNotFound)
				So(updateErr, ShouldEqual, ErrHospitalNotFound)
				So(hospitals.writes, ShouldEqual, 0)
			})
		})

		Convey("When the store fails", func() {
			hospitals.err = errors.New("connection refused")
			_, err := uc.GetAllHospitals(ctx)

			Convey("Then the error is passed through", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldEqual, "connection refused")
			})
		})
	})
}
