package validator

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type sample struct {
	Name  string `json:"name" validate:"required,max=5"`
	Age   *int   `json:"age" validate:"required,gte=0"`
	Owner int64  `json:"hospital_id" validate:"required,gt=0"`
	Notes string `json:"notes,omitempty" validate:"omitempty,min=2"`
}

func TestValidate(t *testing.T) {
	v := NewValidator()

	Convey("Given a struct missing every required field", t, func() {
		err := v.Validate(&sample{})

		Convey("Then each field is reported under its JSON name", func() {
			So(err, ShouldNotBeNil)
			errs := v.FormatValidationErrors(err)
			So(errs, ShouldResemble, map[string]string{
				"name":        "name is required",
				"age":         "age is required",
				"hospital_id": "hospital_id is required",
			})
		})
	})

	Convey("Given bounded fields out of range", t, func() {
		age := -1
		err := v.Validate(&sample{Name: "too long", Age: &age, Owner: 1, Notes: "x"})

		Convey("Then the bound is part of the message", func() {
			errs := v.FormatValidationErrors(err)
			So(errs["name"], ShouldEqual, "name must be at most 5 characters")
			So(errs["age"], ShouldEqual, "age must be greater than or equal to 0")
			So(errs["notes"], ShouldEqual, "notes must be at least 2 characters")
		})
	})

	Convey("Given a valid struct", t, func() {
		age := 0
		So(v.Validate(&sample{Name: "P1", Age: &age, Owner: 3}), ShouldBeNil)
	})

	Convey("Given an error that is not a validation error", t, func() {
		So(v.FormatValidationErrors(errors.New("boom")), ShouldBeEmpty)
	})
}
