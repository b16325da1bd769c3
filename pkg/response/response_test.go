package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestJSON(t *testing.T) {
	Convey("Given a recorder", t, func() {
		w := httptest.NewRecorder()

		Convey("OK writes the payload without an envelope", func() {
			OK(w, map[string]int{"id": 1})

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldEqual, "application/json")
			So(w.Body.String(), ShouldEqual, "{\"id\":1}\n")
		})

		Convey("Created uses 201", func() {
			Created(w, []int{})
			So(w.Code, ShouldEqual, http.StatusCreated)
		})

		Convey("NoContent writes no body", func() {
			NoContent(w)
			So(w.Code, ShouldEqual, http.StatusNoContent)
			So(w.Body.Len(), ShouldEqual, 0)
		})
	})
}

func TestErrors(t *testing.T) {
	Convey("Given a recorder", t, func() {
		w := httptest.NewRecorder()
		var body ErrorBody

		Convey("ValidationError reports field messages with 400", func() {
			ValidationError(w, map[string]string{"name": "name is required"})

			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
			So(body.Status, ShouldEqual, StatusError)
			So(body.Message, ShouldEqual, "Validation failed")
			So(body.Errors["name"], ShouldEqual, "name is required")
		})

		Convey("NotFound falls back to a default message", func() {
			NotFound(w, "")

			So(w.Code, ShouldEqual, http.StatusNotFound)
			So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
			So(body.Message, ShouldEqual, "Resource not found")
			So(body.Errors, ShouldBeNil)
		})

		Convey("InternalServerError keeps the caller's message", func() {
			InternalServerError(w, "Failed to list doctors")

			So(w.Code, ShouldEqual, http.StatusInternalServerError)
			So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
			So(body.Message, ShouldEqual, "Failed to list doctors")
		})
	})
}
