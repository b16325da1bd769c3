package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"maareeye-hospital/internal/usecase"
	"maareeye-hospital/pkg/response"
	"maareeye-hospital/pkg/validator"

	"github.com/gorilla/mux"
)

// parseID reads the {id} path variable. It writes a 400 response and returns
// false unless the value is a positive integer.
func parseID(w http.ResponseWriter, r *http.Request, resource string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid "+resource+" ID")
		return 0, false
	}
	return id, true
}

// decodeRequest reads the JSON body into dst and validates it. On failure it
// writes a 400 response and returns false.
func decodeRequest(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		var timeErr *time.ParseError
		switch {
		case errors.As(err, &typeErr) && typeErr.Field != "":
			response.ValidationError(w, map[string]string{
				typeErr.Field: typeErr.Field + " must be of type " + typeErr.Type.String(),
			})
		case errors.As(err, &timeErr):
			response.ValidationError(w, map[string]string{
				"date": "date must be an ISO-8601 datetime",
			})
		case errors.Is(err, io.EOF):
			response.BadRequest(w, "Request body is empty")
		default:
			response.BadRequest(w, "Invalid request body")
		}
		return false
	}

	if err := v.Validate(dst); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}

	return true
}

// respondReferenceError writes the 400 for a foreign key that points nowhere.
func respondReferenceError(w http.ResponseWriter, refErr *usecase.ReferenceError) {
	message := "Invalid pk - object does not exist."
	if refErr.ID != 0 {
		message = fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", refErr.ID)
	}
	response.Error(w, http.StatusBadRequest, "Invalid reference", map[string]string{refErr.Field: message})
}
