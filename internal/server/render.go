package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/asaskevich/govalidator"
	"github.com/gorilla/mux"
	apperrors "github.com/orgball2608/mini-insta/pkg/errors"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.Logger.Error("Request failed", "method", r.Method, "url", r.URL.String(), "error", err)
		writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}

	s.Logger.Debug("Request rejected", "method", r.Method, "url", r.URL.String(), "status", status, "error", err)
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// decodeForm reads a JSON body into form, normalizes it and runs its govalidator tags.
func decodeForm(w http.ResponseWriter, r *http.Request, form normalizer) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(form); err != nil {
		return apperrors.Invalid("malformed request body")
	}

	form.normalize()

	if _, err := govalidator.ValidateStruct(form); err != nil {
		return apperrors.Invalid(err.Error())
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, apperrors.Invalid("id must be a number")
	}
	return id, nil
}
