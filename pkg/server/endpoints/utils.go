package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"boardhub/pkg/identity"
	"boardhub/pkg/server/store"
)

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithStoreError maps store errors onto the API's error taxonomy.
// Anything unrecognized becomes a 500 without leaking detail.
func respondWithStoreError(w http.ResponseWriter, err error) {
	var validationErr *store.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, store.ErrPermissionDenied):
		respondWithError(w, http.StatusForbidden, "Permission denied")
	case errors.As(err, &validationErr):
		respondWithError(w, http.StatusBadRequest, map[string]string{
			validationErr.Field: validationErr.Message,
		})
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// requireIdentity pulls the authenticated identity off the request context.
// Routes behind the auth middleware always have one; this guards direct
// handler invocations.
func requireIdentity(w http.ResponseWriter, r *http.Request) (*identity.Identity, bool) {
	ident, ok := identity.Get(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unable to determine identity")
		return nil, false
	}
	return ident, true
}

// pathID parses a numeric path variable. A non-numeric id reads as "no such
// resource", not a client syntax error.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, store.ErrNotFound
	}
	return id, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

// appearancePayload carries the three mutually exclusive appearance fields.
// Pointers distinguish "omitted" from "set to empty".
type appearancePayload struct {
	Image    *string `json:"image"`
	ImageURL *string `json:"image_url"`
	Color    *string `json:"color"`
}

// applyAppearance applies the payload to the target fields. Setting one
// field to a non-empty value clears the other two; setting more than one
// in the same request is rejected.
func applyAppearance(p appearancePayload, image, imageURL, color *string) error {
	set := 0
	if p.Image != nil && *p.Image != "" {
		set++
	}
	if p.ImageURL != nil && *p.ImageURL != "" {
		set++
	}
	if p.Color != nil && *p.Color != "" {
		set++
	}
	if set > 1 {
		return store.Invalid("appearance", "only one of image, image_url and color may be set")
	}

	switch {
	case p.Image != nil && *p.Image != "":
		*image, *imageURL, *color = *p.Image, "", ""
	case p.ImageURL != nil && *p.ImageURL != "":
		*image, *imageURL, *color = "", *p.ImageURL, ""
	case p.Color != nil && *p.Color != "":
		*image, *imageURL, *color = "", "", *p.Color
	default:
		// Explicit empties clear individually; omissions leave fields alone.
		if p.Image != nil {
			*image = ""
		}
		if p.ImageURL != nil {
			*imageURL = ""
		}
		if p.Color != nil {
			*color = ""
		}
	}
	return nil
}
