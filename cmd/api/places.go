package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"unilocal/internal/domain/places"
	"unilocal/internal/hours"
	"unilocal/internal/services"
)

// PlaceResponse is a place as the API returns it: the stored fields plus
// whether it is open right now.
type PlaceResponse struct {
	places.Place
	IsOpen bool `json:"is_open"`
}

func toPlaceResponse(p places.Place) PlaceResponse {
	return PlaceResponse{Place: p, IsOpen: hours.OpenNow(p.OpeningTime, p.ClosingTime)}
}

func toPlaceResponses(list []places.Place) []PlaceResponse {
	out := make([]PlaceResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPlaceResponse(p))
	}
	return out
}

type CreatePlacePayload struct {
	Name        string  `json:"name" validate:"required,max=120"`
	Description string  `json:"description" validate:"max=2000"`
	Category    string  `json:"category" validate:"required,category"`
	Latitude    float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64 `json:"longitude" validate:"gte=-180,lte=180"`
	PhoneNumber string  `json:"phone_number" validate:"max=30"`
	OpeningTime string  `json:"opening_time" validate:"omitempty,clock"`
	ClosingTime string  `json:"closing_time" validate:"omitempty,clock"`
}

const maxPlaceFormBytes = 40 << 20

// parsePlaceForm reads the "place" JSON field and the "images" files of a
// multipart request.
func parsePlaceForm(w http.ResponseWriter, r *http.Request, data any) ([]*multipart.FileHeader, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPlaceFormBytes)

	if err := r.ParseMultipartForm(maxPlaceFormBytes); err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}

	if err := json.Unmarshal([]byte(r.FormValue("place")), data); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	if err := Validate.Struct(data); err != nil {
		return nil, err
	}

	files := r.MultipartForm.File["images"]
	if len(files) > services.MaxPlaceImages {
		return nil, fmt.Errorf("maximum %d images allowed", services.MaxPlaceImages)
	}
	for _, fh := range files {
		if err := checkImageType(fh.Header.Get("Content-Type")); err != nil {
			return nil, fmt.Errorf("%s: %w", fh.Filename, err)
		}
	}

	return files, nil
}

// openUploads opens every file header. The returned close func must be
// called once the readers are consumed.
func openUploads(files []*multipart.FileHeader) ([]services.ImageUpload, func(), error) {
	opened := make([]multipart.File, 0, len(files))
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	uploads := make([]services.ImageUpload, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("open file: %w", err)
		}
		opened = append(opened, f)
		uploads = append(uploads, services.ImageUpload{
			Reader:      f,
			Size:        fh.Size,
			ContentType: fh.Header.Get("Content-Type"),
		})
	}
	return uploads, closeAll, nil
}

// createPlaceHandler godoc
//
//	@Summary		Create a place
//	@Description	Submits a place for moderation. Multipart form: "place" holds the JSON payload, "images" up to 7 files.
//	@Tags			places
//	@Accept			mpfd
//	@Produce		json
//	@Param			place	formData	string	true	"CreatePlacePayload as JSON"
//	@Param			images	formData	file	false	"Place images (max 7)"
//	@Success		201		{object}	PlaceResponse
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/places [post]
func (app *application) createPlaceHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	var payload CreatePlacePayload
	files, err := parsePlaceForm(w, r, &payload)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	uploads, closeUploads, err := openUploads(files)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	defer closeUploads()

	place := &places.Place{
		Name:        strings.TrimSpace(payload.Name),
		Description: payload.Description,
		Category:    places.Category(payload.Category),
		Latitude:    payload.Latitude,
		Longitude:   payload.Longitude,
		PhoneNumber: payload.PhoneNumber,
		OpeningTime: payload.OpeningTime,
		ClosingTime: payload.ClosingTime,
	}

	if err := app.places.Create(r.Context(), user.ID, place, uploads); err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, toPlaceResponse(*place)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listPlacesHandler godoc
//
//	@Summary		List or search approved places
//	@Description	Without filters returns every approved place. "q" matches names case-insensitively, "category" filters exactly.
//	@Tags			places
//	@Produce		json
//	@Param			q			query		string	false	"Name contains"
//	@Param			category	query		string	false	"restaurant, cafe, museum, hotel or fast_food"
//	@Success		200			{array}		PlaceResponse
//	@Failure		400			{object}	ErrorBadRequestResponse
//	@Router			/places [get]
func (app *application) listPlacesHandler(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	rawCategory := r.URL.Query().Get("category")

	var list []places.Place
	if q == "" && rawCategory == "" {
		list = app.places.ListApproved(r.Context())
	} else {
		filter := places.SearchFilter{Query: q}
		if rawCategory != "" {
			category := places.Category(rawCategory)
			if !category.Valid() {
				app.badRequestResponse(w, r, fmt.Errorf("unknown category %q", rawCategory))
				return
			}
			filter.Category = &category
		}
		list = app.places.Search(r.Context(), filter)
	}

	if err := app.jsonResponse(w, http.StatusOK, toPlaceResponses(list)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getPlaceHandler godoc
//
//	@Summary		Get a place
//	@Tags			places
//	@Produce		json
//	@Param			placeID	path		int	true	"Place ID"
//	@Success		200		{object}	PlaceResponse
//	@Failure		404		{object}	error
//	@Router			/places/{placeID} [get]
func (app *application) getPlaceHandler(w http.ResponseWriter, r *http.Request) {
	placeID, err := int64Param(r, "placeID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	place, err := app.places.Get(r.Context(), placeID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, toPlaceResponse(*place)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listMyPlacesHandler godoc
//
//	@Summary		Places I created
//	@Description	Every place created by the signed-in user, whatever its status
//	@Tags			places
//	@Produce		json
//	@Success		200	{array}	PlaceResponse
//	@Security		ApiKeyAuth
//	@Router			/places/mine [get]
func (app *application) listMyPlacesHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	list := app.places.ListMine(r.Context(), user.ID)
	if err := app.jsonResponse(w, http.StatusOK, toPlaceResponses(list)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deletePlaceHandler godoc
//
//	@Summary		Delete a place
//	@Description	Deletes a place created by the signed-in user, together with its reviews
//	@Tags			places
//	@Param			placeID	path	int	true	"Place ID"
//	@Success		204
//	@Failure		403	{object}	error
//	@Failure		404	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/places/{placeID} [delete]
func (app *application) deletePlaceHandler(w http.ResponseWriter, r *http.Request) {
	placeID, err := int64Param(r, "placeID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.places.Delete(r.Context(), getUserFromContext(r).ID, placeID); err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

const maxPhotoBytes = 8 << 20

var errNotAnImage = errors.New("only image uploads are allowed")

// checkImageType accepts a missing Content-Type; anything declared must be image/*.
func checkImageType(contentType string) error {
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return errNotAnImage
	}
	return nil
}

// readSingleImage pulls one file field out of a multipart request.
func readSingleImage(w http.ResponseWriter, r *http.Request, field string) (services.ImageUpload, func(), error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoBytes)
	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		return services.ImageUpload{}, nil, fmt.Errorf("parse form: %w", err)
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return services.ImageUpload{}, nil, fmt.Errorf("missing %q file: %w", field, err)
	}

	contentType := header.Header.Get("Content-Type")
	if err := checkImageType(contentType); err != nil {
		file.Close()
		return services.ImageUpload{}, nil, err
	}

	up := services.ImageUpload{Reader: file, Size: header.Size, ContentType: contentType}
	return up, func() { file.Close() }, nil
}

// addPlacePhotoHandler godoc
//
//	@Summary		Add a photo to a place
//	@Tags			places
//	@Accept			mpfd
//	@Produce		json
//	@Param			placeID	path		int		true	"Place ID"
//	@Param			photo	formData	file	true	"Photo"
//	@Success		201		{object}	map[string]string
//	@Failure		400		{object}	error
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/places/{placeID}/photos [post]
func (app *application) addPlacePhotoHandler(w http.ResponseWriter, r *http.Request) {
	placeID, err := int64Param(r, "placeID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	up, closeFile, err := readSingleImage(w, r, "photo")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	defer closeFile()

	url, err := app.places.AddPhoto(r.Context(), getUserFromContext(r).ID, placeID, up)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, map[string]string{"url": url}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// uploadImageHandler godoc
//
//	@Summary		Upload an image
//	@Description	Stores a standalone image and returns its URL
//	@Tags			images
//	@Accept			mpfd
//	@Produce		json
//	@Param			image	formData	file	true	"Image"
//	@Success		201		{object}	map[string]string
//	@Failure		400		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/images [post]
func (app *application) uploadImageHandler(w http.ResponseWriter, r *http.Request) {
	up, closeFile, err := readSingleImage(w, r, "image")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	defer closeFile()

	url, err := app.places.UploadImage(r.Context(), up)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, map[string]string{"url": url}); err != nil {
		app.internalServerError(w, r, err)
	}
}
