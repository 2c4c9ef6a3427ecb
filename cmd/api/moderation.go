package main

import (
	"fmt"
	"net/http"

	"unilocal/internal/domain/places"
)

// listModerationPlacesHandler godoc
//
//	@Summary		Places by moderation status
//	@Tags			moderation
//	@Produce		json
//	@Param			status	query		string	false	"pending (default), approved or rejected"
//	@Success		200		{array}		PlaceResponse
//	@Failure		400		{object}	error
//	@Failure		403		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/moderation/places [get]
func (app *application) listModerationPlacesHandler(w http.ResponseWriter, r *http.Request) {
	status := places.StatusPending
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = places.Status(raw)
		if !status.Valid() {
			app.badRequestResponse(w, r, fmt.Errorf("unknown status %q", raw))
			return
		}
	}

	list := app.moderation.ListByStatus(r.Context(), status)
	if err := app.jsonResponse(w, http.StatusOK, toPlaceResponses(list)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listApprovedByMeHandler godoc
//
//	@Summary		Places I approved
//	@Tags			moderation
//	@Produce		json
//	@Success		200	{array}		PlaceResponse
//	@Failure		403	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/moderation/places/approved [get]
func (app *application) listApprovedByMeHandler(w http.ResponseWriter, r *http.Request) {
	list := app.moderation.ListApprovedBy(r.Context(), getUserFromContext(r).ID)

	if err := app.jsonResponse(w, http.StatusOK, toPlaceResponses(list)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// approvePlaceHandler godoc
//
//	@Summary		Approve a place
//	@Description	pending to approved; approving an approved place again is a no-op
//	@Tags			moderation
//	@Produce		json
//	@Param			placeID	path		int	true	"Place ID"
//	@Success		200		{object}	PlaceResponse
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Failure		409		{object}	error	"Place already rejected"
//	@Security		ApiKeyAuth
//	@Router			/moderation/places/{placeID}/approve [post]
func (app *application) approvePlaceHandler(w http.ResponseWriter, r *http.Request) {
	app.decidePlace(w, r, places.StatusApproved)
}

// rejectPlaceHandler godoc
//
//	@Summary		Reject a place
//	@Description	pending to rejected; rejecting a rejected place again is a no-op
//	@Tags			moderation
//	@Produce		json
//	@Param			placeID	path		int	true	"Place ID"
//	@Success		200		{object}	PlaceResponse
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Failure		409		{object}	error	"Place already approved"
//	@Security		ApiKeyAuth
//	@Router			/moderation/places/{placeID}/reject [post]
func (app *application) rejectPlaceHandler(w http.ResponseWriter, r *http.Request) {
	app.decidePlace(w, r, places.StatusRejected)
}

func (app *application) decidePlace(w http.ResponseWriter, r *http.Request, to places.Status) {
	placeID, err := int64Param(r, "placeID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	moderatorID := getUserFromContext(r).ID

	var place *places.Place
	if to == places.StatusApproved {
		place, err = app.moderation.Approve(r.Context(), moderatorID, placeID)
	} else {
		place, err = app.moderation.Reject(r.Context(), moderatorID, placeID)
	}
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, toPlaceResponse(*place)); err != nil {
		app.internalServerError(w, r, err)
	}
}
