package main

import (
	"net/http"
	"strings"
)

type CreateReviewPayload struct {
	Body  string `json:"body" validate:"required,max=1000"`
	Score int    `json:"score" validate:"required,min=1,max=5"`
}

// createReviewHandler godoc
//
//	@Summary		Review a place
//	@Description	Adds a review and refreshes the place's average rating
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			placeID	path		int					true	"Place ID"
//	@Param			payload	body		CreateReviewPayload	true	"Review"
//	@Success		201		{object}	reviews.Review
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/places/{placeID}/reviews [post]
func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	placeID, err := int64Param(r, "placeID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload CreateReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	payload.Body = strings.TrimSpace(payload.Body)
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	review, err := app.reviews.AddReview(r.Context(), getUserFromContext(r), placeID, payload.Body, payload.Score)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, review); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listReviewsHandler godoc
//
//	@Summary		Reviews of a place
//	@Description	Newest first
//	@Tags			reviews
//	@Produce		json
//	@Param			placeID	path	int	true	"Place ID"
//	@Success		200		{array}	reviews.Review
//	@Router			/places/{placeID}/reviews [get]
func (app *application) listReviewsHandler(w http.ResponseWriter, r *http.Request) {
	placeID, err := int64Param(r, "placeID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	list := app.reviews.ListByPlace(r.Context(), placeID)
	if err := app.jsonResponse(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}

type ReplyPayload struct {
	Reply string `json:"reply" validate:"required,max=1000"`
}

// replyReviewHandler godoc
//
//	@Summary		Reply to a review
//	@Description	The place's creator or a moderator can reply once per review
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			placeID		path		int				true	"Place ID"
//	@Param			reviewID	path		int				true	"Review ID"
//	@Param			payload		body		ReplyPayload	true	"Reply"
//	@Success		200			{object}	reviews.Review
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Failure		409			{object}	error	"Already replied"
//	@Security		ApiKeyAuth
//	@Router			/places/{placeID}/reviews/{reviewID}/reply [put]
func (app *application) replyReviewHandler(w http.ResponseWriter, r *http.Request) {
	placeID, err := int64Param(r, "placeID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	reviewID, err := int64Param(r, "reviewID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload ReplyPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	payload.Reply = strings.TrimSpace(payload.Reply)
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	review, err := app.reviews.Reply(r.Context(), getUserFromContext(r), placeID, reviewID, payload.Reply)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, review); err != nil {
		app.internalServerError(w, r, err)
	}
}
