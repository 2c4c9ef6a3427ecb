package main

import (
	"net/http"

	"unilocal/internal/services"
)

// getCurrentUserHandler godoc
//
//	@Summary		Current user
//	@Description	Returns the signed-in user, including favorite place ids
//	@Tags			users
//	@Produce		json
//	@Success		200	{object}	users.User
//	@Failure		401	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/users/me [get]
func (app *application) getCurrentUserHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	if err := app.jsonResponse(w, http.StatusOK, user); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateProfilePayload struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Username *string `json:"username" validate:"omitempty,alphanum,min=3,max=30"`
	City     *string `json:"city" validate:"omitempty,max=100"`
}

// updateProfileHandler godoc
//
//	@Summary		Update profile
//	@Description	Updates name, username and city. Omitted fields keep their value.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		UpdateProfilePayload	true	"Fields to update"
//	@Success		200		{object}	users.User
//	@Failure		400		{object}	error
//	@Failure		409		{object}	error	"Username taken"
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/users/me [put]
func (app *application) updateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var payload UpdateProfilePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user, err := app.accounts.UpdateProfile(r.Context(), getUserFromContext(r), services.ProfileUpdate{
		Name:     payload.Name,
		Username: payload.Username,
		City:     payload.City,
	})
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, user); err != nil {
		app.internalServerError(w, r, err)
	}
}
