package main

import (
	"net/http"
)

// listFavoritesHandler godoc
//
//	@Summary		Favorite places
//	@Tags			favorites
//	@Produce		json
//	@Success		200	{array}	PlaceResponse
//	@Security		ApiKeyAuth
//	@Router			/users/me/favorites [get]
func (app *application) listFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	list := app.favorites.List(r.Context(), getUserFromContext(r))

	if err := app.jsonResponse(w, http.StatusOK, toPlaceResponses(list)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// addFavoriteHandler godoc
//
//	@Summary		Add a favorite
//	@Tags			favorites
//	@Param			placeID	path	int	true	"Place ID"
//	@Success		204
//	@Failure		404	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/users/me/favorites/{placeID} [put]
func (app *application) addFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	placeID, err := int64Param(r, "placeID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.favorites.Add(r.Context(), getUserFromContext(r), placeID); err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// removeFavoriteHandler godoc
//
//	@Summary		Remove a favorite
//	@Tags			favorites
//	@Param			placeID	path	int	true	"Place ID"
//	@Success		204
//	@Security		ApiKeyAuth
//	@Router			/users/me/favorites/{placeID} [delete]
func (app *application) removeFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	placeID, err := int64Param(r, "placeID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.favorites.Remove(r.Context(), getUserFromContext(r), placeID); err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// toggleFavoriteHandler godoc
//
//	@Summary		Toggle a favorite
//	@Description	Adds the place when it is not a favorite, removes it otherwise
//	@Tags			favorites
//	@Produce		json
//	@Param			placeID	path		int	true	"Place ID"
//	@Success		200		{object}	map[string]bool
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/users/me/favorites/{placeID}/toggle [post]
func (app *application) toggleFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	placeID, err := int64Param(r, "placeID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	favorite, err := app.favorites.Toggle(r.Context(), getUserFromContext(r), placeID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]bool{"favorite": favorite}); err != nil {
		app.internalServerError(w, r, err)
	}
}
