package preference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/lemraya/lemraya-api/internal/platform/request"
	"github.com/lemraya/lemraya-api/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the preference endpoints, mounted under /api/user behind
// required authentication.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/starred", handler.getStarred)
	router.Put("/starred", handler.replaceStarred)
	router.Get("/video-order", handler.getVideoOrder)
	router.Put("/video-order", handler.replaceVideoOrder)
	return router
}

// getStarred handles GET /api/user/starred.
func (handler *Handler) getStarred(w http.ResponseWriter, r *http.Request) {
	userID, err := requestutil.RequiredUserID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, handler.service.GetStarred(r.Context(), userID))
}

// replaceStarred handles PUT /api/user/starred.
func (handler *Handler) replaceStarred(w http.ResponseWriter, r *http.Request) {
	userID, err := requestutil.RequiredUserID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req ReplaceStarredRequest
	if err := requestutil.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	saved, err := handler.service.ReplaceStarred(r.Context(), userID, req)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, saved)
}

// getVideoOrder handles GET /api/user/video-order.
func (handler *Handler) getVideoOrder(w http.ResponseWriter, r *http.Request) {
	userID, err := requestutil.RequiredUserID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, handler.service.GetVideoOrder(r.Context(), userID))
}

// replaceVideoOrder handles PUT /api/user/video-order.
func (handler *Handler) replaceVideoOrder(w http.ResponseWriter, r *http.Request) {
	userID, err := requestutil.RequiredUserID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req ReplaceVideoOrderRequest
	if err := requestutil.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	saved, err := handler.service.ReplaceVideoOrder(r.Context(), userID, req)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, saved)
}
