package info

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lemraya/lemraya-api/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/arabic-taatic-map", handler.letterMap)
	router.Get("/arabic-vowels", handler.vowelMethods)
	return router
}

// letterMap handles GET /api/info/arabic-taatic-map.
func (handler *Handler) letterMap(w http.ResponseWriter, r *http.Request) {
	payload, err := handler.service.LetterMap(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, payload)
}

// vowelMethods handles GET /api/info/arabic-vowels.
func (handler *Handler) vowelMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := handler.service.VowelMethods(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, methods)
}
