package dictionary

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lemraya/lemraya-api/internal/platform/apperr"
	requestutil "github.com/lemraya/lemraya-api/internal/platform/request"
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
	router.Get("/", handler.search)
	router.Get("/{id}", handler.getByID)
	return router
}

// search handles GET /api/dictionary?articleId={id}&term={term}.
func (handler *Handler) search(w http.ResponseWriter, r *http.Request) {
	articleID, ok, err := requestutil.IntQuery(r, "articleId")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if !ok {
		respond.Error(w, r, apperr.ValidationError("Article ID is required"))
		return
	}

	filter := Filter{
		ArticleID: &articleID,
		Term:      r.URL.Query().Get("term"),
	}

	entries, err := handler.service.Search(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, entries)
}

// getByID handles GET /api/dictionary/{id}?articleId={id}&term={term}.
//
// Same payload shape and shaping rules as search, scoped to one entry id.
func (handler *Handler) getByID(w http.ResponseWriter, r *http.Request) {
	entryID, err := requestutil.IntParam(r, "id")
	if err != nil {
		respond.Error(w, r, apperr.ValidationError("Invalid dictionary entry ID"))
		return
	}

	filter := Filter{
		EntryID: &entryID,
		Term:    r.URL.Query().Get("term"),
	}
	if articleID, ok, err := requestutil.IntQuery(r, "articleId"); err != nil {
		respond.Error(w, r, err)
		return
	} else if ok {
		filter.ArticleID = &articleID
	}

	entries, err := handler.service.Search(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, entries)
}
