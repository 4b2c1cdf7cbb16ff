package verbtable

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

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.binyanLists)
	router.Get("/binyan", handler.conjugations)
	return router
}

// binyanLists handles GET /api/verb-tables.
func (handler *Handler) binyanLists(w http.ResponseWriter, r *http.Request) {
	lists, err := handler.service.BinyanLists(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, lists)
}

// conjugations handles GET /api/verb-tables/binyan?wazenId={id}.
func (handler *Handler) conjugations(w http.ResponseWriter, r *http.Request) {
	var wazenID *int64
	if id, ok, err := requestutil.IntQuery(r, "wazenId"); err != nil {
		respond.Error(w, r, err)
		return
	} else if ok {
		wazenID = &id
	}

	table, err := handler.service.Conjugations(r.Context(), wazenID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, table)
}
