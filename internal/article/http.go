package article

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

// Routes returns the article endpoints, mounted under /api/article.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{id}", handler.getArticle)
	return router
}

// getArticle handles GET /api/article/{id}.
//
// Works for both authenticated and anonymous users (video preview).
func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid article ID"))
		return
	}

	payload, err := handler.service.GetArticle(request.Context(), articleID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, payload)
}
