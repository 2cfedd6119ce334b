package news

import (
	"net/http"

	"news-api/internal/handler/http/pathutil"
	"news-api/internal/handler/http/respond"
)

// GetHandler serves GET /api/news/{id}.
type GetHandler struct {
	Svc Service
}

// ServeHTTP godoc
// @Summary      Get article
// @Description  Fetches a single article by its search-index document id.
// @Tags         news
// @Produce      json
// @Param        id   path      string  true  "Document id"
// @Success      200  {object}  entity.Article
// @Failure      400  {object}  respond.ErrorResponse  "Invalid id"
// @Failure      404  {object}  respond.ErrorResponse  "Article not found"
// @Failure      503  {object}  respond.ErrorResponse  "Search engine unavailable"
// @Router       /api/news/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ValidateDocumentID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	article, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.WriteError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, article)
}
