package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mediavault/internal/api/choices"
	"mediavault/internal/api/dto"
	"mediavault/internal/api/models"
	"mediavault/internal/api/query"
	"mediavault/internal/api/service"
)

// MediaHandler serves the three media list/mutate surfaces. Books, films
// and series share every route shape; the mounted path fixes the kind.
type MediaHandler struct {
	svc service.MediaService
}

func NewMediaHandler(svc service.MediaService) *MediaHandler {
	return &MediaHandler{svc: svc}
}

var kindPaths = map[string]string{
	models.KindBook:   "/books",
	models.KindFilm:   "/films",
	models.KindSeries: "/series",
}

func (h *MediaHandler) RegisterRoutes(rg *gin.RouterGroup) {
	for kind, path := range kindPaths {
		kind := kind
		group := rg.Group(path)
		group.GET("", h.list(kind))
		group.GET("/new", h.prepopulate(kind))
		group.GET("/:id", h.get(kind))
		group.POST("", h.create(kind))
		group.PUT("/:id", h.update(kind))
		group.DELETE("/:id", h.delete(kind))
	}
}

// list handles e.g. GET /api/books?title=...&type=...&genres=...&creators=...&page=N
func (h *MediaHandler) list(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := h.svc.List(c.Request.Context(), kind, c.Request.URL.Query(), pageParam(c))
		if err != nil {
			renderError(c, err)
			return
		}

		data := make([]dto.MediaResponse, 0, len(result.Items))
		for _, m := range result.Items {
			data = append(data, dto.MediaFromModel(m))
		}

		resp := dto.MediaListResponse{
			Data: data,
			Pagination: dto.Pagination{
				Page:       result.Page,
				PageSize:   query.PageSize,
				Total:      result.Total,
				TotalPages: query.TotalPages(result.Total),
			},
			SearchForm:        dto.SearchFormState(result.Search),
			GenreFilterForm:   dto.FacetFormState(result.GenreFilter),
			CreatorFilterForm: dto.FacetFormState(result.CreatorFilter),
		}
		switch kind {
		case models.KindBook:
			resp.TypeChoices = choices.BookTypes.Labels()
		case models.KindSeries:
			resp.TypeChoices = choices.SeriesTypes.Labels()
			resp.StatusChoices = choices.Statuses.Labels()
		}
		c.JSON(http.StatusOK, resp)
	}
}

// prepopulate handles GET /api/books/new?genres=...&creators=...&type=...
// returning the initial create-form state derived from the hints.
func (h *MediaHandler) prepopulate(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		initial, err := h.svc.Prepopulate(c.Request.Context(), kind, c.Request.URL.Query())
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, initial)
	}
}

func (h *MediaHandler) get(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media id"})
			return
		}
		m, err := h.svc.Get(c.Request.Context(), kind, id)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MediaFromModel(*m))
	}
}

func (h *MediaHandler) create(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		username := c.GetString("username")

		var in dto.MediaInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		m, err := h.svc.Create(c.Request.Context(), kind, in, userID, username)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.MutateResponse{
			Data:        dto.MediaFromModel(*m),
			RedirectURL: "/api" + kindPaths[kind],
		})
	}
}

func (h *MediaHandler) update(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media id"})
			return
		}

		var in dto.MediaInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		m, err := h.svc.Update(c.Request.Context(), kind, id, in, userID)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MutateResponse{
			Data:        dto.MediaFromModel(*m),
			RedirectURL: "/api" + kindPaths[kind] + "/" + strconv.FormatInt(id, 10),
		})
	}
}

func (h *MediaHandler) delete(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media id"})
			return
		}
		if err := h.svc.Delete(c.Request.Context(), kind, id); err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":      "deleted",
			"redirect_url": "/api" + kindPaths[kind],
		})
	}
}
