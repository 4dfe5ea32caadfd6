package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mediavault/internal/api/dto"
	"mediavault/internal/api/query"
	"mediavault/internal/api/service"
)

type GenreHandler struct {
	svc service.GenreService
}

func NewGenreHandler(svc service.GenreService) *GenreHandler {
	return &GenreHandler{svc: svc}
}

func (h *GenreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	genres := rg.Group("/genres")
	genres.GET("", h.List)
	genres.GET("/:id", h.Get)
	genres.POST("", h.Create)
	genres.DELETE("/:id", h.Delete)
}

// List handles GET /api/genres?name=...&media=...&page=N. The media
// parameter switches the session's active kind, which drives both the
// media_count annotation and the redirect target.
func (h *GenreHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.svc.List(c.Request.Context(), userID, c.Request.URL.Query(), pageParam(c))
	if err != nil {
		renderError(c, err)
		return
	}

	data := make([]dto.GenreResponse, 0, len(result.Items))
	for _, g := range result.Items {
		data = append(data, dto.GenreFromModel(g))
	}
	c.JSON(http.StatusOK, dto.TrackedListResponse{
		Data: data,
		Pagination: dto.Pagination{
			Page:       result.Page,
			PageSize:   query.PageSize,
			Total:      result.Total,
			TotalPages: query.TotalPages(result.Total),
		},
		SearchForm:  dto.SearchFormState(result.Search),
		Media:       result.Media,
		RedirectURL: result.RedirectURL,
	})
}

func (h *GenreHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid genre id"})
		return
	}
	g, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.GenreFromModel(*g))
}

func (h *GenreHandler) Create(c *gin.Context) {
	var in dto.CreateGenreDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := h.svc.Create(c.Request.Context(), in.Name)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.GenreFromModel(*g))
}

func (h *GenreHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid genre id"})
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
