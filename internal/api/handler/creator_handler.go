package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mediavault/internal/api/dto"
	"mediavault/internal/api/query"
	"mediavault/internal/api/service"
)

type CreatorHandler struct {
	svc service.CreatorService
}

func NewCreatorHandler(svc service.CreatorService) *CreatorHandler {
	return &CreatorHandler{svc: svc}
}

func (h *CreatorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	creators := rg.Group("/creators")
	creators.GET("", h.List)
	creators.GET("/:id", h.Get)
	creators.POST("", h.Create)
	creators.POST("/quick", h.QuickCreate)
	creators.DELETE("/:id", h.Delete)
}

// List handles GET /api/creators?first_name=...&media=...&page=N.
func (h *CreatorHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.svc.List(c.Request.Context(), userID, c.Request.URL.Query(), pageParam(c))
	if err != nil {
		renderError(c, err)
		return
	}

	data := make([]dto.CreatorResponse, 0, len(result.Items))
	for _, cr := range result.Items {
		data = append(data, dto.CreatorFromModel(cr))
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

func (h *CreatorHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid creator id"})
		return
	}
	cr, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CreatorFromModel(*cr))
}

func (h *CreatorHandler) Create(c *gin.Context) {
	var in dto.CreatorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cr, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatorFromModel(*cr))
}

// QuickCreate is the asynchronous-submission variant used from media forms:
// it always answers 200 with a success flag so the embedding form can stay
// on the page.
func (h *CreatorHandler) QuickCreate(c *gin.Context) {
	var in dto.CreatorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cr, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		if ve, ok := service.AsValidation(err); ok {
			c.JSON(http.StatusOK, dto.QuickCreateResponse{
				Success: false,
				Errors:  ve.Fields,
			})
			return
		}
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.QuickCreateResponse{
		Success: true,
		Author:  &dto.QuickAuthor{ID: cr.ID, Name: cr.FullName()},
	})
}

func (h *CreatorHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid creator id"})
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
