package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mediavault/internal/api/dto"
	"mediavault/internal/api/query"
	"mediavault/internal/api/service"
)

type RatingHandler struct {
	svc service.RatingService
}

func NewRatingHandler(svc service.RatingService) *RatingHandler {
	return &RatingHandler{svc: svc}
}

func (h *RatingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ratings := rg.Group("/ratings")
	ratings.GET("", h.List)
	ratings.GET("/:id", h.Get)
	ratings.POST("", h.Create)
	ratings.PUT("/:id", h.Update)
	ratings.DELETE("/:id", h.Delete)
}

// List handles GET /api/ratings?title=...&media=...&page=N, visible
// ratings of the active media kind only.
func (h *RatingHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.svc.List(c.Request.Context(), userID, c.Request.URL.Query(), pageParam(c))
	if err != nil {
		renderError(c, err)
		return
	}

	data := make([]dto.RatingResponse, 0, len(result.Items))
	for _, r := range result.Items {
		data = append(data, dto.RatingFromModel(r))
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

func (h *RatingHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating id"})
		return
	}
	r, err := h.svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RatingFromModel(*r))
}

// Create handles POST /api/ratings. A second rating for the same media by
// the same user fails with a field error on media.
func (h *RatingHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var in dto.RatingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r, err := h.svc.Create(c.Request.Context(), userID, in)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MutateResponse{
		Data:        dto.RatingFromModel(*r),
		RedirectURL: "/api/ratings",
	})
}

// Update handles PUT /api/ratings/:id?next=&user_id=. The next/user_id
// pair redirects back to the originating user's detail page.
func (h *RatingHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating id"})
		return
	}

	var in dto.RatingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r, err := h.svc.Update(c.Request.Context(), userID, id, in)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MutateResponse{
		Data:        dto.RatingFromModel(*r),
		RedirectURL: h.svc.RedirectURL(id, c.Request.URL.Query()),
	})
}

func (h *RatingHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating id"})
		return
	}
	if err := h.svc.Delete(c.Request.Context(), userID, id); err != nil {
		renderError(c, err)
		return
	}
	redirect := c.Query("next")
	if redirect == "" {
		redirect = "/api/ratings"
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted", "redirect_url": redirect})
}
