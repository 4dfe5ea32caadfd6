package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mediavault/internal/api/dto"
	"mediavault/internal/api/query"
	"mediavault/internal/api/service"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.GET("", h.List)
	users.GET("/:id", h.Get)
	users.PUT("/me", h.Update)
	users.DELETE("/me", h.Delete)
}

// List handles GET /api/users?username=...&page=N.
func (h *UserHandler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), c.Request.URL.Query(), pageParam(c))
	if err != nil {
		renderError(c, err)
		return
	}

	data := make([]dto.UserResponse, 0, len(result.Items))
	for _, u := range result.Items {
		data = append(data, dto.UserFromModel(u))
	}
	c.JSON(http.StatusOK, gin.H{
		"data": data,
		"pagination": dto.Pagination{
			Page:       result.Page,
			PageSize:   query.PageSize,
			Total:      result.Total,
			TotalPages: query.TotalPages(result.Total),
		},
		"search_form": dto.SearchFormState(result.Search),
	})
}

// Get shows a user with their ratings; hidden ratings only when viewing
// yourself.
func (h *UserHandler) Get(c *gin.Context) {
	viewerID, ok := currentUserID(c)
	if !ok {
		return
	}
	u, err := h.svc.Get(c.Request.Context(), viewerID, c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserFromModel(*u))
}

// Update changes the authenticated user's own username and password. The
// client is expected to drop its tokens afterwards and log in again.
func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var in dto.UserUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.svc.Update(c.Request.Context(), userID, in)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MutateResponse{
		Data:        dto.UserFromModel(*u),
		RedirectURL: "/api/auth/login",
	})
}

func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), userID); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted", "redirect_url": "/api/users"})
}
