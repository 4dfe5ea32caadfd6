package dto

import "mediavault/internal/api/models"

type CreateGenreDTO struct {
	Name string `json:"name" binding:"required"`
}

type GenreResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	MediaCount int64  `json:"media_count"`
}

func GenreFromModel(g models.Genre) GenreResponse {
	return GenreResponse{
		ID:         g.ID,
		Name:       g.Name,
		MediaCount: g.MediaCount,
	}
}
