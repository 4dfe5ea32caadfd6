package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mediavault/internal/api/dto"
	"mediavault/internal/api/repository"
)

func newDryRunService(t *testing.T) *mediaService {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: ""}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)
	return &mediaService{
		genreRepo:   repository.NewGenreRepo(db),
		creatorRepo: repository.NewCreatorRepo(db),
	}
}

func intPtr(v int) *int { return &v }

func TestBuildMedia_DescriptionCountsCharactersNotBytes(t *testing.T) {
	svc := newDryRunService(t)

	// 30 Cyrillic characters are 60 bytes; still under the 50-character
	// minimum
	_, err := svc.buildMedia(context.Background(), "book", dto.MediaInput{
		Title:       "Книга",
		Description: strings.Repeat("я", 30),
		Chapters:    intPtr(10),
		Type:        "TB",
	})
	verr, ok := AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "description")

	// 2500 CJK characters are 7500 bytes; within the 4000-character cap
	_, err = svc.buildMedia(context.Background(), "book", dto.MediaInput{
		Title:       "Book",
		Description: strings.Repeat("あ", 2500),
		Chapters:    intPtr(10),
		Type:        "TB",
	})
	if verr, ok := AsValidation(err); ok {
		assert.NotContains(t, verr.Fields, "description")
	}
}

func TestBuildMedia_DescriptionBounds(t *testing.T) {
	svc := newDryRunService(t)

	_, err := svc.buildMedia(context.Background(), "book", dto.MediaInput{
		Title:       "Book",
		Description: strings.Repeat("я", 49),
		Chapters:    intPtr(10),
		Type:        "TB",
	})
	verr, ok := AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, []string{"Description must be at least 50 symbols"}, verr.Fields["description"])

	_, err = svc.buildMedia(context.Background(), "book", dto.MediaInput{
		Title:       "Book",
		Description: strings.Repeat("あ", 4001),
		Chapters:    intPtr(10),
		Type:        "TB",
	})
	verr, ok = AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, []string{"Description must be less than 4000 symbols"}, verr.Fields["description"])
}
