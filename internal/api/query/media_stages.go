package query

import (
	"gorm.io/gorm"

	"mediavault/internal/api/forms"
	"mediavault/internal/api/models"
)

// ReviewStats annotates each media row with the count and mean score of its
// visible ratings. Correlated subqueries keep the aggregates stable when
// facet predicates are stacked on top; a row with no visible scored rating
// gets a NULL average, not zero.
func ReviewStats() Stage {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Select(`media.*,
			(SELECT COUNT(*) FROM user_media_ratings r
				WHERE r.media_id = media.id AND NOT r.is_hidden) AS reviews_num,
			(SELECT AVG(r.score) FROM user_media_ratings r
				WHERE r.media_id = media.id AND NOT r.is_hidden AND r.score IS NOT NULL) AS reviews_avg`)
	}
}

// PreloadAssociations eagerly fetches the relations the rendering layer
// walks, so a page of ten rows stays at a handful of queries.
func PreloadAssociations() Stage {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Preload("Genres").Preload("Creators").Preload("Ratings")
	}
}

// GenreFacet narrows media to rows carrying any of the selected genre names.
// An unbound or invalid form applies nothing.
func GenreFacet(form *forms.FacetForm) Stage {
	return func(tx *gorm.DB) *gorm.DB {
		names := form.Values()
		if len(names) == 0 {
			return tx
		}
		return tx.Where(`EXISTS (SELECT 1 FROM media_genres mg
			JOIN genres g ON g.id = mg.genre_id
			WHERE mg.media_id = media.id AND g.name IN ?)`, names)
	}
}

// CreatorFacet narrows media to rows owned by any creator with a selected
// first name.
func CreatorFacet(form *forms.FacetForm) Stage {
	return func(tx *gorm.DB) *gorm.DB {
		names := form.Values()
		if len(names) == 0 {
			return tx
		}
		return tx.Where(`EXISTS (SELECT 1 FROM media_creators mc
			JOIN creators c ON c.id = mc.creator_id
			WHERE mc.media_id = media.id AND c.first_name IN ?)`, names)
	}
}

// kindPredicate builds the media-kind condition for an aliased media table.
// The virtual kinds comic and anime narrow book/series by their stored
// subtype codes.
func kindPredicate(alias, kind string) (string, []interface{}) {
	switch kind {
	case "comic":
		return alias + ".media_kind = ? AND " + alias + ".book_type = ?",
			[]interface{}{models.KindBook, "CS"}
	case "anime":
		return alias + ".media_kind = ? AND " + alias + ".series_type = ?",
			[]interface{}{models.KindSeries, "AE"}
	case models.KindFilm:
		return alias + ".media_kind = ?", []interface{}{models.KindFilm}
	case models.KindSeries:
		return alias + ".media_kind = ?", []interface{}{models.KindSeries}
	default:
		return alias + ".media_kind = ?", []interface{}{models.KindBook}
	}
}

// GenreMediaCount annotates each genre with the number of media rows of the
// active kind attached to it.
func GenreMediaCount(kind string) Stage {
	pred, args := kindPredicate("m", kind)
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Select(`genres.*,
			(SELECT COUNT(*) FROM media_genres mg
				JOIN media m ON m.id = mg.media_id
				WHERE mg.genre_id = genres.id AND `+pred+`) AS media_count`, args...)
	}
}

// CreatorMediaCount annotates each creator with the number of media rows of
// the active kind attached to them.
func CreatorMediaCount(kind string) Stage {
	pred, args := kindPredicate("m", kind)
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Select(`creators.*,
			(SELECT COUNT(*) FROM media_creators mc
				JOIN media m ON m.id = mc.media_id
				WHERE mc.creator_id = creators.id AND `+pred+`) AS media_count`, args...)
	}
}

// VisibleRatings keeps only ratings not hidden by their author.
func VisibleRatings() Stage {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("user_media_ratings.is_hidden = ?", false)
	}
}

// RatingKind restricts ratings to media of the active kind.
func RatingKind(kind string) Stage {
	pred, args := kindPredicate("m", kind)
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(`EXISTS (SELECT 1 FROM media m
			WHERE m.id = user_media_ratings.media_id AND `+pred+`)`, args...)
	}
}

// RatingTitleSearch matches the rated media's title, the rating list's text
// field.
func RatingTitleSearch(form *forms.SearchForm) Stage {
	return func(tx *gorm.DB) *gorm.DB {
		q := form.Query()
		if q == "" {
			return tx
		}
		return tx.Where(`EXISTS (SELECT 1 FROM media m
			WHERE m.id = user_media_ratings.media_id AND m.title ILIKE ?)`, "%"+q+"%")
	}
}
