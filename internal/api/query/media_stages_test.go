package query

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mediavault/internal/api/forms"
	"mediavault/internal/api/models"
)

// newDryRunDB opens a gorm session that builds SQL without touching a
// database, so stage composition can be asserted on the generated query.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: ""}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)
	return db
}

func buildSQL(t *testing.T, p Pipeline) (string, []interface{}) {
	t.Helper()
	var list []models.Media
	tx := p.Apply(newDryRunDB(t).Model(&models.Media{})).Find(&list)
	require.NoError(t, tx.Error)
	return tx.Statement.SQL.String(), tx.Statement.Vars
}

func TestKindAndSearchCompose(t *testing.T) {
	search := forms.NewSearchForm("title", url.Values{"title": {"dune"}})

	sql, vars := buildSQL(t, Pipeline{Kind("book"), Search("media.title", search)})

	assert.Contains(t, sql, "media.media_kind = ")
	assert.Contains(t, sql, "media.title ILIKE ")
	assert.Contains(t, vars, "book")
	assert.Contains(t, vars, "%dune%")
}

func TestSearchBlankAddsNoClause(t *testing.T) {
	search := forms.NewSearchForm("title", url.Values{})

	sql, _ := buildSQL(t, Pipeline{Kind("book"), Search("media.title", search)})

	assert.NotContains(t, sql, "ILIKE")
}

func TestCodeEmptyNeverNarrows(t *testing.T) {
	sql, _ := buildSQL(t, Pipeline{Kind("series"), Code("media.status", "")})

	assert.NotContains(t, sql, "media.status")
}

func TestCodeAppliesExactMatch(t *testing.T) {
	sql, vars := buildSQL(t, Pipeline{Kind("series"), Code("media.status", "IP")})

	assert.Contains(t, sql, "media.status = ")
	assert.Contains(t, vars, "IP")
}

func TestFacetsComposeConjunctively(t *testing.T) {
	params := url.Values{"genres": {"Fantasy"}, "creators": {"Frank"}}
	genreForm := forms.NewFacetForm("genres", []string{"Fantasy"}, params)
	creatorForm := forms.NewFacetForm("creators", []string{"Frank"}, params)

	sql, _ := buildSQL(t, Pipeline{
		Kind("book"),
		GenreFacet(genreForm),
		CreatorFacet(creatorForm),
	})

	genreIdx := strings.Index(sql, "media_genres")
	creatorIdx := strings.Index(sql, "media_creators")
	assert.Greater(t, genreIdx, -1)
	assert.Greater(t, creatorIdx, -1)
	assert.Contains(t, sql[genreIdx:creatorIdx], " AND ")
}

func TestInvalidFacetAddsNoClause(t *testing.T) {
	params := url.Values{"genres": {"NoSuchGenre"}}
	genreForm := forms.NewFacetForm("genres", []string{"Fantasy"}, params)

	sql, _ := buildSQL(t, Pipeline{Kind("book"), GenreFacet(genreForm)})

	assert.NotContains(t, sql, "media_genres")
}

func TestReviewStatsCountVisibleOnly(t *testing.T) {
	sql, _ := buildSQL(t, Pipeline{Kind("book"), ReviewStats()})

	assert.Contains(t, sql, "AS reviews_num")
	assert.Contains(t, sql, "AS reviews_avg")
	assert.Contains(t, sql, "NOT r.is_hidden")
	// the average ignores unscored participant rows; with no visible
	// scored rating AVG yields NULL, never zero
	assert.Contains(t, sql, "AVG(r.score)")
	assert.Contains(t, sql, "r.score IS NOT NULL")
}
