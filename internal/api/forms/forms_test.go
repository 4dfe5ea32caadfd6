package forms

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchForm_Blank(t *testing.T) {
	f := NewSearchForm("title", url.Values{})

	assert.True(t, f.Valid())
	assert.Equal(t, "", f.Query())
}

func TestSearchForm_TrimsWhitespace(t *testing.T) {
	f := NewSearchForm("title", url.Values{"title": {"  dune  "}})

	assert.True(t, f.Valid())
	assert.Equal(t, "dune", f.Query())
}

func TestSearchForm_TooLong(t *testing.T) {
	long := strings.Repeat("a", 256)
	f := NewSearchForm("title", url.Values{"title": {long}})

	assert.False(t, f.Valid())
	assert.Equal(t, "", f.Query())
	assert.Contains(t, f.Errors()["title"][0], "at most 255 characters")
}

func TestSearchForm_LengthCountsCharactersNotBytes(t *testing.T) {
	// 255 two-byte characters are 510 bytes but still within the limit
	f := NewSearchForm("title", url.Values{"title": {strings.Repeat("я", 255)}})
	assert.True(t, f.Valid())

	f = NewSearchForm("title", url.Values{"title": {strings.Repeat("я", 256)}})
	assert.False(t, f.Valid())
}

func TestFacetForm_Unbound(t *testing.T) {
	f := NewFacetForm("genres", []string{"Fantasy", "Horror"}, url.Values{})

	assert.False(t, f.Bound())
	assert.False(t, f.Valid())
	assert.Nil(t, f.Values())
	assert.False(t, f.Errors().Has())
}

func TestFacetForm_ValidSelection(t *testing.T) {
	params := url.Values{"genres": {"Fantasy", "Horror"}}
	f := NewFacetForm("genres", []string{"Fantasy", "Horror", "Sci-fi"}, params)

	assert.True(t, f.Valid())
	assert.Equal(t, []string{"Fantasy", "Horror"}, f.Values())
}

func TestFacetForm_UnknownChoice(t *testing.T) {
	params := url.Values{"genres": {"Fantasy", "Unknown"}}
	f := NewFacetForm("genres", []string{"Fantasy"}, params)

	assert.True(t, f.Bound())
	assert.False(t, f.Valid())
	assert.Nil(t, f.Values())
	assert.Contains(t, f.Errors()["genres"][0], "Unknown is not one of the available choices")
}

func TestFacetForm_BoundEmpty(t *testing.T) {
	params := url.Values{"genres": {}}
	params["genres"] = []string{}
	f := NewFacetForm("genres", []string{"Fantasy"}, params)

	assert.True(t, f.Bound())
	assert.False(t, f.Valid())
	assert.Equal(t, []string{"This field is required."}, f.Errors()["genres"])
}

func TestErrors_AddAndHas(t *testing.T) {
	e := Errors{}
	assert.False(t, e.Has())

	e.Add("title", "first")
	e.Add("title", "second")

	assert.True(t, e.Has())
	assert.Equal(t, []string{"first", "second"}, e["title"])
}
