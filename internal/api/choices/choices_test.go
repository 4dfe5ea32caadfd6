package choices

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode_KnownLabel(t *testing.T) {
	assert.Equal(t, "CS", BookTypes.Decode("Comics"))
	assert.Equal(t, "AE", SeriesTypes.Decode("Anime"))
	assert.Equal(t, "IP", Statuses.Decode("In progress"))
}

func TestDecode_UnknownLabel(t *testing.T) {
	assert.Equal(t, "", BookTypes.Decode("comics"))
	assert.Equal(t, "", BookTypes.Decode(""))
	assert.Equal(t, "", BookTypes.Decode("CS"))
}

func TestContains(t *testing.T) {
	assert.True(t, Statuses.Contains("F"))
	assert.True(t, Statuses.Contains("D"))
	assert.False(t, Statuses.Contains("Finished"))
	assert.False(t, Statuses.Contains(""))
}

func TestLabels_PreservesDeclarationOrder(t *testing.T) {
	assert.Equal(t, []string{"Finished", "In progress", "Dropped"}, Statuses.Labels())
	assert.Equal(t, []string{
		"Traditional book", "Light novel", "Web novel", "Comics", "Manga", "Fan fiction",
	}, BookTypes.Labels())
}
