package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvinces_NineEntriesStableOrder(t *testing.T) {
	provinces := Provinces()
	require.Len(t, provinces, 9)
	assert.Equal(t, provinces, Provinces(), "order must be stable across calls")
	assert.Contains(t, provinces, "Western Province")
	assert.Contains(t, provinces, "Sabaragamuwa Province")
}

func TestCities_KnownProvince(t *testing.T) {
	cities := Cities("Western Province")
	require.NotEmpty(t, cities)
	assert.Contains(t, cities, "Colombo")
}

func TestCities_UnknownProvinceIsEmpty(t *testing.T) {
	assert.Empty(t, Cities("Atlantis"))
	assert.Empty(t, Cities(""))
}

func TestValidPair(t *testing.T) {
	assert.True(t, ValidPair("Western Province", "Colombo"))
	assert.False(t, ValidPair("Western Province", "Kandy"), "Kandy belongs to Central Province")
	assert.False(t, ValidPair("Central Province", "Colombo"))
	assert.False(t, ValidPair("", "Colombo"))
	assert.False(t, ValidPair("Western Province", ""))
}

func TestEveryCityBelongsToExactlyOneProvince(t *testing.T) {
	seen := map[string]string{}
	for province, cities := range Table() {
		for _, city := range cities {
			if prior, ok := seen[city]; ok {
				t.Fatalf("city %s appears in both %s and %s", city, prior, province)
			}
			seen[city] = province
		}
	}
}

func TestTable_ReturnsCopy(t *testing.T) {
	table := Table()
	table["Western Province"][0] = "Mutated"
	assert.Equal(t, "Colombo", Cities("Western Province")[0], "callers must not be able to mutate the reference table")
}
