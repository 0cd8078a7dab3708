package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/test-kooza/rental-management-system-sub001/models"
)

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "sao paulo", NormalizeQuery("  São Paulo "))
	assert.Equal(t, "entebbe", NormalizeQuery("ENTEBBE"))
	assert.Equal(t, "cafe cottage", NormalizeQuery("Café Cottage"))
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Equal(t, 1.0, Similarity("villa", "villa"))
	assert.Greater(t, Similarity("lakeside", "lakesid"), 0.8)
	assert.Less(t, Similarity("lakeside", "penthouse"), 0.4)
}

func TestScorePropertyRanksNameHitsHighest(t *testing.T) {
	properties := []models.Property{
		{Name: "Lakeside Cottage", City: "Entebbe", Address: "12 Shore Road"},
		{Name: "Hilltop Villa", City: "Kampala", Address: "4 Summit Close"},
		{Name: "City Loft", City: "Kampala", Address: "88 Lakeside Avenue"},
	}
	matcher := NewCityMatcher(UniqueCities(properties))

	query := NormalizeQuery("lakeside")
	nameHit := ScoreProperty(query, properties[0], matcher)
	addressHit := ScoreProperty(query, properties[2], matcher)
	miss := ScoreProperty(query, properties[1], matcher)

	assert.Greater(t, nameHit, addressHit)
	assert.Greater(t, addressHit, 0)
	assert.Equal(t, 0, miss)
}

func TestScorePropertyEmptyQueryMatchesAll(t *testing.T) {
	property := models.Property{Name: "Hilltop Villa", City: "Kampala"}
	assert.Equal(t, 1, ScoreProperty("", property, nil))
}

func TestUniqueCities(t *testing.T) {
	properties := []models.Property{
		{City: "Entebbe"},
		{City: "Kampala"},
		{City: "Entebbe"},
		{City: ""},
	}

	cities := UniqueCities(properties)
	assert.Equal(t, []string{"Entebbe", "Kampala"}, cities)
}
