package services

import (
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/test-kooza/rental-management-system-sub001/models"
)

// NormalizeQuery lowercases and strips accents so "São Paulo" matches "sao paulo".
func NormalizeQuery(input string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(input)))
}

// NewCityMatcher builds a fuzzy matcher over the known city names.
func NewCityMatcher(cities []string) *closestmatch.ClosestMatch {
	normalized := make([]string, 0, len(cities))
	for _, city := range cities {
		normalized = append(normalized, NormalizeQuery(city))
	}
	return closestmatch.New(normalized, []int{2, 3})
}

// Similarity scores two strings in [0,1] using levenshtein distance.
func Similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(distance)/float64(longest)
}

// ScoreProperty ranks a property against a free-text query: exact substring
// hits on the name weigh most, then a fuzzy city match, then name similarity.
func ScoreProperty(query string, property models.Property, cityMatcher *closestmatch.ClosestMatch) int {
	if query == "" {
		return 1
	}

	score := 0
	name := NormalizeQuery(property.Name)
	city := NormalizeQuery(property.City)

	if strings.Contains(name, query) {
		score += 10
	}
	if cityMatcher != nil && cityMatcher.Closest(query) == city {
		score += 6
	}
	if Similarity(query, name) >= 0.6 {
		score += 3
	}
	if strings.Contains(NormalizeQuery(property.Address), query) {
		score += 2
	}

	return score
}

// UniqueCities collects the distinct city names of a property list.
func UniqueCities(properties []models.Property) []string {
	seen := make(map[string]bool)
	var cities []string
	for _, p := range properties {
		if p.City == "" || seen[p.City] {
			continue
		}
		seen[p.City] = true
		cities = append(cities, p.City)
	}
	return cities
}
