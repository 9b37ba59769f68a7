package service

import (
	"regexp"
	"strings"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/dto"
)

var (
	searchStopwords = regexp.MustCompile(`(?i)\b(find|show|me|please|best|good|top|some|any|the|a|an|near|nearby)\b`)
	searchLocation  = regexp.MustCompile(`(?i)\b(?:in|at|around)\s+([\p{L}\s\-]+)$`)
	spaceRun        = regexp.MustCompile(`\s+`)
)

// SearchPhrase is a free-form directory search split into its parts.
type SearchPhrase struct {
	Query string
	City  string
}

// ParseSearchPhrase turns input such as "best cafes in Kigali" into a text
// query and a city.
func ParseSearchPhrase(raw string) SearchPhrase {
	phrase := spaceRun.ReplaceAllString(strings.TrimSpace(raw), " ")
	if phrase == "" {
		return SearchPhrase{}
	}

	city := ""
	if match := searchLocation.FindStringSubmatchIndex(phrase); match != nil {
		city = titleCase(phrase[match[2]:match[3]])
		phrase = strings.TrimSpace(phrase[:match[0]])
	}

	query := searchStopwords.ReplaceAllString(phrase, "")
	query = strings.TrimSpace(spaceRun.ReplaceAllString(query, " "))
	return SearchPhrase{Query: query, City: city}
}

// applySearchPhrase fills Q and City from a search phrase without
// overriding explicit query parameters.
func applySearchPhrase(filter *dto.BusinessListFilter) {
	if strings.TrimSpace(filter.Search) == "" {
		return
	}
	parsed := ParseSearchPhrase(filter.Search)
	if strings.TrimSpace(filter.Q) == "" {
		filter.Q = parsed.Query
	}
	if strings.TrimSpace(filter.City) == "" {
		filter.City = parsed.City
	}
}

func titleCase(value string) string {
	parts := strings.Fields(value)
	for i, p := range parts {
		lower := []rune(strings.ToLower(p))
		if len(lower) == 0 {
			continue
		}
		parts[i] = strings.ToUpper(string(lower[:1])) + string(lower[1:])
	}
	return strings.Join(parts, " ")
}
