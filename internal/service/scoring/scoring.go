// Package scoring rates how complete a business profile is, so moderators can
// see which listings need more detail before they go live.
package scoring

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
)

const (
	categoryContact  = "contact"
	categoryWeb      = "web_presence"
	categoryMedia    = "media"
	categoryLocation = "location"
)

var freeHostingDomains = []string{
	"wordpress.com",
	"blogspot.com",
	"wixsite.com",
	"weebly.com",
	"squarespace.com",
	"godaddysites.com",
	"notion.site",
	"carrd.co",
	"linktr.ee",
	"business.site",
}

// ScoreResult reports the aggregate score and the per-category breakdown.
type ScoreResult struct {
	Total     int            `json:"total"`
	Breakdown map[string]int `json:"breakdown"`
}

// ComputeScore evaluates a business profile out of 100.
func ComputeScore(b entity.Business) ScoreResult {
	breakdown := map[string]int{
		categoryContact:  scoreContact(b),
		categoryWeb:      scoreWebPresence(b),
		categoryMedia:    scoreMedia(b),
		categoryLocation: scoreLocation(b),
	}

	total := 0
	for _, value := range breakdown {
		total += value
	}

	return ScoreResult{
		Total:     total,
		Breakdown: breakdown,
	}
}

func scoreContact(b entity.Business) int {
	score := 0
	if hasValue(b.Phone) {
		score += 10
	}
	if hasValue(b.Email) {
		score += 10
	}
	if hasValue(b.WhatsApp) {
		score += 5
	}
	if hasValue(b.Website) {
		score += 5
	}
	return min(score, 30)
}

func scoreWebPresence(b entity.Business) int {
	if !hasValue(b.Website) {
		return 0
	}
	score := 0
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(*b.Website)), "https://") {
		score += 10
	}
	if highQualityDomain(*b.Website) {
		score += 10
	}
	return min(score, 20)
}

func scoreMedia(b entity.Business) int {
	score := 0
	if hasValue(b.LogoURL) {
		score += 10
	}
	images := 0
	for _, img := range b.Images {
		if strings.TrimSpace(img) != "" {
			images++
		}
	}
	if images >= 1 {
		score += 10
	}
	if images >= 3 {
		score += 5
	}
	return min(score, 25)
}

func scoreLocation(b entity.Business) int {
	score := 0
	if b.Address != nil && hasCompleteAddress(*b.Address) {
		score += 10
	}
	if b.Latitude != nil && b.Longitude != nil {
		score += 10
	}
	if b.CityID != nil {
		score += 5
	}
	return min(score, 25)
}

func hasValue(value *string) bool {
	return value != nil && strings.TrimSpace(*value) != ""
}

func hasCompleteAddress(raw string) bool {
	addr := strings.TrimSpace(raw)
	if len(addr) < 10 {
		return false
	}
	var hasLetter, hasDigit bool
	separatorCount := 0
	for _, r := range addr {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case r == ',':
			separatorCount++
		}
	}
	return hasLetter && hasDigit && separatorCount >= 1
}

func highQualityDomain(raw string) bool {
	domain := extractDomain(raw)
	if domain == "" {
		return false
	}
	for _, bad := range freeHostingDomains {
		if domain == bad || strings.HasSuffix(domain, "."+bad) {
			return false
		}
	}
	return strings.Count(domain, ".") >= 1
}

func extractDomain(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	lowered := strings.ToLower(raw)
	if !strings.Contains(lowered, "://") {
		lowered = "https://" + lowered
	}
	parsed, err := url.Parse(lowered)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}
