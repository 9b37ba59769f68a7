package service

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"
)

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.([a-z]{2,}|xn--[a-z0-9-]+)$`)
	idnaProfile  = idna.Lookup
	slugStrip    = regexp.MustCompile(`[^a-z0-9]+`)
)

const (
	trackingPrefix     = "utm_"
	defaultPhoneRegion = "RW"
)

// ContactNormalizer cleans contact details submitted with listings.
type ContactNormalizer struct {
	DefaultRegion string
}

// NewContactNormalizer builds a normalizer that parses local phone numbers in defaultRegion.
func NewContactNormalizer(defaultRegion string) *ContactNormalizer {
	region := strings.ToUpper(strings.TrimSpace(defaultRegion))
	if region == "" {
		region = defaultPhoneRegion
	}
	return &ContactNormalizer{DefaultRegion: region}
}

// Phone returns raw in E.164 form. Local numbers are parsed in region, or the
// default region when region is empty.
func (n *ContactNormalizer) Phone(raw, region string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", invalidf("phone must not be empty")
	}
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = n.DefaultRegion
	}
	number, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", invalidf("invalid phone number %q", raw)
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return "", invalidf("invalid phone number %q", raw)
	}
	return phonenumbers.Format(number, phonenumbers.E164), nil
}

// Website returns raw as an https URL with an ASCII host and no tracking parameters.
func (n *ContactNormalizer) Website(raw string) (string, error) {
	u, err := sanitizeURL(raw)
	if err != nil {
		return "", invalidf("invalid website %q", raw)
	}
	host, err := idnaProfile.ToASCII(strings.ToLower(u.Hostname()))
	if err != nil || !isDomainValid(host) {
		return "", invalidf("invalid website %q", raw)
	}
	if port := u.Port(); port != "" {
		host += ":" + port
	}
	u.Host = host
	stripTracking(u)
	return u.String(), nil
}

// Email lower-cases raw and checks its syntax and domain.
func (n *ContactNormalizer) Email(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	parts := strings.SplitN(email, "@", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "", invalidf("invalid email %q", raw)
	}
	domain, err := idnaProfile.ToASCII(parts[1])
	if err != nil || !isDomainValid(domain) {
		return "", invalidf("invalid email %q", raw)
	}
	email = parts[0] + "@" + domain
	if !emailPattern.MatchString(email) {
		return "", invalidf("invalid email %q", raw)
	}
	return email, nil
}

// Slugify turns a display name into a lower-case, dash separated slug.
func Slugify(name string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	return strings.Trim(slug, "-")
}

func sanitizeURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, invalidf("empty url")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return nil, invalidf("invalid url")
	}
	u.Scheme = "https"
	return u, nil
}

func stripTracking(u *url.URL) {
	query := u.Query()
	changed := false
	for key := range query {
		if strings.HasPrefix(strings.ToLower(key), trackingPrefix) {
			query.Del(key)
			changed = true
		}
	}
	if changed {
		u.RawQuery = query.Encode()
	}
}

func isDomainValid(domain string) bool {
	if strings.Count(domain, ".") == 0 {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" || strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
			return false
		}
	}
	return true
}

func trimmedOrNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
