package validators

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,}$`)
	phonePattern    = regexp.MustCompile(`^[0-9+\-. ()x]{7,}$`)
)

// ValidEmail checks the basic shape of an email address.
func ValidEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email format: %q", email)
	}
	return nil
}

// ValidUsername checks that a username is at least 3 characters of
// letters, digits, dots, underscores or hyphens.
func ValidUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("invalid username format: %q", username)
	}
	return nil
}

// ValidPhone accepts the loose phone formats the fixture dataset uses,
// including extensions ("1-770-736-8031 x56442").
func ValidPhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("invalid phone format: %q", phone)
	}
	return nil
}

// ValidWebsite checks for a plausible hostname or URL. The fixture dataset
// stores bare domains ("hildegard.org") as well as full URLs.
func ValidWebsite(site string) error {
	s := strings.TrimPrefix(strings.TrimPrefix(site, "https://"), "http://")
	if s == "" || !strings.Contains(s, ".") || strings.ContainsAny(s, " \t") {
		return fmt.Errorf("invalid website format: %q", site)
	}
	return nil
}

// ValidGeo parses latitude/longitude strings and checks they lie within
// [-90,90] and [-180,180] respectively.
func ValidGeo(lat, lng string) error {
	latV, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return fmt.Errorf("latitude %q is not numeric", lat)
	}
	if latV < -90 || latV > 90 {
		return fmt.Errorf("latitude %s out of range [-90,90]", lat)
	}
	lngV, err := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	if err != nil {
		return fmt.Errorf("longitude %q is not numeric", lng)
	}
	if lngV < -180 || lngV > 180 {
		return fmt.Errorf("longitude %s out of range [-180,180]", lng)
	}
	return nil
}
