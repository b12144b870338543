// controller/query.go
package controller

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	bridge_errors "github.com/poachurch/pcobridge/errors"
	"github.com/poachurch/pcobridge/pco"
)

var groupTypeIDPattern = regexp.MustCompile(`^\d+$`)

// inboundQuery is the parsed inbound query string: recognized keys pulled
// out, everything else kept in order as passthrough for the upstream.
type inboundQuery struct {
	passthrough []pco.Param
	page        *int
	upcoming    bool
}

// extractQuery walks the raw query string in order so passthrough pairs keep
// their position and repeats. "page" is always recognized; "upcoming" only
// for operations that accept it, elsewhere it passes through untouched.
func extractQuery(c *gin.Context, recognizeUpcoming bool) (inboundQuery, error) {
	parsed := inboundQuery{passthrough: []pco.Param{}}

	rawQuery := c.Request.URL.RawQuery
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			key = rawKey
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			value = rawValue
		}

		if key == "page" {
			page, err := parsePage(value)
			if err != nil {
				return inboundQuery{}, err
			}
			parsed.page = page
			continue
		}

		if recognizeUpcoming && key == "upcoming" {
			upcoming, err := parseUpcoming(value)
			if err != nil {
				return inboundQuery{}, err
			}
			parsed.upcoming = upcoming
			continue
		}

		parsed.passthrough = append(parsed.passthrough, pco.Param{Key: key, Value: value})
	}

	return parsed, nil
}

func parseGroupTypeID(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if !groupTypeIDPattern.MatchString(value) {
		return "", bridge_errors.ErrInvalidGroupTypeID
	}
	return value, nil
}

func parsePage(raw string) (*int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 0 {
		return nil, bridge_errors.ErrInvalidPage
	}
	return &value, nil
}

// parseUpcoming accepts boolean-like values: true/1/yes and the bare flag
// mean true, false/0/no mean false, anything else is invalid.
func parseUpcoming(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, bridge_errors.ErrInvalidUpcoming
	}
}
