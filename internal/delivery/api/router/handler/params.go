// Package handler contains the HTTP handlers of the public API.
package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// dateLayouts lists the accepted stay date formats, most specific first.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("invalid %s", name)
	}

	return id, nil
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, errors.Errorf("invalid date %q, expected YYYY-MM-DD or RFC 3339", value)
}

func parseDateRange(startValue, endValue string) (time.Time, time.Time, error) {
	start, err := parseDate(startValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end, err := parseDate(endValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return start, end, nil
}

func optionalInt(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.Errorf("invalid %s", name)
	}

	return &v, nil
}

func optionalFloat(c echo.Context, name string) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Errorf("invalid %s", name)
	}

	return v, nil
}

// parseLatLon parses "lat,lon".
func parseLatLon(raw string) (lat, lon float64, err error) {
	latRaw, lonRaw, ok := strings.Cut(raw, ",")
	if !ok {
		return 0, 0, errors.New("near must be lat,lon")
	}

	if lat, err = strconv.ParseFloat(strings.TrimSpace(latRaw), 64); err != nil || lat < -90 || lat > 90 {
		return 0, 0, errors.New("invalid latitude")
	}
	if lon, err = strconv.ParseFloat(strings.TrimSpace(lonRaw), 64); err != nil || lon < -180 || lon > 180 {
		return 0, 0, errors.New("invalid longitude")
	}

	return lat, lon, nil
}
