package handler

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

// respondError writes the {message} error envelope every endpoint shares.
func respondError(c echo.Context, status int, err error) error {
	return c.JSON(status, map[string]string{"message": err.Error()})
}

// envelope builds a {message, <entity>} success body, appending cleanup
// warnings when any deletion failed.
func envelope(message string, warnings []string, kv ...any) map[string]any {
	body := map[string]any{"message": message}
	for i := 0; i+1 < len(kv); i += 2 {
		body[kv[i].(string)] = kv[i+1]
	}
	if len(warnings) > 0 {
		body["warnings"] = warnings
	}

	return body
}

// formLookup reports whether a form field was present on the request,
// distinguishing "absent" from "empty" for partial updates.
func formLookup(c echo.Context, key string) (string, bool) {
	// Forces multipart/urlencoded parsing.
	_ = c.FormValue(key)

	values, ok := c.Request().Form[key]
	if !ok || len(values) == 0 {
		return "", false
	}

	return values[0], true
}

func formPtr(c echo.Context, key string) *string {
	if v, ok := formLookup(c, key); ok {
		return &v
	}

	return nil
}

// formStringArray decodes a JSON-encoded string array form field. Absent
// fields yield nil; malformed JSON is an error so validation fails before
// any file mutation.
func formStringArray(c echo.Context, key string) ([]string, error) {
	raw, ok := formLookup(c, key)
	if !ok || raw == "" {
		return nil, nil
	}

	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("field %q must be a JSON string array", key)
	}

	return values, nil
}

// formTime parses an optional RFC 3339 timestamp or plain date field.
func formTime(c echo.Context, key string) (*time.Time, error) {
	raw, ok := formLookup(c, key)
	if !ok || raw == "" {
		return nil, nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("field %q must be an RFC 3339 timestamp or YYYY-MM-DD date", key)
}
