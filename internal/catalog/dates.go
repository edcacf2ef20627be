package catalog

import (
	"fmt"
	"time"
)

var releaseDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseReleaseDate accepts RFC3339 and the naive ISO forms the site has historically stored.
func ParseReleaseDate(s string) (time.Time, error) {
	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized release date %q", s)
}
