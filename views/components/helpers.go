// Package components renders the site's HTML fragments. Text and attribute
// values are escaped by templ; URLs are escaped but not scheme-checked.
package components

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	"catalogsite/internal/slider"
	"catalogsite/views/models"
)

// HeroTarget is the container the slider re-renders into.
const HeroTarget = "#products-hero"

var autoplayTrigger = fmt.Sprintf("every %ds", int(slider.AutoplayInterval/time.Second))

// List concatenates one component per item, in order.
func List[T any](items []T, render func(T) templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, it := range items {
			if err := render(it).Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// heroURL builds the fragment URL for op applied to the current slide and
// run state; k < 0 omits the goto index.
func heroURL(v models.HeroView, op string, k int) string {
	q := url.Values{}
	q.Set("i", strconv.Itoa(v.Active))
	q.Set("op", op)
	if k >= 0 {
		q.Set("k", strconv.Itoa(k))
	}
	if !v.Running {
		q.Set("paused", "1")
	}
	return v.FragmentURL + "?" + q.Encode()
}

func lines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
