package site

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"catalogsite/internal/catalog"
	"catalogsite/internal/fetch"
	"catalogsite/internal/slider"
	"catalogsite/views/components"
	"catalogsite/views/models"
)

// Container ids the pages mount into.
const (
	DownloadRoot = "download-root"
	PricingRoot  = "pricing-root"
	ProductsRoot = "products-root"
	ProductsHero = "products-hero"
	ClientsGrid  = "clients-grid"
	IssuesRoot   = "issues-root"
	ReleasesRoot = "rel-root"
	AboutRoot    = "about-root"
	ContactRoot  = "contact-root"
)

// JSON documents served under /api/.
const (
	softwareDoc = "software.json"
	clientsDoc  = "clients.json"
	issuesDoc   = "known_issues.json"
	releasesDoc = "releases.json"
)

var (
	downloadMsgs = Messages{Empty: "No free downloads right now.", Failed: "Failed to load downloads."}
	pricingMsgs  = Messages{Empty: "No paid products configured.", Failed: "Failed to load pricing."}
	productsMsgs = Messages{Empty: "No paid products yet.", Failed: "Failed to load products."}
	heroMsgs     = Messages{Empty: "", Failed: "Failed to load featured products."}
	clientsMsgs  = Messages{Empty: "No clients added yet.", Failed: "Failed to load clients."}
	issuesMsgs   = Messages{Empty: "No issues yet.", Failed: "Failed to load issues."}
	releasesMsgs = Messages{Empty: "No releases yet.", Failed: "Failed to load releases."}
)

// Endpoints locates the catalog API and its optional static mirror.
type Endpoints struct {
	Base     string
	Fallback string
}

func (e Endpoints) urls(doc string) (primary, fallback string) {
	primary = strings.TrimRight(e.Base, "/") + "/api/" + doc
	if e.Fallback != "" {
		fallback = strings.TrimRight(e.Fallback, "/") + "/api/" + doc
	}
	return primary, fallback
}

// view is what one render pass produces for a container.
type view struct {
	Body templ.Component
	// Removed drops the container from the page.
	Removed bool
	// Hold leaves the container as it is.
	Hold bool
}

type section func(h *Handler, ctx context.Context, q url.Values) view

var sections = map[string]section{
	DownloadRoot: (*Handler).downloads,
	PricingRoot:  (*Handler).pricing,
	ProductsRoot: (*Handler).products,
	ProductsHero: (*Handler).hero,
	ClientsGrid:  (*Handler).clients,
	IssuesRoot:   (*Handler).issues,
	ReleasesRoot: (*Handler).releases,
	AboutRoot:    (*Handler).about,
	ContactRoot:  (*Handler).contact,
}

// load fetches one document and narrows it for a container. The error, if any,
// is logged and carried in the outcome.
func load[T, V any](ctx context.Context, h *Handler, container, doc string, pick func([]T) []T, conv func([]T) []V) Outcome[V] {
	primary, fallback := h.api.urls(doc)
	items, err := fetch.Items[T](ctx, h.fetch, primary, fallback)
	if err != nil {
		h.log.Warn("container failed", "container", container, "error", err)
		return Result[V](nil, err)
	}
	if pick != nil {
		items = pick(items)
	}
	return Result(conv(items), nil)
}

func (h *Handler) downloads(ctx context.Context, _ url.Values) view {
	o := load(ctx, h, DownloadRoot, softwareDoc, catalog.Free, downloadCards)
	return view{Body: Mount(o, components.DownloadCard, downloadMsgs)}
}

func (h *Handler) pricing(ctx context.Context, _ url.Values) view {
	o := load(ctx, h, PricingRoot, softwareDoc, catalog.Paid, priceCards)
	return view{Body: Mount(o, components.PriceCard, pricingMsgs)}
}

func (h *Handler) products(ctx context.Context, _ url.Values) view {
	o := load(ctx, h, ProductsRoot, softwareDoc, catalog.Paid, productCards)
	return view{Body: Mount(o, components.ProductCard, productsMsgs)}
}

func (h *Handler) clients(ctx context.Context, _ url.Values) view {
	o := load[catalog.ClientItem, models.ClientCard](ctx, h, ClientsGrid, clientsDoc, nil, clientCards)
	return view{Body: Mount(o, components.ClientCard, clientsMsgs)}
}

func (h *Handler) issues(ctx context.Context, _ url.Values) view {
	o := load[catalog.IssueItem, models.IssueCard](ctx, h, IssuesRoot, issuesDoc, nil, issueCards)
	return view{Body: Mount(o, components.IssueCard, issuesMsgs)}
}

func (h *Handler) releases(ctx context.Context, _ url.Values) view {
	o := load[catalog.ReleaseItem, models.ReleaseCard](ctx, h, ReleasesRoot, releasesDoc, nil, releaseCards)
	return view{Body: Mount(o, components.ReleaseCard, releasesMsgs)}
}

// hero renders the featured carousel after applying the slider op in q.
// An empty ranking removes the container.
func (h *Handler) hero(ctx context.Context, q url.Values) view {
	o := load(ctx, h, ProductsHero, softwareDoc, catalog.HeroRanking, heroSlides)
	switch o.State() {
	case Failed:
		return view{Body: components.Message(heroMsgs.Failed)}
	case Empty:
		return view{Removed: true}
	}
	s, changed := heroState(len(o.Items), q)
	if !changed {
		return view{Hold: true}
	}
	return view{Body: components.Hero(models.HeroView{
		Slides:      o.Items,
		Active:      s.Index(),
		Running:     s.Running(),
		FragmentURL: "/fragments/" + ProductsHero,
	})}
}

// heroState rebuilds the slider at the posted index and run state, then
// applies op. It reports false for a tick that did not advance.
func heroState(n int, q url.Values) (*slider.Slider, bool) {
	s := slider.New(n)
	if q.Get("paused") == "1" {
		s.Pause()
	}
	s.Goto(queryInt(q, "i"))
	switch q.Get("op") {
	case "next":
		s.Next()
	case "prev":
		s.Prev()
	case "goto":
		s.Goto(queryInt(q, "k"))
	case "pause":
		s.Pause()
	case "resume":
		s.Resume()
	case "tick":
		if _, ok := s.Tick(); !ok {
			return s, false
		}
	}
	return s, true
}

func queryInt(q url.Values, key string) int {
	n, err := strconv.Atoi(q.Get(key))
	if err != nil {
		return 0
	}
	return n
}

func (h *Handler) about(context.Context, url.Values) view {
	return view{Body: components.Prose(h.copy.about)}
}

func (h *Handler) contact(context.Context, url.Values) view {
	return view{Body: components.Prose(h.copy.contact)}
}
