package components

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"

	"catalogsite/views/models"
)

func render(t *testing.T, c templ.Component) (string, *goquery.Document) {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	require.NoError(t, err)
	return b.String(), doc
}

func TestDownloadCardEscapesText(t *testing.T) {
	t.Parallel()

	html, doc := render(t, DownloadCard(models.DownloadCard{
		DOMID:       "dl_1",
		Name:        "<script>x</script>",
		Category:    "Software",
		DownloadURL: "#",
	}))
	require.NotContains(t, html, "<script>")
	require.Contains(t, html, "&lt;script&gt;x&lt;/script&gt;")
	require.Equal(t, "<script>x</script>", doc.Find("h3.ttl").Text())
	require.Zero(t, doc.Find(".media").Length())
}

func TestGalleryThumbnails(t *testing.T) {
	t.Parallel()

	_, doc := render(t, PriceCard(models.PriceCard{
		DOMID:  "pc_7",
		Name:   "Ledger",
		Images: []string{"/a.png", "/b.png", "/c.png"},
	}))
	require.Equal(t, "/a.png", doc.Find("#pc_7_main").AttrOr("src", ""))

	thumbs := doc.Find(".thumbs img.thumb")
	require.Equal(t, 3, thumbs.Length())
	require.True(t, thumbs.First().HasClass("active"))
	require.Equal(t, 1, doc.Find(".thumbs img.active").Length())
	thumbs.Each(func(_ int, s *goquery.Selection) {
		require.Equal(t, "pc_7_main", s.AttrOr("data-target", ""))
	})
}

func TestSingleImageHasNoThumbnails(t *testing.T) {
	t.Parallel()

	_, doc := render(t, DownloadCard(models.DownloadCard{DOMID: "dl_2", Images: []string{"/only.png"}}))
	require.Equal(t, 1, doc.Find("#dl_2_main").Length())
	require.Zero(t, doc.Find(".thumbs").Length())
}

func TestPriceCardYearlyLine(t *testing.T) {
	t.Parallel()

	_, doc := render(t, PriceCard(models.PriceCard{DOMID: "pc_1", OneTime: "PKR 25,000", PayOneTime: "#", PayYearly: "#"}))
	require.Contains(t, doc.Find(".price-big").Text(), "PKR 25,000")
	require.Zero(t, doc.Find(".yearly").Length())
	require.Equal(t, "#", doc.Find("a.btn").First().AttrOr("data-payment-link", ""))

	_, doc = render(t, PriceCard(models.PriceCard{DOMID: "pc_2", OneTime: "PKR 1", Yearly: "PKR 500"}))
	require.Contains(t, doc.Find(".yearly").Text(), "PKR 500")
}

func TestProductCardSlug(t *testing.T) {
	t.Parallel()

	_, doc := render(t, ProductCard(models.ProductCard{Name: "Ledger", Category: "Software"}))
	require.Zero(t, doc.Find(".slug").Length())
	require.Zero(t, doc.Find("img").Length())

	_, doc = render(t, ProductCard(models.ProductCard{Name: "Ledger", Slug: "ledger"}))
	require.Equal(t, "@ledger", doc.Find(".slug").Text())
}

// URLs are escaped but their scheme is not checked.
func TestURLSchemeIsNotValidated(t *testing.T) {
	t.Parallel()

	_, doc := render(t, DownloadCard(models.DownloadCard{DOMID: "dl_3", DownloadURL: `javascript:alert("x")`}))
	require.Equal(t, `javascript:alert("x")`, doc.Find(".actions a").AttrOr("href", ""))
}

func TestClientCardVisitLink(t *testing.T) {
	t.Parallel()

	_, doc := render(t, ClientCard(models.ClientCard{Name: "Acme", Image: "/p.svg", Meta: "Retail • Lahore", Website: "https://acme.example"}))
	link := doc.Find("a")
	require.Equal(t, "_blank", link.AttrOr("target", ""))
	require.Equal(t, "noopener", link.AttrOr("rel", ""))
	require.Equal(t, "Retail • Lahore", doc.Find(".client-meta").Text())

	_, doc = render(t, ClientCard(models.ClientCard{Name: "Acme", Image: "/p.svg"}))
	require.Zero(t, doc.Find("a").Length())
}

func TestHeroSingleActiveSlideAndDot(t *testing.T) {
	t.Parallel()

	v := models.HeroView{
		Slides: []models.HeroSlide{
			{Name: "Payroll", DownloadURL: "/dl/payroll"},
			{Name: "Stock"},
			{Name: "Ledger"},
		},
		Active:      1,
		Running:     true,
		FragmentURL: "/fragments/products-hero",
	}
	_, doc := render(t, Hero(v))

	require.Equal(t, 1, doc.Find(".slide.active").Length())
	require.Equal(t, "Stock", doc.Find(".slide.active h2").Text())
	require.Equal(t, 1, doc.Find(".dot.active").Length())
	require.Equal(t, "1", doc.Find(".dot.active").AttrOr("data-i", ""))
	require.Equal(t, 1, doc.Find("a.btn-outline").Length())

	next := doc.Find("button.next")
	require.Equal(t, "/fragments/products-hero?i=1&op=next", next.AttrOr("hx-get", ""))
	require.Equal(t, HeroTarget, next.AttrOr("hx-target", ""))

	auto := doc.Find(".hero-autoplay")
	require.Equal(t, "every 6s", auto.AttrOr("hx-trigger", ""))
	require.Contains(t, auto.AttrOr("hx-get", ""), "op=tick")

	goTo := doc.Find(".dot").Last().AttrOr("hx-get", "")
	require.Equal(t, "/fragments/products-hero?i=1&k=2&op=goto", goTo)
}

func TestHeroEmptyRendersNothing(t *testing.T) {
	t.Parallel()

	html, _ := render(t, Hero(models.HeroView{}))
	require.Empty(t, html)
}

func TestIssueCardLineBreaks(t *testing.T) {
	t.Parallel()

	_, doc := render(t, IssueCard(models.IssueCard{Title: "Crash", Status: "Open", PillClass: "pill red", Content: "a <b>\nb"}))
	note, err := doc.Find(".note").Html()
	require.NoError(t, err)
	require.Equal(t, "a &lt;b&gt;<br/>b", note)
}

func TestHeroPausedWaitsForMouseleave(t *testing.T) {
	t.Parallel()

	v := models.HeroView{
		Slides:      []models.HeroSlide{{Name: "Payroll"}, {Name: "Stock"}},
		FragmentURL: "/fragments/products-hero",
	}
	_, doc := render(t, Hero(v))
	root := doc.Find(".hero-slider")
	require.Equal(t, "paused", root.AttrOr("data-autoplay", ""))
	require.Equal(t, "mouseleave", root.AttrOr("hx-trigger", ""))
	require.Equal(t, "/fragments/products-hero?i=0&op=resume&paused=1", root.AttrOr("hx-get", ""))
	require.Zero(t, doc.Find(".hero-autoplay").Length())
	require.Equal(t, "/fragments/products-hero?i=0&op=next&paused=1", doc.Find("button.next").AttrOr("hx-get", ""))

	v.Running = true
	_, doc = render(t, Hero(v))
	root = doc.Find(".hero-slider")
	require.Equal(t, "mouseenter", root.AttrOr("hx-trigger", ""))
	require.Equal(t, "/fragments/products-hero?i=0&op=pause", root.AttrOr("hx-get", ""))
}

func TestReleaseCardEscapesContent(t *testing.T) {
	t.Parallel()

	html, doc := render(t, ReleaseCard(models.ReleaseCard{Title: "Ledger", Content: "<script>x</script>\n**fixed**"}))
	require.NotContains(t, html, "<script>")
	require.Contains(t, html, "&lt;script&gt;x&lt;/script&gt;")
	require.Equal(t, "<script>x</script>\n**fixed**", doc.Find(".note").Text())
	require.Zero(t, doc.Find(".ver .subtle").Length())
}

func TestProseMountsRenderedHTML(t *testing.T) {
	t.Parallel()

	_, doc := render(t, Prose(models.Prose{HTML: "<p>Hi <strong>there</strong></p>"}))
	require.Equal(t, "there", doc.Find(".prose p strong").Text())
}
