package site

import (
	"testing"

	"github.com/stretchr/testify/require"

	"catalogsite/internal/catalog"
)

func ptr[T any](v T) *T { return &v }

func TestPrice(t *testing.T) {
	t.Parallel()

	require.Equal(t, "PKR 25,000", Price(ptr(25000.0)))
	require.Equal(t, "PKR 1,250.5", Price(ptr(1250.5)))
	require.Equal(t, "PKR 0", Price(ptr(0.0)))
	require.Equal(t, "", Price(nil))
}

func TestReleaseDate(t *testing.T) {
	t.Parallel()

	require.Equal(t, "3/1/2024, 2:05:09 PM", ReleaseDate("2024-03-01T14:05:09Z"))
	require.Equal(t, "3/1/2024, 12:00:00 AM", ReleaseDate("2024-03-01"))
	require.Equal(t, "coming soon", ReleaseDate("coming soon"))
}

func TestMarkdownSanitizesPageCopy(t *testing.T) {
	t.Parallel()

	out := NewMarkdown().Render("**Fixed** printing\n<script>alert(1)</script>\n[x](javascript:alert(1))")
	require.Contains(t, out, "<strong>Fixed</strong>")
	require.NotContains(t, out, "<script")
	require.NotContains(t, out, "javascript:")
}

func TestBuildNav(t *testing.T) {
	t.Parallel()

	links := BuildNav("/pricing")
	require.Len(t, links, len(MainNav))
	var active []string
	for _, l := range links {
		if l.Active {
			active = append(active, l.Label)
		}
	}
	require.Equal(t, []string{"Pricing"}, active)
	require.True(t, BuildNav("")[0].Active)
}

func TestPriceCardsYearlyOnlyWhenSet(t *testing.T) {
	t.Parallel()

	cards := priceCards([]catalog.CatalogItem{
		{ID: 5, Name: "Ledger", PriceOneTime: ptr(25000.0), PriceYearly: ptr(0.0)},
		{Name: "Stock", PriceOneTime: ptr(9000.0), PriceYearly: ptr(3000.0), PaymentLinkYearly: "https://pay.example/y"},
	})
	require.Equal(t, "pc_5", cards[0].DOMID)
	require.Empty(t, cards[0].Yearly)
	require.Equal(t, "#", cards[0].PayOneTime)
	require.Equal(t, "Software", cards[0].Category)

	require.Equal(t, "pc_1", cards[1].DOMID)
	require.Equal(t, "PKR 3,000", cards[1].Yearly)
	require.Equal(t, "https://pay.example/y", cards[1].PayYearly)
}

func TestReleaseCardsDefaults(t *testing.T) {
	t.Parallel()

	content := "Fixed <script>alert(1)</script> when 2 < 3\n1. one"
	cards := releaseCards([]catalog.ReleaseItem{{Title: "Hotfix", ReleaseDate: "bad", Content: content}})
	require.Equal(t, "General", cards[0].Software)
	require.Equal(t, "bad", cards[0].Date)
	require.Equal(t, content, cards[0].Content)
}

func TestIssueCardsStatusDefaults(t *testing.T) {
	t.Parallel()

	cards := issueCards([]catalog.IssueItem{{Title: "a"}, {Title: "b", Status: "Investigating"}})
	require.Equal(t, "Open", cards[0].Status)
	require.Equal(t, "pill amber", cards[0].PillClass)
	require.Equal(t, "pill amber", cards[1].PillClass)
}

func TestPageCopyLoads(t *testing.T) {
	t.Parallel()

	pc, err := loadCopy(NewMarkdown())
	require.NoError(t, err)
	require.Contains(t, pc.about.HTML, "<strong>business software</strong>")
	require.Contains(t, pc.contact.HTML, `href="/pricing"`)
}
