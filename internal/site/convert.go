package site

import (
	"fmt"
	"strings"

	"catalogsite/internal/catalog"
	"catalogsite/views/models"
)

const (
	defaultCategory    = "Software"
	defaultSoftware    = "General"
	defaultIssueStatus = "Open"
	placeholderImage   = "/assets/img/placeholder.svg"
	noLink             = "#"
)

// domID derives the element id from the item id, or from its position when the id is unset.
func domID(prefix string, id int64, idx int) string {
	if id == 0 {
		return fmt.Sprintf("%s_%d", prefix, idx)
	}
	return fmt.Sprintf("%s_%d", prefix, id)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func downloadCards(items []catalog.CatalogItem) []models.DownloadCard {
	views := make([]models.DownloadCard, len(items))
	for i, it := range items {
		views[i] = models.DownloadCard{
			DOMID:       domID("dl", it.ID, i),
			Name:        it.Name,
			Description: it.Description,
			Category:    orDefault(it.Category, defaultCategory),
			DownloadURL: orDefault(it.DownloadURL, noLink),
			Images:      it.Images(),
		}
	}
	return views
}

func priceCards(items []catalog.CatalogItem) []models.PriceCard {
	views := make([]models.PriceCard, len(items))
	for i, it := range items {
		var yearly string
		if it.PriceYearly != nil && *it.PriceYearly != 0 {
			yearly = Price(it.PriceYearly)
		}
		views[i] = models.PriceCard{
			DOMID:       domID("pc", it.ID, i),
			Name:        it.Name,
			Description: it.Description,
			Category:    orDefault(it.Category, defaultCategory),
			OneTime:     Price(it.PriceOneTime),
			Yearly:      yearly,
			PayOneTime:  orDefault(it.PaymentLinkOneTime, noLink),
			PayYearly:   orDefault(it.PaymentLinkYearly, noLink),
			Images:      it.Images(),
		}
	}
	return views
}

func productCards(items []catalog.CatalogItem) []models.ProductCard {
	views := make([]models.ProductCard, len(items))
	for i, it := range items {
		views[i] = models.ProductCard{
			Name:        it.Name,
			Description: it.Description,
			Category:    orDefault(it.Category, defaultCategory),
			Slug:        it.Slug,
			Image:       it.Image,
		}
	}
	return views
}

func heroSlides(items []catalog.CatalogItem) []models.HeroSlide {
	views := make([]models.HeroSlide, len(items))
	for i, it := range items {
		views[i] = models.HeroSlide{
			Name:        it.Name,
			Description: it.Description,
			DownloadURL: it.DownloadURL,
			Image:       it.Image,
		}
	}
	return views
}

func clientCards(items []catalog.ClientItem) []models.ClientCard {
	views := make([]models.ClientCard, len(items))
	for i, it := range items {
		var meta []string
		for _, part := range []string{it.Industry, it.City} {
			if part != "" {
				meta = append(meta, part)
			}
		}
		views[i] = models.ClientCard{
			Name:    it.Name,
			Image:   orDefault(it.Image, placeholderImage),
			Meta:    strings.Join(meta, " • "),
			Website: it.Website,
		}
	}
	return views
}

func pillClass(status string) string {
	switch status {
	case "Open":
		return "pill red"
	case "Fixed":
		return "pill green"
	default:
		return "pill amber"
	}
}

func issueCards(items []catalog.IssueItem) []models.IssueCard {
	views := make([]models.IssueCard, len(items))
	for i, it := range items {
		views[i] = models.IssueCard{
			Title:     it.Title,
			Status:    orDefault(it.Status, defaultIssueStatus),
			PillClass: pillClass(it.Status),
			Content:   it.Content,
		}
	}
	return views
}

func releaseCards(items []catalog.ReleaseItem) []models.ReleaseCard {
	views := make([]models.ReleaseCard, len(items))
	for i, it := range items {
		views[i] = models.ReleaseCard{
			Title:    it.Title,
			Version:  it.Version,
			Date:     ReleaseDate(it.ReleaseDate),
			Software: orDefault(it.SoftwareName, defaultSoftware),
			Content:  it.Content,
		}
	}
	return views
}
