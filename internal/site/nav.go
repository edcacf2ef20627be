package site

import "catalogsite/views/models"

// NavItem is one entry of the fixed site navigation.
type NavItem struct {
	Path  string
	Label string
}

// MainNav is the navigation shown on every page.
var MainNav = []NavItem{
	{Path: "/", Label: "Home"},
	{Path: "/products", Label: "Products"},
	{Path: "/download", Label: "Download"},
	{Path: "/pricing", Label: "Pricing"},
	{Path: "/releases", Label: "Release Notes"},
	{Path: "/clients", Label: "Our Clients"},
	{Path: "/known-issues", Label: "Known Issues"},
	{Path: "/about", Label: "About"},
	{Path: "/contact", Label: "Contact Us"},
}

// BuildNav marks the entry matching currentPath as active.
func BuildNav(currentPath string) []models.NavLink {
	if currentPath == "" {
		currentPath = "/"
	}
	links := make([]models.NavLink, len(MainNav))
	for i, it := range MainNav {
		links[i] = models.NavLink{
			Href:   it.Path,
			Label:  it.Label,
			Active: it.Path == currentPath,
		}
	}
	return links
}
