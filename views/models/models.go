package models

// NavLink is one entry of the site navigation
type NavLink struct {
	Href   string
	Label  string
	Active bool
}

// PageView carries the chrome shared by every page
type PageView struct {
	Title string
	Path  string
	Nav   []NavLink
}

// DownloadCard is a free product on the download page
type DownloadCard struct {
	DOMID       string // dl_{id}
	Name        string
	Description string
	Category    string
	DownloadURL string
	Images      []string
}

// PriceCard is a paid product on the pricing page
type PriceCard struct {
	DOMID       string // pc_{id}
	Name        string
	Description string
	Category    string
	OneTime     string // formatted price, empty when unset
	Yearly      string // formatted price, empty hides the yearly line
	PayOneTime  string
	PayYearly   string
	Images      []string
}

// ProductCard is a paid product on the products page
type ProductCard struct {
	Name        string
	Description string
	Category    string
	Slug        string
	Image       string
}

// HeroSlide is one slide of the featured products carousel
type HeroSlide struct {
	Name        string
	Description string
	DownloadURL string
	Image       string
}

// HeroView is the carousel with its current state
type HeroView struct {
	Slides      []HeroSlide
	Active      int
	Running     bool
	FragmentURL string
}

// ClientCard is one customer tile
type ClientCard struct {
	Name    string
	Image   string
	Meta    string
	Website string
}

// IssueCard is one known issue
type IssueCard struct {
	Title     string
	Status    string
	PillClass string
	Content   string
}

// ReleaseCard is one release note
type ReleaseCard struct {
	Title    string
	Version  string
	Date     string
	Software string
	Content  string
}

// Prose is trusted page copy, already rendered to sanitized HTML
type Prose struct {
	HTML string
}
