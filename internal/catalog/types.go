package catalog

// CatalogItem is one software product as served by /api/software.json
type CatalogItem struct {
	ID                 int64    `bson:"_id" json:"id" yaml:"id"`
	Name               string   `bson:"name" json:"name" yaml:"name"`
	Slug               string   `bson:"slug,omitempty" json:"slug,omitempty" yaml:"slug"`
	Category           string   `bson:"category,omitempty" json:"category,omitempty" yaml:"category"`
	Description        string   `bson:"description,omitempty" json:"description,omitempty" yaml:"description"`
	Image              string   `bson:"image,omitempty" json:"image,omitempty" yaml:"image"`
	Gallery            []string `bson:"gallery,omitempty" json:"gallery,omitempty" yaml:"gallery"`
	IsActive           *bool    `bson:"is_active,omitempty" json:"is_active,omitempty" yaml:"is_active"`
	IsFree             *bool    `bson:"is_free,omitempty" json:"is_free,omitempty" yaml:"is_free"`
	PriceOneTime       *float64 `bson:"price_one_time,omitempty" json:"price_one_time,omitempty" yaml:"price_one_time"`
	PriceYearly        *float64 `bson:"price_yearly,omitempty" json:"price_yearly,omitempty" yaml:"price_yearly"`
	PaymentLinkOneTime string   `bson:"payment_link_onetime,omitempty" json:"payment_link_onetime,omitempty" yaml:"payment_link_onetime"`
	PaymentLinkYearly  string   `bson:"payment_link_yearly,omitempty" json:"payment_link_yearly,omitempty" yaml:"payment_link_yearly"`
	DownloadURL        string   `bson:"download_url,omitempty" json:"download_url,omitempty" yaml:"download_url"`
	SortOrder          *int     `bson:"sort_order,omitempty" json:"sort_order,omitempty" yaml:"sort_order"`
}

// Active reports whether the item is not explicitly deactivated.
func (c CatalogItem) Active() bool {
	return c.IsActive == nil || *c.IsActive
}

// Free reports whether the item is explicitly marked free.
func (c CatalogItem) Free() bool {
	return c.IsFree != nil && *c.IsFree
}

// Order returns sort_order, defaulting to 0.
func (c CatalogItem) Order() int {
	if c.SortOrder == nil {
		return 0
	}
	return *c.SortOrder
}

// Images returns the main image followed by the gallery, skipping blanks.
func (c CatalogItem) Images() []string {
	imgs := make([]string, 0, 1+len(c.Gallery))
	if c.Image != "" {
		imgs = append(imgs, c.Image)
	}
	for _, u := range c.Gallery {
		if u != "" {
			imgs = append(imgs, u)
		}
	}
	return imgs
}

// ClientItem is one customer shown on the clients page
type ClientItem struct {
	ID        int64  `bson:"_id" json:"id" yaml:"id"`
	Name      string `bson:"name" json:"name" yaml:"name"`
	Industry  string `bson:"industry,omitempty" json:"industry,omitempty" yaml:"industry"`
	City      string `bson:"city,omitempty" json:"city,omitempty" yaml:"city"`
	Website   string `bson:"website,omitempty" json:"website,omitempty" yaml:"website"`
	Image     string `bson:"image,omitempty" json:"image,omitempty" yaml:"image"`
	SortOrder int    `bson:"sort_order" json:"sort_order" yaml:"sort_order"`
	IsActive  *bool  `bson:"is_active,omitempty" json:"-" yaml:"is_active"`
}

// IssueItem is one known issue
type IssueItem struct {
	ID        int64  `bson:"_id" json:"id" yaml:"id"`
	Title     string `bson:"title" json:"title" yaml:"title"`
	Status    string `bson:"status,omitempty" json:"status" yaml:"status"`
	Content   string `bson:"content,omitempty" json:"content" yaml:"content"`
	SortOrder int    `bson:"sort_order" json:"-" yaml:"sort_order"`
	IsActive  *bool  `bson:"is_active,omitempty" json:"-" yaml:"is_active"`
}

// ReleaseItem is one published release note
type ReleaseItem struct {
	ID           int64  `bson:"_id" json:"id" yaml:"id"`
	Title        string `bson:"title" json:"title" yaml:"title"`
	Version      string `bson:"version,omitempty" json:"version,omitempty" yaml:"version"`
	SoftwareID   *int64 `bson:"software_id,omitempty" json:"software_id,omitempty" yaml:"software_id"`
	SoftwareName string `bson:"-" json:"software_name,omitempty" yaml:"-"`
	ReleaseDate  string `bson:"release_date" json:"release_date" yaml:"release_date"`
	Content      string `bson:"content,omitempty" json:"content" yaml:"content"`
	IsPublished  *bool  `bson:"is_published,omitempty" json:"-" yaml:"is_published"`
}

// Document is the envelope every catalog endpoint returns.
type Document[T any] struct {
	Items []T `json:"items"`
}

// SeedData is the YAML layout accepted by LoadSeed.
type SeedData struct {
	Software []CatalogItem `yaml:"software"`
	Clients  []ClientItem  `yaml:"clients"`
	Issues   []IssueItem   `yaml:"known_issues"`
	Releases []ReleaseItem `yaml:"releases"`
}

func flag(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
