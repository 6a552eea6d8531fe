package catalog

// EntryType classifies how a catalog entry is consumed by the reader.
type EntryType string

const (
	// EntryTypePage is a regular web page on the organization's site.
	EntryTypePage EntryType = "page"
	// EntryTypePDF is a downloadable PDF document.
	EntryTypePDF EntryType = "pdf"
	// EntryTypePartner is a partner listing without a dedicated page.
	EntryTypePartner EntryType = "partner"
)

// Sentinel facet values accepted by the search pipeline. A filter set
// to its sentinel matches every entry.
const (
	CategoryAll           = "all"
	TypeAll     EntryType = "all"
)

// Organization identifies the body behind the catalog. Its fields are
// echoed verbatim into the AI grounding document.
type Organization struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Website  string `json:"website"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Fax      string `json:"fax"`
	Mission  string `json:"mission"`
}

// Category describes one facet bucket, including the presentation
// tokens a host UI needs to render its filter chip.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// FAQ is a question/answer pair used only as grounding text for the
// reasoning backend; the ranking engine never matches against it.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Contact holds the contact block some entries carry.
type Contact struct {
	Emails  []string `json:"emails,omitempty"`
	Address string   `json:"address,omitempty"`
}

// Offer is one row of an entry's commercial offer table.
type Offer struct {
	City     string `json:"city"`
	Kind     string `json:"kind"`
	Price    string `json:"price,omitempty"`
	Discount string `json:"discount,omitempty"`
}

// Entry is one immutable catalog record. Entries are loaded once at
// process start and never mutated; the optional detail blocks below are
// free-form and vary per entry.
type Entry struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	URL         string    `json:"url"`
	Type        EntryType `json:"type"`
	Keywords    []string  `json:"keywords"`

	Details        string   `json:"details,omitempty"`
	Eligibility    string   `json:"eligibility,omitempty"`
	Criteria       string   `json:"criteria,omitempty"`
	Services       []string `json:"services,omitempty"`
	Rules          []string `json:"rules,omitempty"`
	Facilities     []string `json:"facilities,omitempty"`
	Steps          []string `json:"steps,omitempty"`
	Locations      []string `json:"locations,omitempty"`
	Price          string   `json:"price,omitempty"`
	Coverage       string   `json:"coverage,omitempty"`
	ProcessingTime string   `json:"processing_time,omitempty"`
	Commitment     string   `json:"commitment,omitempty"`
	Contacts       *Contact `json:"contacts,omitempty"`
	Offers         []Offer  `json:"offers,omitempty"`
}

// HasDetails reports whether the entry carries any expandable detail block.
func (e *Entry) HasDetails() bool {
	return e.Details != "" || e.Eligibility != "" || e.Criteria != "" ||
		len(e.Services) > 0 || len(e.Rules) > 0 || len(e.Facilities) > 0 ||
		len(e.Steps) > 0 || len(e.Locations) > 0 || e.Price != "" ||
		e.Coverage != "" || e.Contacts != nil || len(e.Offers) > 0
}

// Catalog is the full static knowledge base: organization identity,
// category descriptors, entries in insertion order, the FAQ, and the
// suggested quick queries a host may surface.
type Catalog struct {
	Organization Organization `json:"organization"`
	Categories   []Category   `json:"categories"`
	Entries      []Entry      `json:"entries"`
	FAQ          []FAQ        `json:"faq"`
	Suggestions  []string     `json:"suggestions,omitempty"`
}

// EntryByID returns the entry with the given id, or nil if absent.
func (c *Catalog) EntryByID(id int) *Entry {
	for i := range c.Entries {
		if c.Entries[i].ID == id {
			return &c.Entries[i]
		}
	}
	return nil
}

// CategoryByID returns the category descriptor with the given id, or nil.
func (c *Catalog) CategoryByID(id string) *Category {
	for i := range c.Categories {
		if c.Categories[i].ID == id {
			return &c.Categories[i]
		}
	}
	return nil
}
