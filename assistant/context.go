package assistant

import (
	"fmt"
	"strings"

	"github.com/fosagri/assist/catalog"
)

// partnerGroups summarizes the partner network by sector for the
// grounding document. Kept as static text: the grouping is editorial,
// not derivable from catalog fields.
var partnerGroups = []string{
	"- Banques: BMCI, Banque Populaire",
	"- Crédit: Salafin, Wafa Immobilier",
	"- Assurances: Wafa Assurance, SNTL Assurances",
	"- Commerce: KITEA, Biougnach",
	"- Télécom: INWI",
}

var clubRules = []string{
	"- Enfant < 5 ans: exonéré des frais",
	"- Enfant ≥ 26 ans: considéré comme adulte",
	"- Enfant < 16 ans: pas d'accès au GYM",
	"- Inscription via plateforme fos-agri.ma/club.html",
}

// ContextBuilder renders the grounding document handed to the
// reasoning backend as its system prompt. The document is a pure
// function of the catalog.
type ContextBuilder struct {
	cat *catalog.Catalog
}

// NewContextBuilder creates a builder over the given catalog.
func NewContextBuilder(cat *catalog.Catalog) (*ContextBuilder, error) {
	if cat == nil {
		return nil, ErrCatalogRequired
	}
	return &ContextBuilder{cat: cat}, nil
}

// Build renders the full grounding document: assistant identity,
// organization contact block, one line per catalog entry with its
// link, the FAQ, the partner summary, and the club rules, closed by
// the response instructions.
func (b *ContextBuilder) Build() string {
	org := b.cat.Organization

	var sb strings.Builder
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Tu es l'assistant intelligent de FOS-Agri (%s, Maroc).\n", org.FullName)
	sb.WriteString("\n")

	sb.WriteString("INFORMATIONS ORGANISATION:\n")
	fmt.Fprintf(&sb, "- Site web: %s\n", org.Website)
	fmt.Fprintf(&sb, "- Email: %s\n", org.Email)
	fmt.Fprintf(&sb, "- Téléphone: %s\n", org.Phone)
	fmt.Fprintf(&sb, "- Mission: %s\n", org.Mission)
	sb.WriteString("\n")

	sb.WriteString("PRESTATIONS DISPONIBLES:\n")
	for i := range b.cat.Entries {
		e := &b.cat.Entries[i]
		link := "Page: " + e.URL
		if e.Type == catalog.EntryTypePDF {
			link = "Document PDF: " + e.URL
		}
		fmt.Fprintf(&sb, "- %s: %s (%s)\n", e.Title, e.Description, link)
	}
	sb.WriteString("\n")

	sb.WriteString("FAQ:\n")
	for i, f := range b.cat.FAQ {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "Q: %s\nR: %s\n", f.Question, f.Answer)
	}
	sb.WriteString("\n")

	sb.WriteString("PARTENAIRES:\n")
	for _, line := range partnerGroups {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString("RÈGLES CLUB AGRICULTURE:\n")
	for _, line := range clubRules {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString("Réponds de manière précise, professionnelle et en français. Fournis les liens pertinents quand disponibles. Si tu ne connais pas une information, dis-le clairement et suggère de contacter FOS-Agri directement.\n")
	return sb.String()
}

// Fingerprint returns a stable fingerprint of the rendered document,
// useful for cache keys and change detection.
func (b *ContextBuilder) Fingerprint() catalog.ID {
	return catalog.IDFromContent(b.Build())
}
