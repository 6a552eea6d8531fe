package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fosagri/assist/catalog"
)

func groundingCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return c
}

func TestNewContextBuilder(t *testing.T) {
	t.Run("nil catalog rejected", func(t *testing.T) {
		b, err := NewContextBuilder(nil)
		assert.Nil(t, b)
		assert.ErrorIs(t, err, ErrCatalogRequired)
	})

	t.Run("valid catalog", func(t *testing.T) {
		b, err := NewContextBuilder(groundingCatalog(t))
		require.NoError(t, err)
		assert.NotNil(t, b)
	})
}

func TestContextBuilder_Build(t *testing.T) {
	b, err := NewContextBuilder(groundingCatalog(t))
	require.NoError(t, err)

	doc := b.Build()

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, doc, b.Build())
	})

	t.Run("identity and sections", func(t *testing.T) {
		assert.Contains(t, doc, "Tu es l'assistant intelligent de FOS-Agri")
		assert.Contains(t, doc, "INFORMATIONS ORGANISATION:")
		assert.Contains(t, doc, "PRESTATIONS DISPONIBLES:")
		assert.Contains(t, doc, "FAQ:")
		assert.Contains(t, doc, "PARTENAIRES:")
		assert.Contains(t, doc, "RÈGLES CLUB AGRICULTURE:")
	})

	t.Run("organization contact block", func(t *testing.T) {
		assert.Contains(t, doc, "- Site web: https://www.fos-agri.ma")
		assert.Contains(t, doc, "- Email: fos-agri@fos-agri.ma")
		assert.Contains(t, doc, "- Téléphone: 05 37 66 55 40")
	})

	t.Run("every entry present with link tagging", func(t *testing.T) {
		cat := groundingCatalog(t)
		for _, e := range cat.Entries {
			assert.Contains(t, doc, "- "+e.Title+": ")
		}
		// PDFs and pages are tagged differently.
		assert.Contains(t, doc, "(Document PDF: https://fos-agri.ma/assets/club/guide.pdf)")
		assert.Contains(t, doc, "(Page: https://www.fos-agri.ma/prestations/prest-pms.html)")
	})

	t.Run("faq rendered as question answer pairs", func(t *testing.T) {
		assert.Contains(t, doc, "Q: Comment adhérer à FOS-Agri?")
		assert.Contains(t, doc, "R: L'adhésion à FOS-Agri est réservée au personnel")
	})

	t.Run("closing instruction", func(t *testing.T) {
		assert.True(t, strings.HasSuffix(strings.TrimRight(doc, "\n"),
			"suggère de contacter FOS-Agri directement."))
	})
}

func TestContextBuilder_Fingerprint(t *testing.T) {
	b1, err := NewContextBuilder(groundingCatalog(t))
	require.NoError(t, err)
	b2, err := NewContextBuilder(groundingCatalog(t))
	require.NoError(t, err)

	assert.Equal(t, b1.Fingerprint(), b2.Fingerprint())

	modified := groundingCatalog(t)
	modified.Entries[0].Description = "changée"
	b3, err := NewContextBuilder(modified)
	require.NoError(t, err)
	assert.NotEqual(t, b1.Fingerprint(), b3.Fingerprint())
}
