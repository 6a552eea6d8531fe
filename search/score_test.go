package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fosagri/assist/catalog"
)

func scoreEntry() *catalog.Entry {
	return &catalog.Entry{
		ID:          6,
		Title:       "Bourses d'Excellence",
		Description: "Attribution de bourses aux étudiants pour encourager l'excellence académique.",
		Category:    "education",
		URL:         "https://www.fos-agri.ma/bourses.html",
		Type:        catalog.EntryTypePage,
		Keywords:    []string{"bourses", "excellence", "mérite"},
	}
}

func TestScore(t *testing.T) {
	e := scoreEntry()

	t.Run("no terms scores zero", func(t *testing.T) {
		assert.Zero(t, Score(e, nil))
		assert.Zero(t, Score(e, []string{}))
	})

	t.Run("short terms are ignored", func(t *testing.T) {
		assert.Zero(t, Score(e, []string{"d", "a"}))
	})

	t.Run("title substring plus prefix", func(t *testing.T) {
		// title 100 + prefix 50 + keyword substring 40 + description 20
		assert.Equal(t, 210, Score(e, []string{"bourse"}))
	})

	t.Run("exact keyword outranks substring", func(t *testing.T) {
		// title 100 + exact keyword 80 + description 20
		assert.Equal(t, 200, Score(e, []string{"excellence"}))
	})

	t.Run("terms accumulate", func(t *testing.T) {
		assert.Equal(t, 410, Score(e, Tokenize("bourse excellence")))
	})

	t.Run("keyword only match", func(t *testing.T) {
		// exact keyword 80, nothing else matches
		assert.Equal(t, 80, Score(e, []string{"merite"}))
	})

	t.Run("unmatched term scores zero", func(t *testing.T) {
		assert.Zero(t, Score(e, []string{"piscine"}))
	})
}

func TestRelevancePercent(t *testing.T) {
	assert.Equal(t, 0, RelevancePercent(0))
	assert.Equal(t, 10, RelevancePercent(20))
	assert.Equal(t, 100, RelevancePercent(200))
	assert.Equal(t, 100, RelevancePercent(999))
}
