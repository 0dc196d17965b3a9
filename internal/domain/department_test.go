package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogSortArticles(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()
	articles := []ParsedArticle{
		{Filename: "a", Department: "その他"},
		{Filename: "b", Department: "はじめに"},
		{Filename: "c", Department: "広報部"},
	}

	catalog.SortArticles(articles)

	got := []string{articles[0].Department, articles[1].Department, articles[2].Department}
	assert.Equal(t, []string{"はじめに", "広報部", "その他"}, got)
}

func TestCatalogUnknownSortsLastInEncounterOrder(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()
	articles := []ParsedArticle{
		{Filename: "x", Department: "外部寄稿"},
		{Filename: "y", Department: "その他"},
		{Filename: "z", Department: "memo.txt"},
		{Filename: "w", Department: "会長挨拶"},
	}

	catalog.SortArticles(articles)

	var order []string
	for _, a := range articles {
		order = append(order, a.Filename)
	}
	assert.Equal(t, []string{"w", "y", "x", "z"}, order)
	assert.Greater(t, catalog.Rank("外部寄稿"), catalog.Rank("その他"))
}

func TestCatalogIsSpecialIsExact(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()
	assert.True(t, catalog.IsSpecial("はじめに"))
	assert.True(t, catalog.IsSpecial("会長挨拶"))
	assert.False(t, catalog.IsSpecial(" 会長挨拶"))
	assert.False(t, catalog.IsSpecial("広報部"))
}

func TestModifiedLabel(t *testing.T) {
	t.Parallel()

	assert.Empty(t, SubmittedFile{}.ModifiedLabel())
}
