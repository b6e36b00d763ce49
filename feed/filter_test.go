package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BharathDevanaboina/Linkup/models"
)

func ids(posts []models.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func testPosts() []models.Post {
	return []models.Post{
		{ID: "A", Category: models.CategoryEvent, Location: "Downtown Mall"},
		{ID: "B", Category: models.CategoryService, Location: "City Park"},
	}
}

func TestFilterPillar(t *testing.T) {
	got := Filter(testPosts(), ViewState{Pillar: PillarEvents, SubCategory: SubCategoryAll})
	assert.Equal(t, []string{"A"}, ids(got))

	got = Filter(testPosts(), ViewState{Pillar: PillarTasks, SubCategory: SubCategoryAll})
	assert.Equal(t, []string{"B"}, ids(got))
}

func TestFilterLocationCaseInsensitive(t *testing.T) {
	got := Filter(testPosts(), ViewState{Pillar: PillarEvents, SubCategory: SubCategoryAll, LocationQuery: "mall"})
	assert.Equal(t, []string{"A"}, ids(got))

	got = Filter(testPosts(), ViewState{Pillar: PillarEvents, SubCategory: SubCategoryAll, LocationQuery: "park"})
	assert.Empty(t, got)
}

func TestFilterLocationWhitespaceIsNoop(t *testing.T) {
	got := Filter(testPosts(), ViewState{Pillar: PillarEvents, SubCategory: SubCategoryAll, LocationQuery: "   "})
	assert.Equal(t, []string{"A"}, ids(got))
}

func TestFilterSubCategory(t *testing.T) {
	posts := []models.Post{
		{ID: "A", Category: models.CategoryEvent},
		{ID: "B", Category: models.CategorySocial},
	}
	got := Filter(posts, ViewState{Pillar: PillarEvents, SubCategory: string(models.CategorySocial)})
	assert.Equal(t, []string{"B"}, ids(got))

	// Empty sub-category behaves like All.
	got = Filter(posts, ViewState{Pillar: PillarEvents})
	assert.Equal(t, []string{"A", "B"}, ids(got))
}

func TestSecretPillarAnonymityUnion(t *testing.T) {
	posts := []models.Post{
		{ID: "A", Category: models.CategoryEvent, IsAnonymous: true},
		{ID: "B", Category: models.CategoryAnonymous, IsAnonymous: true},
		{ID: "C", Category: models.CategoryEvent},
	}

	// The anonymous Event surfaces in Secret despite its nominal pillar.
	got := Filter(posts, ViewState{Pillar: PillarSecret, SubCategory: SubCategoryAll})
	assert.Equal(t, []string{"A", "B"}, ids(got))

	// It still belongs to its nominal pillar too (union, not replacement).
	got = Filter(posts, ViewState{Pillar: PillarEvents, SubCategory: SubCategoryAll})
	assert.Equal(t, []string{"A", "C"}, ids(got))
}

func TestRadarModeBypassesAllFilters(t *testing.T) {
	posts := testPosts()
	got := Filter(posts, ViewState{
		Pillar:        PillarBounty,
		SubCategory:   string(models.CategoryBounty),
		LocationQuery: "nowhere",
		RadarMode:     true,
	})
	assert.Equal(t, ids(posts), ids(got))
}

func TestFilterOrderPreservingSubsequence(t *testing.T) {
	posts := []models.Post{
		{ID: "1", Category: models.CategorySocial},
		{ID: "2", Category: models.CategoryService},
		{ID: "3", Category: models.CategoryRide},
		{ID: "4", Category: models.CategoryBounty},
		{ID: "5", Category: models.CategoryEvent},
	}
	got := Filter(posts, ViewState{Pillar: PillarEvents, SubCategory: SubCategoryAll})
	assert.Equal(t, []string{"1", "3", "5"}, ids(got))
}

func TestFilterIdempotent(t *testing.T) {
	posts := testPosts()
	vs := ViewState{Pillar: PillarEvents, SubCategory: SubCategoryAll, LocationQuery: "mall"}

	first := Filter(posts, vs)
	second := Filter(posts, vs)
	assert.Equal(t, first, second)
}

func TestUnknownCategoryInvisibleEverywhere(t *testing.T) {
	posts := []models.Post{{ID: "X", Category: "flashmob"}}
	for _, pillar := range Pillars {
		got := Filter(posts, ViewState{Pillar: pillar, SubCategory: SubCategoryAll})
		assert.Emptyf(t, got, "unknown category leaked into %q", pillar)
	}

	bad := UnknownCategories(posts)
	require.Len(t, bad, 1)
	assert.Equal(t, "X", bad[0].ID)
}

func TestEmptyResultIsValid(t *testing.T) {
	got := Filter(nil, ViewState{Pillar: PillarEvents, SubCategory: SubCategoryAll})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
