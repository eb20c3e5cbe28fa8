package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	p := Product{Ratings: []Rating{{Score: 5}, {Score: 4}, {Score: 3}}}
	assert.InDelta(t, 4.0, p.AverageRating(), 0.0001)

	empty := Product{}
	assert.Zero(t, empty.AverageRating())
}

func TestSellerName(t *testing.T) {
	named := Product{Owner: &ProductOwner{Name: "Hana Tesfaye"}}
	assert.Equal(t, "Hana Tesfaye", named.SellerName())

	byEmail := Product{Owner: &ProductOwner{Email: "hana@example.com"}}
	assert.Equal(t, "hana", byEmail.SellerName())

	malformed := Product{Owner: &ProductOwner{Email: "no-at-sign"}}
	assert.Equal(t, "no-at-sign", malformed.SellerName())

	anonymous := Product{}
	assert.Equal(t, "Seller", anonymous.SellerName())
}

func TestCategoryFromSlug(t *testing.T) {
	cases := map[string]string{
		"bags-purses":         CategoryBags,
		"clothes":             CategoryClothes,
		"shoes":               CategoryShoes,
		"accessories-jewelry": CategoryJewelries,
		"art-wall-decor":      CategoryArts,
		"bath-beauty":         CategoryBeauty,
	}
	for slug, want := range cases {
		got, ok := CategoryFromSlug(slug)
		assert.True(t, ok, slug)
		assert.Equal(t, want, got)
	}

	_, ok := CategoryFromSlug("electronics")
	assert.False(t, ok)
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory(CategoryBags))
	assert.False(t, ValidCategory("Electronics"))
	assert.False(t, ValidCategory(""))
}
