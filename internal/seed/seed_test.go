package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsAreValidAndIndependent(t *testing.T) {
	products := Products()
	require.NotEmpty(t, products)

	seen := map[string]bool{}
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate seed id %s", p.ID)
		seen[p.ID] = true
		assert.True(t, p.Category.IsValid(), p.ID)
		assert.NotEmpty(t, p.Images, p.ID)
		assert.GreaterOrEqual(t, p.Stock, 0, p.ID)
		assert.True(t, p.Rating >= 0 && p.Rating <= 5, p.ID)
		if p.Rarity != "" {
			assert.True(t, p.Rarity.IsValid(), p.ID)
		}
	}

	products[0].Stock = -100
	products[0].Images[0] = "mutated"
	fresh := Products()
	assert.NotEqual(t, -100, fresh[0].Stock)
	assert.NotEqual(t, "mutated", fresh[0].Images[0])
}

func TestSiteConfigHasBanners(t *testing.T) {
	cfg := SiteConfig()
	require.NotEmpty(t, cfg.HeroBanners)
	for _, b := range cfg.HeroBanners {
		assert.NotEmpty(t, b.ID)
		assert.True(t, b.LinkTo.IsValid(), b.ID)
	}

	cfg.HeroBanners = nil
	assert.NotEmpty(t, SiteConfig().HeroBanners)
}
