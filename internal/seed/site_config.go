package seed

import (
	"github.com/vroommkart/storefront/pkg/enums"
	"github.com/vroommkart/storefront/pkg/models"
)

// SiteConfig returns a fresh copy of the default storefront appearance.
func SiteConfig() models.SiteConfig {
	return defaultSiteConfig.Clone()
}

var defaultSiteConfig = models.SiteConfig{
	PrimaryColor:   "#2563eb",
	AccentColor:    "#facc15",
	LogoText:       "Vroomm",
	LogoAccentText: "Kart",
	HeroBanners: []models.HeroBanner{
		{
			ID:          "hero-supercars",
			Image:       "https://images.unsplash.com/photo-1603386329225-868f9b1ee6c9?auto=format&fit=crop&q=80&w=1600",
			Title:       "Collector's Pride",
			Subtitle:    "1:64 supercars from Mini GT, Inno64 and Hot Wheels Premium.",
			AccentColor: "#2563eb",
			LinkTo:      enums.PageSupercars,
		},
		{
			ID:          "hero-anime",
			Image:       "https://images.unsplash.com/photo-1612444530582-fc66183b16f7?auto=format&fit=crop&q=80&w=1600",
			Title:       "Otaku Haven",
			Subtitle:    "Authentic figures from Bandai Spirits and Good Smile Company.",
			AccentColor: "#db2777",
			LinkTo:      enums.PageAnime,
		},
	},
	SpotlightTitle:  "Kaido House Drop",
	SpotlightDesc:   "The Honda NSX V2 lands in limited numbers. Real Riders tires, full metal body.",
	SpotlightImage:  "https://images.unsplash.com/photo-1594731804116-64601132649f?auto=format&fit=crop&q=80&w=1200",
	SpotlightRarity: string(enums.RarityPremium),
	TickerMessages: []string{
		"Free shipping on orders above ₹1999",
		"New Mini GT arrivals every Friday",
		"Pay with UPI or cash on delivery",
	},
	Categories: []models.SiteCategory{
		{ID: "supercars", Name: "Supercar Collection", Icon: "🏎️", BG: "bg-blue-50", Text: "text-blue-700", Shadow: "shadow-blue-200"},
		{ID: "toys", Name: "Toys", Icon: "🧸", BG: "bg-amber-50", Text: "text-amber-700", Shadow: "shadow-amber-200"},
		{ID: "anime", Name: "Anime Figurines", Icon: "🎎", BG: "bg-pink-50", Text: "text-pink-700", Shadow: "shadow-pink-200"},
	},
}
