package seed

import (
	"github.com/vroommkart/storefront/pkg/enums"
	"github.com/vroommkart/storefront/pkg/models"
)

var (
	SupercarBrands = []string{
		"Hot Wheels", "Matchbox", "Mini GT", "Majorette", "Maisto",
		"Bburago", "Solido", "Inno64", "Pop Race", "RMZ City",
	}
	AnimeBrands = []string{
		"Bandai Spirits", "S.H.Figuarts", "Good Smile Company", "Nendoroid", "Pop Up Parade",
		"Banpresto", "MegaHouse", "Kotobukiya", "Aniplex",
	}
)

// Products returns a fresh copy of the built-in catalog.
func Products() []models.Product {
	return models.CloneProducts(catalog)
}

var catalog = []models.Product{
	{
		ID:          "mgt-1109",
		Name:        "Lotus Esprit Turbo - Metallic Silver",
		Brand:       "Mini GT",
		Price:       1149,
		Category:    enums.CategorySupercars,
		Images:      []string{"https://images.unsplash.com/photo-1603386329225-868f9b1ee6c9?auto=format&fit=crop&q=80&w=1200"},
		Scale:       "1:64",
		Rarity:      enums.RarityCommon,
		Description: "Mini GT #1109. RHD version. A classic 80s icon in stunning Metallic Silver.",
		Rating:      4.8,
		Reviews:     42,
		Stock:       12,
	},
	{
		ID:          "mgt-1122",
		Name:        "Ford Mustang Mach 1 1971 - Race Red",
		Brand:       "Mini GT",
		Price:       1149,
		Category:    enums.CategorySupercars,
		Images:      []string{"https://images.unsplash.com/photo-1584345604476-8ec5e12e42dd?auto=format&fit=crop&q=80&w=1200"},
		Scale:       "1:64",
		Rarity:      enums.RarityCommon,
		Description: "Mini GT #1122. LHD version. High-performance Ford Mustang Mach 1 from 1971.",
		Rating:      4.9,
		Reviews:     38,
		Stock:       7,
	},
	{
		ID:          "kh-nsx-01",
		Name:        "Honda NSX Kaido House V2 - Red/Black",
		Brand:       "Hot Wheels",
		Price:       2499,
		Category:    enums.CategorySupercars,
		Images:      []string{"https://images.unsplash.com/photo-1594731804116-64601132649f?auto=format&fit=crop&q=80&w=1200"},
		Scale:       "1:64",
		Rarity:      enums.RarityPremium,
		Description: "Hot Wheels Premium series. Features incredible detail and Real Riders tires.",
		Rating:      5.0,
		Reviews:     67,
		Stock:       3,
	},
	{
		ID:          "tw-lbwk-01",
		Name:        "Nissan Silvia S15 Liberty Walk - White/Yellow",
		Brand:       "Inno64",
		Price:       1849,
		Category:    enums.CategorySupercars,
		Images:      []string{"https://images.unsplash.com/photo-1614162692292-7ac56d7f7f1e?auto=format&fit=crop&q=80&w=1200"},
		Scale:       "1:64",
		Rarity:      enums.RarityLimited,
		Description: "Inno64 high-detail series. Includes acrylic display case.",
		Rating:      4.9,
		Reviews:     25,
		Stock:       5,
	},
	{
		ID:          "shf-sukuna",
		Name:        "S.H.Figuarts Ryomen Sukuna - Jujutsu Kaisen",
		Brand:       "S.H.Figuarts",
		Price:       4999,
		Category:    enums.CategoryAnimeFigurines,
		Images:      []string{"https://images.unsplash.com/photo-1612444530582-fc66183b16f7?auto=format&fit=crop&q=80&w=1200"},
		Description: "Authentic Bandai Spirits. Highly articulated action figure.",
		Rating:      5.0,
		Reviews:     42,
		Stock:       6,
	},
}
