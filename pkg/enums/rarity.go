package enums

import "fmt"

// Rarity is a marketing tag on a product. The zero value means untagged.
type Rarity string

const (
	RarityCommon  Rarity = "Common"
	RarityRare    Rarity = "Rare"
	RarityLimited Rarity = "Limited"
	RarityPremium Rarity = "Premium"
)

var validRarities = []Rarity{
	RarityCommon,
	RarityRare,
	RarityLimited,
	RarityPremium,
}

func (r Rarity) String() string {
	return string(r)
}

// IsValid reports whether the value matches a rarity tag.
func (r Rarity) IsValid() bool {
	for _, candidate := range validRarities {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRarity converts the raw string to Rarity.
func ParseRarity(value string) (Rarity, error) {
	for _, candidate := range validRarities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid rarity %q", value)
}
