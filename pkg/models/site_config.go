package models

import "github.com/vroommkart/storefront/pkg/enums"

type HeroBanner struct {
	ID          string     `json:"id"`
	Image       string     `json:"image"`
	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle"`
	AccentColor string     `json:"accentColor"`
	LinkTo      enums.Page `json:"linkTo"`
}

// SiteCategory is a home-page category tile.
type SiteCategory struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	BG     string `json:"bg"`
	Text   string `json:"text"`
	Shadow string `json:"shadow"`
}

// SiteConfig is the storefront appearance document. It is edited as a whole.
type SiteConfig struct {
	PrimaryColor    string         `json:"primaryColor"`
	AccentColor     string         `json:"accentColor"`
	LogoText        string         `json:"logoText"`
	LogoAccentText  string         `json:"logoAccentText"`
	HeroBanners     []HeroBanner   `json:"heroBanners"`
	SpotlightTitle  string         `json:"spotlightTitle"`
	SpotlightDesc   string         `json:"spotlightDesc"`
	SpotlightImage  string         `json:"spotlightImage"`
	SpotlightRarity string         `json:"spotlightRarity"`
	TickerMessages  []string       `json:"tickerMessages"`
	Categories      []SiteCategory `json:"categories"`
}

func (c SiteConfig) Clone() SiteConfig {
	out := c
	out.HeroBanners = cloneSlice(c.HeroBanners)
	out.TickerMessages = cloneSlice(c.TickerMessages)
	out.Categories = cloneSlice(c.Categories)
	return out
}
