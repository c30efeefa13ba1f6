package enums

import "fmt"

// Page is a storefront view a hero banner can link to.
type Page string

const (
	PageHome            Page = "home"
	PageSupercars       Page = "supercars"
	PageToys            Page = "toys"
	PageAnime           Page = "anime"
	PageProductDetail   Page = "detail"
	PageCart            Page = "cart"
	PageCheckout        Page = "checkout"
	PageAbout           Page = "about"
	PageContact         Page = "contact"
	PageAdmin           Page = "admin"
	PageCollectorsGuide Page = "collectors-guide"
	PagePreOrderPolicy  Page = "preorder-policy"
	PageReturnsRefund   Page = "returns-refund"
	PagePrivacyPolicy   Page = "privacy-policy"
)

var validPages = []Page{
	PageHome,
	PageSupercars,
	PageToys,
	PageAnime,
	PageProductDetail,
	PageCart,
	PageCheckout,
	PageAbout,
	PageContact,
	PageAdmin,
	PageCollectorsGuide,
	PagePreOrderPolicy,
	PageReturnsRefund,
	PagePrivacyPolicy,
}

func (p Page) String() string {
	return string(p)
}

// IsValid reports whether the value names a known page.
func (p Page) IsValid() bool {
	for _, candidate := range validPages {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePage converts the raw string to Page.
func ParsePage(value string) (Page, error) {
	for _, candidate := range validPages {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid page %q", value)
}
