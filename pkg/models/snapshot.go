package models

// Snapshot is the durable state of a store at one point in time.
type Snapshot struct {
	Products   []Product  `json:"products"`
	Orders     []Order    `json:"orders"`
	Customers  []Customer `json:"customers"`
	SiteConfig SiteConfig `json:"siteConfig"`
}

func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Products:   CloneProducts(s.Products),
		Orders:     CloneOrders(s.Orders),
		Customers:  CloneCustomers(s.Customers),
		SiteConfig: s.SiteConfig.Clone(),
	}
}

// SnapshotPatch is a partial snapshot. Nil fields leave the matching slice untouched.
type SnapshotPatch struct {
	Products   *[]Product  `json:"products,omitempty"`
	Orders     *[]Order    `json:"orders,omitempty"`
	Customers  *[]Customer `json:"customers,omitempty"`
	SiteConfig *SiteConfig `json:"siteConfig,omitempty"`
}

// IsEmpty reports whether the patch carries no slice at all.
func (p SnapshotPatch) IsEmpty() bool {
	return p.Products == nil && p.Orders == nil && p.Customers == nil && p.SiteConfig == nil
}

// FullPatch wraps every slice of s.
func FullPatch(s Snapshot) SnapshotPatch {
	return SnapshotPatch{
		Products:   &s.Products,
		Orders:     &s.Orders,
		Customers:  &s.Customers,
		SiteConfig: &s.SiteConfig,
	}
}
