package storefront

import (
	"context"
	"fmt"

	pkgerrors "github.com/vroommkart/storefront/pkg/errors"
	"github.com/vroommkart/storefront/pkg/metrics"
	"github.com/vroommkart/storefront/pkg/models"
)

func noHeroBanners() error {
	return pkgerrors.Wrap(pkgerrors.CodeStateConflict, ErrNoHeroBanners, "at least one hero banner is required")
}

func (s *Store) SiteConfig() models.SiteConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.siteConfig.Clone()
}

// UpdateSiteConfig replaces the whole document. A config without hero banners is rejected.
func (s *Store) UpdateSiteConfig(ctx context.Context, cfg models.SiteConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx = s.opContext(ctx, "update_site_config")

	if len(cfg.HeroBanners) == 0 {
		s.record(ctx, "update_site_config", metrics.ResultRejected)
		return noHeroBanners()
	}
	s.siteConfig = cfg.Clone()
	s.persistSiteConfig(ctx)
	s.record(ctx, "update_site_config", metrics.ResultOK)
	return nil
}

// AddHeroBanner appends banner, generating an id when it has none.
func (s *Store) AddHeroBanner(ctx context.Context, banner models.HeroBanner) models.HeroBanner {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx = s.opContext(ctx, "add_hero_banner")

	if banner.ID == "" {
		banner.ID = fmt.Sprintf("banner-%d-%s", s.now().UTC().UnixMilli(), s.newToken())
	}
	s.siteConfig.HeroBanners = append(s.siteConfig.HeroBanners, banner)
	s.persistSiteConfig(ctx)
	s.record(s.logg.WithField(ctx, "banner_id", banner.ID), "add_hero_banner", metrics.ResultOK)
	return banner
}

// RemoveHeroBanner deletes the banner with id. Removing the last banner is rejected;
// an unknown id is ignored.
func (s *Store) RemoveHeroBanner(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx = s.logg.WithField(s.opContext(ctx, "remove_hero_banner"), "banner_id", id)

	kept := make([]models.HeroBanner, 0, len(s.siteConfig.HeroBanners))
	for _, b := range s.siteConfig.HeroBanners {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(s.siteConfig.HeroBanners) {
		s.record(ctx, "remove_hero_banner", metrics.ResultNoop)
		return nil
	}
	if len(kept) == 0 {
		s.record(ctx, "remove_hero_banner", metrics.ResultRejected)
		return noHeroBanners()
	}
	s.siteConfig.HeroBanners = kept
	s.persistSiteConfig(ctx)
	s.record(ctx, "remove_hero_banner", metrics.ResultOK)
	return nil
}
