package statesync

import (
	"context"
	"errors"

	"github.com/vroommkart/storefront/internal/storefront"
	pkgerrors "github.com/vroommkart/storefront/pkg/errors"
	"github.com/vroommkart/storefront/pkg/logger"
	"github.com/vroommkart/storefront/pkg/metrics"
	"github.com/vroommkart/storefront/pkg/models"
)

const (
	DefaultPathMarker   = "#/sync/"
	DefaultHomeFragment = "#/home"
)

// StateStore is the part of the store the codec reads and replaces.
type StateStore interface {
	Snapshot() models.Snapshot
	ApplyPatch(ctx context.Context, patch models.SnapshotPatch) error
}

// ServiceParams groups dependencies for the sync service.
type ServiceParams struct {
	Store        StateStore
	BaseURL      string
	PathMarker   string
	HomeFragment string
	Metrics      *metrics.StoreMetrics
	Logger       *logger.Logger
}

// Service exports and imports store state as tokens and links.
type Service struct {
	store        StateStore
	baseURL      string
	pathMarker   string
	homeFragment string
	metrics      *metrics.StoreMetrics
	logg         *logger.Logger
}

func NewService(params ServiceParams) (*Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "state store is required")
	}
	s := &Service{
		store:        params.Store,
		baseURL:      params.BaseURL,
		pathMarker:   params.PathMarker,
		homeFragment: params.HomeFragment,
		metrics:      params.Metrics,
		logg:         params.Logger,
	}
	if s.pathMarker == "" {
		s.pathMarker = DefaultPathMarker
	}
	if s.homeFragment == "" {
		s.homeFragment = DefaultHomeFragment
	}
	if s.logg == nil {
		s.logg = logger.Nop()
	}
	s.logg = s.logg.Component("statesync")
	return s, nil
}

// ExportToken encodes the current durable state.
func (s *Service) ExportToken() (string, error) {
	return Encode(s.store.Snapshot())
}

// ShareableLink embeds a fresh token in base, or in the configured base URL when base is empty.
func (s *Service) ShareableLink(base string) (string, error) {
	token, err := s.ExportToken()
	if err != nil {
		return "", err
	}
	if base == "" {
		base = s.baseURL
	}
	return BuildLink(base, s.pathMarker, token), nil
}

// ImportToken decodes and validates token in full, then replaces each slice it carries.
// On any failure the store is left exactly as it was.
func (s *Service) ImportToken(ctx context.Context, token string) error {
	ctx = s.logg.WithOp(ctx, "sync_import")

	patch, err := Decode(token)
	if err != nil {
		s.reject(ctx, stageOf(err), err)
		return err
	}
	if err := storefront.ValidatePatch(patch); err != nil {
		s.reject(ctx, "validate", err)
		return err
	}
	if err := s.store.ApplyPatch(ctx, patch); err != nil {
		s.reject(ctx, "apply", err)
		return err
	}

	s.metrics.IncSyncImport(metrics.ResultOK)
	s.logg.Info(ctx, "statesync.imported")
	return nil
}

// DetectAndImport looks for a sync token in the fragment of location. When one is found
// and imported, it returns location with the fragment replaced by the home fragment.
// Otherwise location is returned unchanged, with the import error if there was one.
func (s *Service) DetectAndImport(ctx context.Context, location string) (next string, imported bool, err error) {
	token, ok := TokenFromLocation(location, s.pathMarker)
	if !ok {
		return location, false, nil
	}
	if err := s.ImportToken(ctx, token); err != nil {
		return location, false, err
	}
	return WithFragment(location, s.homeFragment), true, nil
}

func (s *Service) reject(ctx context.Context, stage string, err error) {
	s.metrics.IncSyncImport(metrics.ResultRejected)
	ctx = s.logg.WithFields(ctx, map[string]any{"stage": stage, "error": err.Error()})
	s.logg.Warn(ctx, "statesync.import_rejected")
}

func stageOf(err error) string {
	switch {
	case errors.Is(err, ErrMalformedToken):
		return "decode"
	case errors.Is(err, ErrMalformedPayload):
		return "parse"
	default:
		return "unknown"
	}
}
