package controllers

import (
	"net/http"
	"strings"

	"github.com/vroommkart/storefront/api/responses"
	"github.com/vroommkart/storefront/api/validators"
	pkgerrors "github.com/vroommkart/storefront/pkg/errors"
	"github.com/vroommkart/storefront/pkg/logger"
)

type syncImportRequest struct {
	Token string `json:"token" validate:"notblank"`
}

type syncDetectRequest struct {
	Location string `json:"location" validate:"required"`
}

type syncDetectResponse struct {
	Location string `json:"location"`
	Imported bool   `json:"imported"`
}

func SyncExport(sync StateSync, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := sync.ExportToken()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "export sync token"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"token": token})
	}
}

// SyncLink builds a share link on ?base= or the configured public URL.
func SyncLink(sync StateSync, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		link, err := sync.ShareableLink(strings.TrimSpace(r.URL.Query().Get("base")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build sync link"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"link": link})
	}
}

func SyncImport(sync StateSync, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload syncImportRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := sync.ImportToken(r.Context(), payload.Token); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"imported": true})
	}
}

// SyncDetect imports a token carried in a location fragment and returns where to go next.
func SyncDetect(sync StateSync, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload syncDetectRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		next, imported, err := sync.DetectAndImport(r.Context(), payload.Location)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, syncDetectResponse{Location: next, Imported: imported})
	}
}
