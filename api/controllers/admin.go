package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vroommkart/storefront/api/responses"
	"github.com/vroommkart/storefront/api/validators"
	authsvc "github.com/vroommkart/storefront/internal/auth"
	"github.com/vroommkart/storefront/pkg/enums"
	pkgerrors "github.com/vroommkart/storefront/pkg/errors"
	"github.com/vroommkart/storefront/pkg/logger"
	"github.com/vroommkart/storefront/pkg/models"
	"github.com/vroommkart/storefront/pkg/pagination"
)

const (
	placeholderImage = "https://via.placeholder.com/400"
	defaultRating    = 4.5
)

// AdminUnlock exchanges the back-office passcode for a gate token.
func AdminUnlock(gate authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload authsvc.UnlockRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		resp, err := gate.Unlock(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

func AdminDashboard(office BackOffice, lowStockThreshold int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, office.Dashboard(lowStockThreshold))
	}
}

type productRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" validate:"notblank"`
	Brand       string   `json:"brand" validate:"notblank"`
	Price       int64    `json:"price" validate:"gte=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Category    string   `json:"category" validate:"required"`
	Scale       string   `json:"scale"`
	Rarity      string   `json:"rarity"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Reviews     *int     `json:"reviews,omitempty" validate:"omitempty,gte=0"`
}

// toProduct applies the product form defaults. existing is nil on create.
func (r productRequest) toProduct(existing *models.Product, now time.Time) (models.Product, error) {
	category, err := enums.ParseCategory(strings.TrimSpace(r.Category))
	if err != nil {
		return models.Product{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
	}

	var rarity enums.Rarity
	if raw := strings.TrimSpace(r.Rarity); raw != "" {
		rarity, err = enums.ParseRarity(raw)
		if err != nil {
			return models.Product{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid rarity")
		}
	}

	p := models.Product{
		ID:          strings.TrimSpace(r.ID),
		Name:        strings.TrimSpace(r.Name),
		Brand:       strings.TrimSpace(r.Brand),
		Price:       r.Price,
		Category:    category,
		Images:      filterImageURLs(r.Images),
		Scale:       strings.TrimSpace(r.Scale),
		Rarity:      rarity,
		Description: r.Description,
		Rating:      defaultRating,
		Stock:       r.Stock,
	}

	if existing != nil {
		p.ID = existing.ID
		if len(p.Images) == 0 {
			p.Images = append([]string{}, existing.Images...)
		}
		if existing.Rating != 0 {
			p.Rating = existing.Rating
		}
		p.Reviews = existing.Reviews
	}
	if p.ID == "" {
		p.ID = strconv.FormatInt(now.UnixMilli(), 10)
	}
	if len(p.Images) == 0 {
		p.Images = []string{placeholderImage}
	}
	if r.Rating != nil {
		p.Rating = *r.Rating
	}
	if r.Reviews != nil {
		p.Reviews = *r.Reviews
	}
	return p, nil
}

// filterImageURLs keeps trimmed entries that look like http(s) or data URLs.
func filterImageURLs(in []string) []string {
	out := []string{}
	for _, raw := range in {
		if validators.IsImageURL(raw) {
			out = append(out, strings.TrimSpace(raw))
		}
	}
	return out
}

func AdminCreateProduct(office BackOffice, now func() time.Time, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		product, err := payload.toProduct(nil, now())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		office.AddProduct(r.Context(), product)
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

func AdminUpdateProduct(office BackOffice, now func() time.Time, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		existing, ok := office.Product(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
				WithDetails(map[string]any{"productId": id}))
			return
		}

		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		product, err := payload.toProduct(&existing, now())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		office.UpdateProduct(r.Context(), product)
		responses.WriteSuccess(w, product)
	}
}

// AdminDeleteProduct reports whether anything was removed; an unknown id is not an error.
func AdminDeleteProduct(office BackOffice) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deleted := office.DeleteProduct(r.Context(), chi.URLParam(r, "id"))
		responses.WriteSuccess(w, map[string]bool{"deleted": deleted})
	}
}

// pageParams reads ?limit= and ?cursor= for the admin list endpoints.
func pageParams(r *http.Request) (pagination.Params, error) {
	limit, err := validators.QueryInt(r, "limit", validators.IntRange{
		Default: pagination.DefaultLimit,
		Min:     1,
		Max:     pagination.MaxLimit,
	})
	if err != nil {
		return pagination.Params{}, err
	}
	return pagination.Params{Limit: limit, Cursor: strings.TrimSpace(r.URL.Query().Get("cursor"))}, nil
}

func writePage[T any](w http.ResponseWriter, r *http.Request, logg *logger.Logger, items []T) {
	params, err := pageParams(r)
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return
	}
	page, err := pagination.Slice(items, params)
	if err != nil {
		responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor"))
		return
	}
	responses.WriteSuccess(w, page)
}

// AdminListOrders pages through orders, newest first.
func AdminListOrders(office BackOffice, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writePage(w, r, logg, office.Orders())
	}
}

func AdminGetOrder(office BackOffice, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		order, ok := office.Order(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "order not found").
				WithDetails(map[string]any{"orderId": id}))
			return
		}
		responses.WriteSuccess(w, order)
	}
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Shipped Delivered"`
}

func AdminUpdateOrderStatus(office BackOffice, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload orderStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		status, err := enums.ParseOrderStatus(payload.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order status"))
			return
		}

		id := chi.URLParam(r, "id")
		found, err := office.UpdateOrderStatus(r.Context(), id, status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !found {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "order not found").
				WithDetails(map[string]any{"orderId": id}))
			return
		}
		order, _ := office.Order(id)
		responses.WriteSuccess(w, order)
	}
}

func AdminListCustomers(office BackOffice, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writePage(w, r, logg, office.Customers())
	}
}

// AdminReplaceSiteConfig swaps the whole appearance document.
func AdminReplaceSiteConfig(office BackOffice, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload models.SiteConfig
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := office.UpdateSiteConfig(r.Context(), payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, office.SiteConfig())
	}
}

type heroBannerRequest struct {
	ID          string `json:"id"`
	Image       string `json:"image" validate:"required,imageurl"`
	Title       string `json:"title" validate:"notblank"`
	Subtitle    string `json:"subtitle"`
	AccentColor string `json:"accentColor"`
	LinkTo      string `json:"linkTo" validate:"required"`
}

func AdminAddHeroBanner(office BackOffice, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload heroBannerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		page, err := enums.ParsePage(strings.TrimSpace(payload.LinkTo))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid banner link"))
			return
		}
		banner := office.AddHeroBanner(r.Context(), models.HeroBanner{
			ID:          strings.TrimSpace(payload.ID),
			Image:       strings.TrimSpace(payload.Image),
			Title:       payload.Title,
			Subtitle:    payload.Subtitle,
			AccentColor: payload.AccentColor,
			LinkTo:      page,
		})
		responses.WriteSuccessStatus(w, http.StatusCreated, banner)
	}
}

func AdminRemoveHeroBanner(office BackOffice, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := office.RemoveHeroBanner(r.Context(), chi.URLParam(r, "id")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, office.SiteConfig())
	}
}
