package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"sabi-consults/internal/catalog"
	"sabi-consults/internal/common/validation"
	"sabi-consults/internal/mapview"
	"sabi-consults/internal/models"
)

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) listProperties(w http.ResponseWriter, r *http.Request) {
	listings, err := h.deps.Catalog.Filter(r.Context(), filterSpecFromQuery(r))
	if err != nil {
		h.errors.WriteError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"properties": listings})
}

func (h *handlers) getProperty(w http.ResponseWriter, r *http.Request) {
	listing, err := h.deps.Catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.errors.WriteError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, listing)
}

func (h *handlers) propertiesMapPlan(w http.ResponseWriter, r *http.Request) {
	listings, err := h.deps.Catalog.Filter(r.Context(), filterSpecFromQuery(r))
	if err != nil {
		h.errors.WriteError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, mapview.BuildPlan(listings))
}

func (h *handlers) propertyMapPlan(w http.ResponseWriter, r *http.Request) {
	listing, err := h.deps.Catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.errors.WriteError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, mapview.BuildSinglePlan(listing))
}

func (h *handlers) listDistricts(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"districts": h.deps.Directory.All()})
}

func (h *handlers) listBlogPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.deps.Blogs.List(r.Context(), true)
	if err != nil {
		h.errors.WriteError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"posts": posts})
}

func (h *handlers) getBlogPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.deps.Blogs.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.errors.WriteError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, post)
}

func (h *handlers) listTeam(w http.ResponseWriter, r *http.Request) {
	members, err := h.deps.Team.List(r.Context(), true)
	if err != nil {
		h.errors.WriteError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"team": members})
}

func (h *handlers) getSettings(w http.ResponseWriter, r *http.Request) {
	stored, err := h.deps.Settings.GetAll(r.Context())
	if err != nil {
		h.errors.WriteError(w, r, err)
		return
	}
	settings := models.DefaultSettings()
	settings.ApplyMap(stored)
	h.writeJSON(w, http.StatusOK, settings)
}

func (h *handlers) submitInquiry(w http.ResponseWriter, r *http.Request) {
	var input models.InquiryInput
	if err := decodeBody(r, validation.InquirySchema, &input); err != nil {
		h.errors.WriteError(w, r, err)
		return
	}

	inquiry, err := h.deps.Inquiries.Submit(r.Context(), input)
	if err != nil {
		h.errors.WriteError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, inquiry)
}

// filterSpecFromQuery maps the public query parameters onto a filter
// spec. Unparseable numeric values are dropped, matching the
// price-range policy.
func filterSpecFromQuery(r *http.Request) catalog.FilterSpec {
	q := r.URL.Query()
	spec := catalog.FilterSpec{
		Type:     q.Get("type"),
		District: q.Get("district"),
	}
	spec.MinPrice, spec.MaxPrice = catalog.ParsePriceRange(q.Get("priceRange"))

	if raw := q.Get("bedrooms"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			spec.Bedrooms = &v
		}
	}
	if raw := q.Get("featured"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			spec.Featured = &v
		}
	}
	return spec
}
