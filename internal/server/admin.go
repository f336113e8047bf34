package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sabi-consults/internal/common/validation"
	"sabi-consults/internal/models"
)

func (h *handlers) createProperty(w http.ResponseWriter, r *http.Request) {
	var input models.ListingInput
	if err := decodeBody(r, validation.ListingSchema, &input); err != nil {
		h.errors.WriteError(w, r, err)
		return
	}

	listing, err := h.deps.Gateway.CreateListing(r.Context(), sessionToken(r), input)
	if err != nil {
		h.errors.WriteError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, listing)
}

func (h *handlers) updateProperty(w http.ResponseWriter, r *http.Request) {
	var input models.ListingInput
	if err := decodeBody(r, validation.ListingSchema, &input); err != nil {
		h.errors.WriteError(w, r, err)
		return
	}

	listing, err := h.deps.Gateway.UpdateListing(r.Context(), sessionToken(r), chi.URLParam(r, "id"), input)
	if err != nil {
		h.errors.WriteError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, listing)
}

func (h *handlers) deleteProperty(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Gateway.DeleteListing(r.Context(), sessionToken(r), chi.URLParam(r, "id")); err != nil {
		h.errors.WriteError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *handlers) createBlogPost(w http.ResponseWriter, r *http.Request) {
	var input models.BlogPostInput
	if err := decodeBody(r, validation.BlogPostSchema, &input); err != nil {
		h.errors.WriteError(w, r, err)
		return
	}

	post, err := h.deps.Gateway.CreateBlogPost(r.Context(), sessionToken(r), input)
	if err != nil {
		h.errors.WriteError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, post)
}

func (h *handlers) updateBlogPost(w http.ResponseWriter, r *http.Request) {
	var input models.BlogPostInput
	if err := decodeBody(r, validation.BlogPostSchema, &input); err != nil {
		h.errors.WriteError(w, r, err)
		return
	}

	post, err := h.deps.Gateway.UpdateBlogPost(r.Context(), sessionToken(r), chi.URLParam(r, "id"), input)
	if err != nil {
		h.errors.WriteError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, post)
}

func (h *handlers) deleteBlogPost(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Gateway.DeleteBlogPost(r.Context(), sessionToken(r), chi.URLParam(r, "id")); err != nil {
		h.errors.WriteError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *handlers) createTeamMember(w http.ResponseWriter, r *http.Request) {
	var input models.TeamMemberInput
	if err := decodeBody(r, validation.TeamMemberSchema, &input); err != nil {
		h.errors.WriteError(w, r, err)
		return
	}

	member, err := h.deps.Gateway.CreateTeamMember(r.Context(), sessionToken(r), input)
	if err != nil {
		h.errors.WriteError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, member)
}

func (h *handlers) updateTeamMember(w http.ResponseWriter, r *http.Request) {
	var input models.TeamMemberInput
	if err := decodeBody(r, validation.TeamMemberSchema, &input); err != nil {
		h.errors.WriteError(w, r, err)
		return
	}

	member, err := h.deps.Gateway.UpdateTeamMember(r.Context(), sessionToken(r), chi.URLParam(r, "id"), input)
	if err != nil {
		h.errors.WriteError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, member)
}

func (h *handlers) removeTeamMember(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Gateway.RemoveTeamMember(r.Context(), sessionToken(r), chi.URLParam(r, "id")); err != nil {
		h.errors.WriteError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"deactivated": true})
}

func (h *handlers) listInquiries(w http.ResponseWriter, r *http.Request) {
	list, err := h.deps.Gateway.ListInquiries(r.Context(), sessionToken(r))
	if err != nil {
		h.errors.WriteError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"inquiries": list})
}

func (h *handlers) updateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status models.InquiryStatus `json:"status"`
	}
	if err := decodeBody(r, validation.InquiryStatusSchema, &body); err != nil {
		h.errors.WriteError(w, r, err)
		return
	}

	inquiry, err := h.deps.Gateway.UpdateInquiryStatus(r.Context(), sessionToken(r), chi.URLParam(r, "id"), body.Status)
	if err != nil {
		h.errors.WriteError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, inquiry)
}

func (h *handlers) updateSettings(w http.ResponseWriter, r *http.Request) {
	var values map[string]string
	if err := decodeBody(r, validation.SettingsSchema, &values); err != nil {
		h.errors.WriteError(w, r, err)
		return
	}

	settings, err := h.deps.Gateway.UpdateSettings(r.Context(), sessionToken(r), values)
	if err != nil {
		h.errors.WriteError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, settings)
}
