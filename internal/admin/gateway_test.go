package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "sabi-consults/internal/common/errors"
	"sabi-consults/internal/common/logger"
	"sabi-consults/internal/districts"
	"sabi-consults/internal/models"
	"sabi-consults/internal/store/memory"
)

const goodToken = "valid-session"

type staticAuthorizer struct{}

func (staticAuthorizer) Authorize(_ context.Context, token string) error {
	if token == goodToken {
		return nil
	}
	return apperrors.NewUnauthorizedError("session expired or unknown")
}

type gatewayFixture struct {
	gateway   *Gateway
	listings  *memory.ListingStore
	blogs     *memory.BlogStore
	team      *memory.TeamStore
	inquiries *memory.InquiryStore
	settings  *memory.SettingsStore
}

func newFixture(t *testing.T) *gatewayFixture {
	t.Helper()

	f := &gatewayFixture{
		listings:  memory.NewListingStore(),
		blogs:     memory.NewBlogStore(),
		team:      memory.NewTeamStore(),
		inquiries: memory.NewInquiryStore(),
		settings:  memory.NewSettingsStore(),
	}
	f.gateway = NewGateway(
		staticAuthorizer{},
		f.listings,
		f.blogs,
		f.team,
		f.inquiries,
		f.settings,
		districts.New(),
		logger.NewNoOpLogger(),
	)
	return f
}

func validListingInput() models.ListingInput {
	return models.ListingInput{
		Title:       "4 Bedroom Terrace",
		Description: "A terrace duplex in a serviced estate.",
		Price:       250000000,
		Type:        models.ListingTypeHouse,
		District:    "Maitama",
		Address:     "12 Panama Street, Maitama",
	}
}

func validBlogInput() models.BlogPostInput {
	return models.BlogPostInput{
		Title:   "Buying Land in Abuja",
		Slug:    "buying-land-in-abuja",
		Content: "<p>Start with a verified title.</p>",
		Author:  "Sabi Consults",
		Status:  models.BlogDraft,
	}
}

// ==========================
// Authorization
// ==========================

func TestGateway_RejectsUnauthorizedBeforeAnyStateChange(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		call func(f *gatewayFixture) error
	}{
		{"create listing", func(f *gatewayFixture) error {
			_, err := f.gateway.CreateListing(ctx, "bad", validListingInput())
			return err
		}},
		{"update listing", func(f *gatewayFixture) error {
			_, err := f.gateway.UpdateListing(ctx, "bad", "some-id", validListingInput())
			return err
		}},
		{"delete listing", func(f *gatewayFixture) error {
			return f.gateway.DeleteListing(ctx, "bad", "some-id")
		}},
		{"create blog post", func(f *gatewayFixture) error {
			_, err := f.gateway.CreateBlogPost(ctx, "bad", validBlogInput())
			return err
		}},
		{"update blog post", func(f *gatewayFixture) error {
			_, err := f.gateway.UpdateBlogPost(ctx, "bad", "some-id", validBlogInput())
			return err
		}},
		{"delete blog post", func(f *gatewayFixture) error {
			return f.gateway.DeleteBlogPost(ctx, "bad", "some-id")
		}},
		{"create team member", func(f *gatewayFixture) error {
			_, err := f.gateway.CreateTeamMember(ctx, "bad", models.TeamMemberInput{Name: "Ada", Role: "Agent"})
			return err
		}},
		{"update team member", func(f *gatewayFixture) error {
			_, err := f.gateway.UpdateTeamMember(ctx, "bad", "some-id", models.TeamMemberInput{Name: "Ada", Role: "Agent"})
			return err
		}},
		{"remove team member", func(f *gatewayFixture) error {
			return f.gateway.RemoveTeamMember(ctx, "bad", "some-id")
		}},
		{"list inquiries", func(f *gatewayFixture) error {
			_, err := f.gateway.ListInquiries(ctx, "bad")
			return err
		}},
		{"update inquiry status", func(f *gatewayFixture) error {
			_, err := f.gateway.UpdateInquiryStatus(ctx, "bad", "some-id", models.InquiryContacted)
			return err
		}},
		{"update settings", func(f *gatewayFixture) error {
			_, err := f.gateway.UpdateSettings(ctx, "bad", map[string]string{"email": "x@y.com"})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			err := tt.call(f)
			require.Error(t, err)
			assert.True(t, apperrors.IsUnauthorized(err))

			assert.Equal(t, 0, f.listings.Len())
			assert.Equal(t, 0, f.blogs.Len())
			assert.Equal(t, 0, f.team.Len())
			assert.Equal(t, 0, f.inquiries.Len())
		})
	}
}

func TestGateway_EmptyTokenRejected(t *testing.T) {
	f := newFixture(t)
	_, err := f.gateway.CreateListing(context.Background(), "", validListingInput())
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, 0, f.listings.Len())
}

// ==========================
// Listings
// ==========================

func TestCreateListing_DistrictDefaultCoordinates(t *testing.T) {
	f := newFixture(t)

	listing, err := f.gateway.CreateListing(context.Background(), goodToken, validListingInput())
	require.NoError(t, err)

	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, models.StatusAvailable, listing.Status)
	assert.InDelta(t, 9.0820, listing.Latitude, 1e-9)
	assert.InDelta(t, 7.4878, listing.Longitude, 1e-9)
	assert.Equal(t, 1, f.listings.Len())
}

func TestCreateListing_ExplicitCoordinatesWin(t *testing.T) {
	f := newFixture(t)

	lat, lng := 9.1111, 7.2222
	input := validListingInput()
	input.Latitude = &lat
	input.Longitude = &lng

	listing, err := f.gateway.CreateListing(context.Background(), goodToken, input)
	require.NoError(t, err)
	assert.InDelta(t, 9.1111, listing.Latitude, 1e-9)
	assert.InDelta(t, 7.2222, listing.Longitude, 1e-9)
}

func TestCreateListing_UnknownDistrictNeedsCoordinates(t *testing.T) {
	f := newFixture(t)

	input := validListingInput()
	input.District = "Lokogoma"

	_, err := f.gateway.CreateListing(context.Background(), goodToken, input)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, 0, f.listings.Len())

	lat, lng := 8.9806, 7.4815
	input.Latitude = &lat
	input.Longitude = &lng
	listing, err := f.gateway.CreateListing(context.Background(), goodToken, input)
	require.NoError(t, err)
	assert.Equal(t, "Lokogoma", listing.District)
}

func TestCreateListing_HalfCoordinatePairRejected(t *testing.T) {
	f := newFixture(t)

	lat := 9.1
	input := validListingInput()
	input.Latitude = &lat

	_, err := f.gateway.CreateListing(context.Background(), goodToken, input)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateListing_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.ListingInput)
	}{
		{"missing title", func(i *models.ListingInput) { i.Title = "" }},
		{"missing description", func(i *models.ListingInput) { i.Description = "" }},
		{"negative price", func(i *models.ListingInput) { i.Price = -1 }},
		{"bad type", func(i *models.ListingInput) { i.Type = "castle" }},
		{"missing district", func(i *models.ListingInput) { i.District = "" }},
		{"missing address", func(i *models.ListingInput) { i.Address = "" }},
		{"bad status", func(i *models.ListingInput) { i.Status = "archived" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			input := validListingInput()
			tt.mutate(&input)

			_, err := f.gateway.CreateListing(context.Background(), goodToken, input)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, 0, f.listings.Len())
		})
	}
}

func TestUpdateListing_PreservesCreatedAt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.gateway.CreateListing(ctx, goodToken, validListingInput())
	require.NoError(t, err)

	input := validListingInput()
	input.Title = "4 Bedroom Terrace (Renovated)"
	input.Status = models.StatusSold

	updated, err := f.gateway.UpdateListing(ctx, goodToken, created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "4 Bedroom Terrace (Renovated)", updated.Title)
	assert.Equal(t, models.StatusSold, updated.Status)
}

func TestUpdateListing_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.gateway.UpdateListing(context.Background(), goodToken, "missing", validListingInput())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateListing_InvalidInputLeavesRecordUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.gateway.CreateListing(ctx, goodToken, validListingInput())
	require.NoError(t, err)

	input := validListingInput()
	input.Price = -5

	_, err = f.gateway.UpdateListing(ctx, goodToken, created.ID, input)
	require.Error(t, err)

	stored, err := f.listings.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Price, stored.Price)
}

func TestCreateListing_VariationDefaults(t *testing.T) {
	f := newFixture(t)

	input := validListingInput()
	input.Type = models.ListingTypeLand
	input.Variations = []models.Variation{
		{Name: "500 sqm plot"},
		{Name: "1000 sqm plot", Status: models.StatusSold},
	}

	listing, err := f.gateway.CreateListing(context.Background(), goodToken, input)
	require.NoError(t, err)
	require.Len(t, listing.Variations, 2)
	assert.NotEmpty(t, listing.Variations[0].ID)
	assert.Equal(t, models.StatusAvailable, listing.Variations[0].Status)
	assert.Equal(t, models.StatusSold, listing.Variations[1].Status)
}

// ==========================
// Blog posts
// ==========================

func TestBlogPost_PublishedAtStampedOnceOnFirstPublish(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	draft, err := f.gateway.CreateBlogPost(ctx, goodToken, validBlogInput())
	require.NoError(t, err)
	assert.Nil(t, draft.PublishedAt)

	input := validBlogInput()
	input.Status = models.BlogPublished
	published, err := f.gateway.UpdateBlogPost(ctx, goodToken, draft.ID, input)
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	firstPublishedAt := *published.PublishedAt

	// unpublish, then republish: the original timestamp survives
	input.Status = models.BlogDraft
	_, err = f.gateway.UpdateBlogPost(ctx, goodToken, draft.ID, input)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	input.Status = models.BlogPublished
	republished, err := f.gateway.UpdateBlogPost(ctx, goodToken, draft.ID, input)
	require.NoError(t, err)
	require.NotNil(t, republished.PublishedAt)
	assert.Equal(t, firstPublishedAt, *republished.PublishedAt)
}

func TestBlogPost_CreatedPublishedGetsTimestampImmediately(t *testing.T) {
	f := newFixture(t)

	input := validBlogInput()
	input.Status = models.BlogPublished

	post, err := f.gateway.CreateBlogPost(context.Background(), goodToken, input)
	require.NoError(t, err)
	require.NotNil(t, post.PublishedAt)
	assert.WithinDuration(t, time.Now(), *post.PublishedAt, time.Minute)
}

func TestBlogPost_SlugValidation(t *testing.T) {
	tests := []struct {
		name string
		slug string
		ok   bool
	}{
		{"simple", "market-update", true},
		{"single word", "update", true},
		{"digits", "top-10-districts", true},
		{"uppercase", "Market-Update", false},
		{"spaces", "market update", false},
		{"trailing hyphen", "market-", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			input := validBlogInput()
			input.Slug = tt.slug

			_, err := f.gateway.CreateBlogPost(context.Background(), goodToken, input)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
			}
		})
	}
}

func TestBlogPost_DuplicateSlugRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.gateway.CreateBlogPost(ctx, goodToken, validBlogInput())
	require.NoError(t, err)

	_, err = f.gateway.CreateBlogPost(ctx, goodToken, validBlogInput())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeDuplicateSlug, apperrors.CodeOf(err))
	assert.Equal(t, 1, f.blogs.Len())
}

// ==========================
// Team members
// ==========================

func TestTeamMember_RemoveIsSoftDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	member, err := f.gateway.CreateTeamMember(ctx, goodToken, models.TeamMemberInput{
		Name: "Ada Obi",
		Role: "Senior Consultant",
	})
	require.NoError(t, err)
	assert.True(t, member.IsActive)

	require.NoError(t, f.gateway.RemoveTeamMember(ctx, goodToken, member.ID))

	active, err := f.team.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := f.team.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].IsActive)
}

func TestUpdateTeamMember_AbsentIsActiveKeepsStoredValue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	member, err := f.gateway.CreateTeamMember(ctx, goodToken, models.TeamMemberInput{
		Name: "Ada Obi",
		Role: "Senior Consultant",
	})
	require.NoError(t, err)
	require.NoError(t, f.gateway.RemoveTeamMember(ctx, goodToken, member.ID))

	updated, err := f.gateway.UpdateTeamMember(ctx, goodToken, member.ID, models.TeamMemberInput{
		Name: "Ada Obi",
		Role: "Principal Consultant",
	})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Principal Consultant", updated.Role)
}

func TestCreateTeamMember_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.gateway.CreateTeamMember(context.Background(), goodToken, models.TeamMemberInput{Role: "Agent"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = f.gateway.CreateTeamMember(context.Background(), goodToken, models.TeamMemberInput{Name: "Ada"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

// ==========================
// Inquiries
// ==========================

func TestUpdateInquiryStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.inquiries.Create(ctx, &models.Inquiry{
		ID:     "inq-1",
		Name:   "Ada Obi",
		Status: models.InquiryNew,
	}))

	updated, err := f.gateway.UpdateInquiryStatus(ctx, goodToken, "inq-1", models.InquiryContacted)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryContacted, updated.Status)

	_, err = f.gateway.UpdateInquiryStatus(ctx, goodToken, "inq-1", "spam")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = f.gateway.UpdateInquiryStatus(ctx, goodToken, "missing", models.InquiryClosed)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

// ==========================
// Settings
// ==========================

func TestUpdateSettings_MergesOntoDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	settings, err := f.gateway.UpdateSettings(ctx, goodToken, map[string]string{
		"email": "office@sabiconsults.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "office@sabiconsults.com", settings.Email)
	assert.Equal(t, "Abuja, Nigeria", settings.Address)

	// a later partial update keeps earlier overrides
	settings, err = f.gateway.UpdateSettings(ctx, goodToken, map[string]string{
		"phone_number": "+234 801 234 5678",
	})
	require.NoError(t, err)
	assert.Equal(t, "office@sabiconsults.com", settings.Email)
	assert.Equal(t, "+234 801 234 5678", settings.PhoneNumber)
}

func TestUpdateSettings_UnknownKeyRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.gateway.UpdateSettings(context.Background(), goodToken, map[string]string{
		"theme_color": "green",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	stored, err := f.settings.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}
