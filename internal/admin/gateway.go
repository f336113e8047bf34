// Package admin is the mutation gateway for the back office. Every
// write against listings, blog posts, team members, inquiries or
// settings passes one authorization check before any state changes;
// a rejected call leaves the stores untouched.
package admin

import (
	"context"

	"sabi-consults/internal/auth"
	"sabi-consults/internal/common/logger"
	"sabi-consults/internal/common/metrics"
	"sabi-consults/internal/districts"
	"sabi-consults/internal/store"
)

// Gateway wraps the stores behind the admin authorization check.
type Gateway struct {
	authorizer auth.Authorizer
	listings   store.ListingStore
	blogs      store.BlogStore
	team       store.TeamStore
	inquiries  store.InquiryStore
	settings   store.SettingsStore
	directory  *districts.Directory
	logger     logger.Logger
}

func NewGateway(
	authorizer auth.Authorizer,
	listings store.ListingStore,
	blogs store.BlogStore,
	team store.TeamStore,
	inquiries store.InquiryStore,
	settings store.SettingsStore,
	directory *districts.Directory,
	log logger.Logger,
) *Gateway {
	return &Gateway{
		authorizer: authorizer,
		listings:   listings,
		blogs:      blogs,
		team:       team,
		inquiries:  inquiries,
		settings:   settings,
		directory:  directory,
		logger:     log,
	}
}

// authorize runs the session check for one operation against one
// entity kind. It must be the first thing every gateway method does.
func (g *Gateway) authorize(ctx context.Context, token, entity string) error {
	if err := g.authorizer.Authorize(ctx, token); err != nil {
		metrics.AdminMutationsRejected.WithLabelValues(entity).Inc()
		g.logger.Warn("Admin operation rejected", map[string]interface{}{
			"entity": entity,
		})
		return err
	}
	return nil
}
