package admin

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "sabi-consults/internal/common/errors"
	"sabi-consults/internal/models"
)

// CreateTeamMember adds a staff profile. New members are active unless
// the payload says otherwise.
func (g *Gateway) CreateTeamMember(ctx context.Context, token string, input models.TeamMemberInput) (*models.TeamMember, error) {
	if err := g.authorize(ctx, token, "team"); err != nil {
		return nil, err
	}
	if err := validateTeamInput(input); err != nil {
		return nil, err
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	now := time.Now().UTC()
	member := &models.TeamMember{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(input.Name),
		Role:         strings.TrimSpace(input.Role),
		Bio:          input.Bio,
		Image:        input.Image,
		Email:        input.Email,
		Phone:        input.Phone,
		LinkedIn:     input.LinkedIn,
		Twitter:      input.Twitter,
		DisplayOrder: input.DisplayOrder,
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := g.team.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// UpdateTeamMember replaces a profile. An absent isActive flag keeps
// the stored value.
func (g *Gateway) UpdateTeamMember(ctx context.Context, token, id string, input models.TeamMemberInput) (*models.TeamMember, error) {
	if err := g.authorize(ctx, token, "team"); err != nil {
		return nil, err
	}
	if err := validateTeamInput(input); err != nil {
		return nil, err
	}

	existing, err := g.team.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	active := existing.IsActive
	if input.IsActive != nil {
		active = *input.IsActive
	}

	updated := &models.TeamMember{
		ID:           existing.ID,
		Name:         strings.TrimSpace(input.Name),
		Role:         strings.TrimSpace(input.Role),
		Bio:          input.Bio,
		Image:        input.Image,
		Email:        input.Email,
		Phone:        input.Phone,
		LinkedIn:     input.LinkedIn,
		Twitter:      input.Twitter,
		DisplayOrder: input.DisplayOrder,
		IsActive:     active,
		CreatedAt:    existing.CreatedAt,
		UpdatedAt:    time.Now().UTC(),
	}

	if err := g.team.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveTeamMember deactivates a profile. The record stays in storage;
// it just stops appearing in public views.
func (g *Gateway) RemoveTeamMember(ctx context.Context, token, id string) error {
	if err := g.authorize(ctx, token, "team"); err != nil {
		return err
	}
	return g.team.Deactivate(ctx, id)
}

func validateTeamInput(input models.TeamMemberInput) error {
	var fields []apperrors.FieldError

	if strings.TrimSpace(input.Name) == "" {
		fields = append(fields, apperrors.FieldError{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(input.Role) == "" {
		fields = append(fields, apperrors.FieldError{Field: "role", Message: "role is required"})
	}

	if len(fields) > 0 {
		return apperrors.NewValidationError(fields...)
	}
	return nil
}
