// internal/store/postgres/team.go
package postgres

import (
	"context"
	"database/sql"
	"time"

	apperrors "sabi-consults/internal/common/errors"
	"sabi-consults/internal/models"
)

type TeamStore struct {
	db *sql.DB
}

func NewTeamStore(db *sql.DB) *TeamStore {
	return &TeamStore{db: db}
}

const teamColumns = `
	id, name, role, bio, image, email, phone, linkedin, twitter,
	display_order, is_active, created_at, updated_at`

func (s *TeamStore) List(ctx context.Context, activeOnly bool) ([]models.TeamMember, error) {
	query := `SELECT ` + teamColumns + ` FROM team_members`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY display_order ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.NewStorageError("team.list", err)
	}
	defer rows.Close()

	var members []models.TeamMember
	for rows.Next() {
		member, err := scanTeamMember(rows)
		if err != nil {
			return nil, apperrors.NewStorageError("team.list", err)
		}
		members = append(members, *member)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("team.list", err)
	}
	return members, nil
}

func (s *TeamStore) Get(ctx context.Context, id string) (*models.TeamMember, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+teamColumns+` FROM team_members WHERE id = $1`, id)

	member, err := scanTeamMember(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("Team member", id)
	}
	if err != nil {
		return nil, apperrors.NewStorageError("team.get", err)
	}
	return member, nil
}

func (s *TeamStore) Create(ctx context.Context, member *models.TeamMember) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO team_members (
			id, name, role, bio, image, email, phone, linkedin, twitter,
			display_order, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		member.ID, member.Name, member.Role,
		nullString(member.Bio), nullString(member.Image), nullString(member.Email),
		nullString(member.Phone), nullString(member.LinkedIn), nullString(member.Twitter),
		member.DisplayOrder, member.IsActive, member.CreatedAt, member.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewStorageError("team.create", err)
	}
	return nil
}

func (s *TeamStore) Update(ctx context.Context, member *models.TeamMember) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE team_members SET
			name = $2, role = $3, bio = $4, image = $5, email = $6, phone = $7,
			linkedin = $8, twitter = $9, display_order = $10, is_active = $11,
			updated_at = $12
		WHERE id = $1`,
		member.ID, member.Name, member.Role,
		nullString(member.Bio), nullString(member.Image), nullString(member.Email),
		nullString(member.Phone), nullString(member.LinkedIn), nullString(member.Twitter),
		member.DisplayOrder, member.IsActive, member.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewStorageError("team.update", err)
	}
	return requireRow(result, "Team member", member.ID, "team.update")
}

// Deactivate is the delete path for team members: the profile drops out
// of public views but the row stays.
func (s *TeamStore) Deactivate(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE team_members SET is_active = FALSE, updated_at = $2 WHERE id = $1`,
		id, time.Now().UTC(),
	)
	if err != nil {
		return apperrors.NewStorageError("team.deactivate", err)
	}
	return requireRow(result, "Team member", id, "team.deactivate")
}

func scanTeamMember(row rowScanner) (*models.TeamMember, error) {
	var (
		member   models.TeamMember
		bio      sql.NullString
		image    sql.NullString
		email    sql.NullString
		phone    sql.NullString
		linkedin sql.NullString
		twitter  sql.NullString
	)

	err := row.Scan(
		&member.ID, &member.Name, &member.Role, &bio, &image, &email, &phone,
		&linkedin, &twitter, &member.DisplayOrder, &member.IsActive,
		&member.CreatedAt, &member.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	member.Bio = bio.String
	member.Image = image.String
	member.Email = email.String
	member.Phone = phone.String
	member.LinkedIn = linkedin.String
	member.Twitter = twitter.String
	return &member, nil
}
