package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ling-4j/prosperpath/internal/models"
)

// CreateEvent persists a new event.
func (s *SQLiteStore) CreateEvent(ctx context.Context, event *models.Event) error {
	event.ID = newID(event.ID)
	event.CreatedAt = s.stamp(event.CreatedAt)

	_, err := s.q.ExecContext(ctx,
		"INSERT INTO events (id, name, description, created_by, created_at) VALUES (?, ?, ?, ?, ?)",
		event.ID, event.Name, event.Description, event.CreatedBy, event.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// GetEvent retrieves an event by ID.
func (s *SQLiteStore) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	event := &models.Event{}
	var createdAt int64
	err := s.q.QueryRowContext(ctx,
		"SELECT id, name, description, created_by, created_at FROM events WHERE id = ?",
		eventID,
	).Scan(&event.ID, &event.Name, &event.Description, &event.CreatedBy, &createdAt)
	if err != nil {
		return nil, notFoundOr(err, "event", eventID, "get event")
	}
	event.CreatedAt = fromUnix(createdAt)
	return event, nil
}

// ListEventsByCreator retrieves the events a user created, newest first.
func (s *SQLiteStore) ListEventsByCreator(ctx context.Context, userID string) ([]*models.Event, error) {
	rows, err := s.q.QueryContext(ctx,
		"SELECT id, name, description, created_by, created_at FROM events WHERE created_by = ? ORDER BY created_at DESC, id",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		event := &models.Event{}
		var createdAt int64
		if err := rows.Scan(&event.ID, &event.Name, &event.Description, &event.CreatedBy, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		event.CreatedAt = fromUnix(createdAt)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	return events, nil
}

// DeleteEvent removes an event row. Bills, balances and settlements must be
// cleaned up first; the foreign keys reject a delete that would orphan them.
func (s *SQLiteStore) DeleteEvent(ctx context.Context, eventID string) error {
	res, err := s.q.ExecContext(ctx, "DELETE FROM events WHERE id = ?", eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return requireAffected(res, "event", eventID)
}

// CreateMember persists a new member.
func (s *SQLiteStore) CreateMember(ctx context.Context, member *models.Member) error {
	member.ID = newID(member.ID)
	member.CreatedAt = s.stamp(member.CreatedAt)

	_, err := s.q.ExecContext(ctx,
		"INSERT INTO members (id, name, note, user_id, created_at) VALUES (?, ?, ?, ?, ?)",
		member.ID, member.Name, member.Note, member.UserID, member.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}
	return nil
}

// GetMember retrieves a member by ID.
func (s *SQLiteStore) GetMember(ctx context.Context, memberID string) (*models.Member, error) {
	row := s.q.QueryRowContext(ctx,
		"SELECT id, name, note, user_id, created_at FROM members WHERE id = ?",
		memberID,
	)
	member, err := scanMember(row)
	if err != nil {
		return nil, notFoundOr(err, "member", memberID, "get member")
	}
	return member, nil
}

// ListMembersByUser retrieves all members owned by a user, ordered by name.
func (s *SQLiteStore) ListMembersByUser(ctx context.Context, userID string) ([]*models.Member, error) {
	return s.listMembers(ctx,
		"SELECT id, name, note, user_id, created_at FROM members WHERE user_id = ? ORDER BY name, id",
		userID,
	)
}

// ListMembersByIDs retrieves the members with the given IDs.
// Members that don't exist are omitted from the result.
func (s *SQLiteStore) ListMembersByIDs(ctx context.Context, ids []string) ([]*models.Member, error) {
	if len(ids) == 0 {
		return []*models.Member{}, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return s.listMembers(ctx,
		"SELECT id, name, note, user_id, created_at FROM members WHERE id IN ("+placeholders(len(ids))+") ORDER BY id",
		args...,
	)
}

func (s *SQLiteStore) listMembers(ctx context.Context, query string, args ...any) ([]*models.Member, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := []*models.Member{}
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}
	return members, nil
}

type scanner interface {
	Scan(dest ...any) error
}

var _ scanner = (*sql.Row)(nil)

func scanMember(row scanner) (*models.Member, error) {
	member := &models.Member{}
	var createdAt int64
	if err := row.Scan(&member.ID, &member.Name, &member.Note, &member.UserID, &createdAt); err != nil {
		return nil, err
	}
	member.CreatedAt = fromUnix(createdAt)
	return member, nil
}
