package sqlite

import (
	"context"
	"fmt"

	"github.com/ling-4j/prosperpath/internal/models"
)

// CreateNotification persists a user-facing alert.
func (s *SQLiteStore) CreateNotification(ctx context.Context, n *models.Notification) error {
	n.ID = newID(n.ID)
	n.CreatedAt = s.stamp(n.CreatedAt)

	_, err := s.q.ExecContext(ctx,
		"INSERT INTO notifications (id, user_id, message, type, is_read, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		n.ID, n.UserID, n.Message, string(n.Type), n.IsRead, n.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

// ListNotificationsByUser retrieves a user's notifications, newest first.
func (s *SQLiteStore) ListNotificationsByUser(ctx context.Context, userID string, unreadOnly bool) ([]*models.Notification, error) {
	query := "SELECT id, user_id, message, type, is_read, created_at FROM notifications WHERE user_id = ?"
	if unreadOnly {
		query += " AND is_read = 0"
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := s.q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := []*models.Notification{}
	for rows.Next() {
		n := &models.Notification{}
		var typ string
		var createdAt int64
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &typ, &n.IsRead, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.Type = models.NotificationType(typ)
		n.CreatedAt = fromUnix(createdAt)
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}
	return notifications, nil
}

// MarkNotificationRead flags a notification owned by userID as read.
func (s *SQLiteStore) MarkNotificationRead(ctx context.Context, notificationID, userID string) error {
	res, err := s.q.ExecContext(ctx,
		"UPDATE notifications SET is_read = 1 WHERE id = ? AND user_id = ?",
		notificationID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return requireAffected(res, "notification", notificationID)
}
