package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/studyset-backend/internal/domain"
)

// StartSession opens a new session for the user in the given mode.
func (s *Service) StartSession(ctx context.Context, input StartSessionInput) (*domain.StudySession, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.terms.SetExists(ctx, input.StudySetID)
	if err != nil {
		return nil, fmt.Errorf("check study set: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("study set %d: %w", input.StudySetID, domain.ErrNotFound)
	}

	created, err := s.sessions.Create(ctx, &domain.StudySession{
		UserID:     input.UserID,
		StudySetID: input.StudySetID,
		Mode:       input.Mode,
		StartedAt:  s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.InfoContext(ctx, "session started",
		slog.Int64("user_id", input.UserID),
		slog.Int64("session_id", created.ID),
		slog.String("mode", input.Mode.String()),
	)

	return created, nil
}

// CompleteSession applies a partial update to an existing session. CompletedAt
// defaults to now when the update does not carry it. Unknown sessions and
// sessions of other users yield ErrNotFound; nothing is created.
func (s *Service) CompleteSession(ctx context.Context, userID, sessionID int64, upd domain.SessionUpdate) (*domain.StudySession, error) {
	if userID <= 0 || sessionID <= 0 {
		return nil, domain.NewValidationError("session_id", "required")
	}
	if err := validateSessionUpdate(upd); err != nil {
		return nil, err
	}

	if upd.CompletedAt == nil {
		now := s.clock.Now()
		upd.CompletedAt = &now
	}

	updated, err := s.sessions.Update(ctx, userID, sessionID, upd)
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	attrs := []any{
		slog.Int64("user_id", userID),
		slog.Int64("session_id", sessionID),
	}
	if updated.Score != nil {
		attrs = append(attrs, slog.Float64("score", *updated.Score))
	}
	s.log.InfoContext(ctx, "session completed", attrs...)

	return updated, nil
}

// GetSession returns a session owned by the user.
func (s *Service) GetSession(ctx context.Context, userID, sessionID int64) (*domain.StudySession, error) {
	if userID <= 0 || sessionID <= 0 {
		return nil, domain.NewValidationError("session_id", "required")
	}

	session, err := s.sessions.GetByID(ctx, userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}
