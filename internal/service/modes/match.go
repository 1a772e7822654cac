package modes

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/heartmarshall/studyset-backend/internal/domain"
	"github.com/heartmarshall/studyset-backend/internal/service/study"
)

// MatchBoard is a freshly dealt match game.
type MatchBoard struct {
	Game  domain.MatchGame
	Cards []domain.MatchCard
}

// MoveResult is the outcome of one pairing attempt.
type MoveResult struct {
	Move domain.MatchMove
	Game domain.MatchGame
}

// MatchResult is the outcome of a completed match game.
type MatchResult struct {
	Game  domain.MatchGame
	Score int
}

// CreateMatch deals 2 × pairs cards for a random selection of terms. The pair
// count is capped at the number of terms in the set.
func (s *Service) CreateMatch(ctx context.Context, studySetID int64, pairsCount int) (*MatchBoard, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if pairsCount == 0 {
		pairsCount = s.limits.DefaultMatchPairs
	}
	if pairsCount < 1 || pairsCount > s.limits.MaxMatchPairs {
		return nil, domain.NewValidationError("pairs_count", "out of range")
	}

	terms, err := s.loadTerms(ctx, studySetID)
	if err != nil {
		return nil, err
	}

	picked := s.shuffledTerms(terms)[:min(pairsCount, len(terms))]
	selected := make([]int64, 0, len(picked))
	cards := make([]domain.MatchCard, 0, 2*len(picked))
	for _, t := range picked {
		selected = append(selected, t.ID)
		cards = append(cards,
			domain.MatchCard{ID: cardID(domain.MatchCardTerm, t.ID), TermID: t.ID, Side: domain.MatchCardTerm, Text: t.Term},
			domain.MatchCard{ID: cardID(domain.MatchCardDefinition, t.ID), TermID: t.ID, Side: domain.MatchCardDefinition, Text: t.Definition},
		)
	}
	s.shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })

	var game *domain.MatchGame
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		session, err := s.engine.StartSession(txCtx, study.StartSessionInput{
			UserID: userID, StudySetID: studySetID, Mode: domain.StudyModeMatch,
		})
		if err != nil {
			return fmt.Errorf("start session: %w", err)
		}

		game, err = s.matches.Create(txCtx, &domain.MatchGame{
			SessionID:     session.ID,
			StudySetID:    studySetID,
			PairsCount:    len(picked),
			SelectedTerms: selected,
		})
		if err != nil {
			return fmt.Errorf("create match: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "match created",
		slog.Int64("user_id", userID),
		slog.Int64("game_id", game.ID),
		slog.Int("pairs", game.PairsCount),
	)

	return &MatchBoard{Game: *game, Cards: cards}, nil
}

// SubmitMove records an attempt to pair two cards. Cards pair up iff they
// carry the same term; a successful pair counts as a correct answer for it.
// Pairing a term that is already matched returns domain.ErrConflict.
func (s *Service) SubmitMove(ctx context.Context, gameID int64, input MoveInput) (*MoveResult, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if input.TimeSpentSeconds != nil && !validSeconds(*input.TimeSpentSeconds) {
		return nil, domain.NewValidationError("time_spent", "must be a non-negative number")
	}

	game, err := s.matches.GetByID(ctx, userID, gameID)
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}
	if game.CompletedAt != nil {
		return nil, fmt.Errorf("match %d already completed: %w", gameID, domain.ErrConflict)
	}

	first, err := parseCardID(input.FirstCardID)
	if err != nil {
		return nil, err
	}
	second, err := parseCardID(input.SecondCardID)
	if err != nil {
		return nil, err
	}
	if input.FirstCardID == input.SecondCardID {
		return nil, domain.NewValidationError("second_card_id", "must differ from first card")
	}
	if !slices.Contains(game.SelectedTerms, first) || !slices.Contains(game.SelectedTerms, second) {
		return nil, domain.NewValidationError("card_id", "card is not on this board")
	}

	isMatch := first == second
	if isMatch && slices.Contains(game.MatchedTerms, first) {
		return nil, fmt.Errorf("match %d: term %d already matched: %w", gameID, first, domain.ErrConflict)
	}

	game.TotalMatches++
	if !isMatch {
		game.IncorrectMatches++
	}

	var move *domain.MatchMove
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		move, err = s.matches.AddMove(txCtx, &domain.MatchMove{
			GameID:           gameID,
			MoveNumber:       game.TotalMatches,
			FirstTermID:      first,
			SecondTermID:     second,
			IsMatch:          isMatch,
			TimeSpentSeconds: input.TimeSpentSeconds,
			MovedAt:          s.clock.Now(),
		})
		if err != nil {
			return fmt.Errorf("add move: %w", err)
		}
		if err := s.matches.UpdateCounters(txCtx, gameID, game.TotalMatches, game.IncorrectMatches); err != nil {
			return fmt.Errorf("update match: %w", err)
		}
		if isMatch {
			if _, err := s.recordAnswer(txCtx, userID, game.StudySetID, first, true, input.TimeSpentSeconds); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if isMatch {
		game.MatchedTerms = append(game.MatchedTerms, first)
		slices.Sort(game.MatchedTerms)
	}

	return &MoveResult{Move: *move, Game: *game}, nil
}

// CompleteMatch closes the game, scores it and completes its session in one
// transaction.
// A nil incorrectMatches keeps the count tallied from submitted moves.
func (s *Service) CompleteMatch(ctx context.Context, gameID int64, completionSeconds float64, incorrectMatches *int) (*MatchResult, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if !validSeconds(completionSeconds) {
		return nil, domain.NewValidationError("completion_time", "must be a non-negative number")
	}
	if incorrectMatches != nil && *incorrectMatches < 0 {
		return nil, domain.NewValidationError("incorrect_matches", "must be non-negative")
	}

	game, err := s.matches.GetByID(ctx, userID, gameID)
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}
	if game.CompletedAt != nil {
		return nil, fmt.Errorf("match %d already completed: %w", gameID, domain.ErrConflict)
	}
	if incorrectMatches != nil {
		game.IncorrectMatches = *incorrectMatches
	}

	now := s.clock.Now()
	score := MatchScore(game.PairsCount, completionSeconds, game.IncorrectMatches)

	sessScore := sessionScore(float64(score))
	pairs, spent := game.PairsCount, int(completionSeconds)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.matches.Complete(txCtx, gameID, completionSeconds, game.IncorrectMatches, now); err != nil {
			return fmt.Errorf("complete match: %w", err)
		}
		if _, err := s.engine.CompleteSession(txCtx, userID, game.SessionID, domain.SessionUpdate{
			Score:            &sessScore,
			TotalQuestions:   &pairs,
			CorrectAnswers:   &pairs,
			TimeSpentSeconds: &spent,
			CompletedAt:      &now,
		}); err != nil {
			return fmt.Errorf("complete session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	game.CompletedAt = &now
	game.CompletionTimeSeconds = &completionSeconds

	s.log.InfoContext(ctx, "match completed",
		slog.Int64("user_id", userID),
		slog.Int64("game_id", gameID),
		slog.Int("score", score),
	)

	return &MatchResult{Game: *game, Score: score}, nil
}

// Card IDs encode the side and the term: "t-42" and "d-42".
func cardID(side domain.MatchCardSide, termID int64) string {
	prefix := "t"
	if side == domain.MatchCardDefinition {
		prefix = "d"
	}
	return prefix + "-" + strconv.FormatInt(termID, 10)
}

func parseCardID(id string) (int64, error) {
	prefix, raw, ok := strings.Cut(id, "-")
	if !ok || (prefix != "t" && prefix != "d") {
		return 0, domain.NewValidationError("card_id", "malformed card id")
	}
	termID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || termID <= 0 {
		return 0, domain.NewValidationError("card_id", "malformed card id")
	}
	return termID, nil
}
