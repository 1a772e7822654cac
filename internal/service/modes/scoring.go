package modes

import (
	"math"
	"time"

	"github.com/heartmarshall/studyset-backend/internal/service/study"
)

const (
	matchPairPoints     = 100
	matchTimeBonusMax   = 50
	matchMissPenalty    = 10
	gravityBasePoints   = 10
	gravitySpeedBonus   = 20
	learnPointsPerLevel = 10
	learnRaiseStreak    = 3
	minDifficulty       = 1
	maxDifficulty       = 5
)

// MatchScore scores a finished match board. Each pair is worth 100, a time
// bonus of up to 50 shrinks by one point per ten whole seconds, and each wrong
// pairing costs 10. The result is never negative.
func MatchScore(pairs int, completionSeconds float64, incorrectMatches int) int {
	bonus := max(0, matchTimeBonusMax-int(completionSeconds)/10)
	return max(0, matchPairPoints*pairs+bonus-matchMissPenalty*incorrectMatches)
}

// GravityPoints returns the points for destroying a term after seconds.
func GravityPoints(seconds float64) int {
	return gravityBasePoints + max(0, gravitySpeedBonus-int(seconds))
}

// GravitySpeed returns the falling speed multiplier for a difficulty level.
func GravitySpeed(difficulty int) float64 {
	return roundTo2(1.0 + float64(difficulty-1)*0.2)
}

// LearnPoints returns the points for a correct learn answer at difficulty.
func LearnPoints(difficulty int) int {
	return learnPointsPerLevel * difficulty
}

// nextDifficulty moves the learn difficulty after an answer. streak is the
// consecutive-correct count including this answer.
func nextDifficulty(current int, correct bool, streak int) int {
	if !correct {
		return max(minDifficulty, current-1)
	}
	if streak > 0 && streak%learnRaiseStreak == 0 {
		return min(maxDifficulty, current+1)
	}
	return current
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// sessionScore fits a mode score into the session score column.
func sessionScore(v float64) float64 {
	return min(roundTo2(max(0, v)), study.MaxSessionScore)
}

func secondsDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
