package game

import (
	"go.uber.org/zap"

	"glory-to-rome-backend/internal/game/card"
)

// finishGame ends the game, computes the final scores and clears the
// stack; no further actions are accepted.
func (g *Game) finishGame(reason string) {
	s := g.state
	if s.Finished {
		return
	}
	s.Finished = true
	s.EndReason = reason
	s.Pending = nil
	s.Scores = s.computeScores()
	s.Winners = s.pickWinners()

	g.log.Info("🎉 Game over",
		zap.String("reason", reason),
		zap.Ints("scores", s.Scores),
		zap.Ints("winners", s.Winners),
	)
}

// computeScores evaluates every player: influence points plus the
// completed-building bonuses.
func (s *State) computeScores() []int {
	scores := make([]int, len(s.Players))
	for idx, pl := range s.Players {
		pts := pl.InfluencePoints()
		if s.completedOrShared(idx, "Statue") {
			pts += 3
		}
		if s.completedOrShared(idx, "Wall") {
			pts += pl.Stockpile.Len() / 2
		}
		if s.completedOrShared(idx, "Forum") && hasClientOfEachRole(pl.Clientele.Cards()) {
			pts += 5
		}
		if s.completedOrShared(idx, "Gate") {
			for _, c := range pl.Vault.Cards() {
				if c.Material() == card.Marble {
					pts += c.Value()
				}
			}
		}
		scores[idx] = pts
	}
	return scores
}

// pickWinners takes the highest score; ties break toward the larger
// vault, and players still tied share the win.
func (s *State) pickWinners() []int {
	best := -1
	for _, sc := range s.Scores {
		if sc > best {
			best = sc
		}
	}
	bestVault := -1
	for idx, sc := range s.Scores {
		if sc == best && s.Players[idx].Vault.Len() > bestVault {
			bestVault = s.Players[idx].Vault.Len()
		}
	}
	var winners []int
	for idx, sc := range s.Scores {
		if sc == best && s.Players[idx].Vault.Len() == bestVault {
			winners = append(winners, idx)
		}
	}
	return winners
}

func hasClientOfEachRole(clients []card.ID) bool {
	have := make(map[card.Role]bool, 6)
	for _, c := range clients {
		have[c.Role()] = true
	}
	for _, r := range card.Roles() {
		if !have[r] {
			return false
		}
	}
	return true
}
