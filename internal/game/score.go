package game

// calculateScore computes the final outcome. On a loss, every monster still
// unfaced counts against the remaining health. On a win the score is the
// health, plus the last potion's rank if the run ended at full health on a
// normal-flow heal.
func (e *Engine) calculateScore() int {
	s := e.state
	if !s.Won {
		return s.Health - s.monstersRemaining()
	}
	score := s.Health
	if s.Health == s.MaxHealth && s.flags.lastHeal > 0 {
		score += s.flags.lastHeal
	}
	return score
}
