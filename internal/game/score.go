package game

import "time"

// Score tracks the session's points, kill and death counts and the longest
// time the player stayed alive. In-memory only; it does not outlive the
// process.
type Score struct {
	clk           Clock
	points        int
	enemiesKilled int
	playerDeaths  int
	aliveSince    time.Time
	longestLife   time.Duration
}

// NewScore creates a zeroed score with the survival timer running
func NewScore(clk Clock) *Score {
	return &Score{
		clk:        clk,
		aliveSince: clk.Now(),
	}
}

// RecordKill adds points for a destroyed enemy
func (s *Score) RecordKill(points int) {
	s.points += points
	s.enemiesKilled++
}

// RecordDeath notes a player death and restarts the survival timer
func (s *Score) RecordDeath() {
	life := s.clk.Now().Sub(s.aliveSince)
	if life > s.longestLife {
		s.longestLife = life
	}
	s.playerDeaths++
	s.aliveSince = s.clk.Now()
}

func (s *Score) Points() int { return s.points }

func (s *Score) EnemiesKilled() int { return s.enemiesKilled }

func (s *Score) PlayerDeaths() int { return s.playerDeaths }

func (s *Score) LongestLife() time.Duration { return s.longestLife }
