package domain

import "time"

type Enrollment struct {
	ID                   string    `json:"_id"`
	Student              Ref       `json:"student"`
	Course               Ref       `json:"course"`
	Batch                *Ref      `json:"batch,omitempty"`
	EnrolledAt           time.Time `json:"enrolledAt"`
	Completed            bool      `json:"completed"`
	CompletionPercentage float64   `json:"completionPercentage"`
}

type LeaderboardEntry struct {
	Student            Ref       `json:"student"`
	ProgressPercentage int       `json:"progressPercentage"`
	ModulesCompleted   int       `json:"modulesCompleted"`
	TotalModules       int       `json:"totalModules"`
	EnrolledAt         time.Time `json:"enrolledAt"`
	Rank               int       `json:"rank"`
}

// Leaderboard is ranked by the server; entries arrive in rank order.
type Leaderboard struct {
	Batch   Ref                `json:"batch"`
	Entries []LeaderboardEntry `json:"leaderboard"`
}

func (l Leaderboard) RankOf(email string) (int, bool) {
	if email == "" {
		return 0, false
	}
	for _, e := range l.Entries {
		if e.Student.Email == email {
			return e.Rank, true
		}
	}
	return 0, false
}
