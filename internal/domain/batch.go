package domain

import "time"

type Batch struct {
	ID            string    `json:"_id"`
	Course        Ref       `json:"course"`
	Name          string    `json:"name"`
	Capacity      int       `json:"capacity"`
	EnrolledCount int       `json:"enrolledCount"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	IsActive      bool      `json:"isActive"`
	Description   string    `json:"description,omitempty"`
}

func (b Batch) GetID() string { return b.ID }
