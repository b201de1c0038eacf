package domain

import "time"

type Assignment struct {
	ID           string       `json:"_id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Course       Ref          `json:"course"`
	Module       string       `json:"module,omitempty"`
	Batch        *Ref         `json:"batch,omitempty"`
	DueDate      *time.Time   `json:"dueDate,omitempty"`
	MaxPoints    int          `json:"maxPoints"`
	Instructions string       `json:"instructions,omitempty"`
	Attachments  []Attachment `json:"attachments,omitempty"`
	Submissions  []Submission `json:"submissions"`
	CreatedAt    time.Time    `json:"createdAt"`
}

func (a Assignment) GetID() string { return a.ID }

// Submission returns the submission with the given id.
func (a Assignment) Submission(id string) (Submission, bool) {
	for _, s := range a.Submissions {
		if s.ID == id {
			return s, true
		}
	}
	return Submission{}, false
}

type Attachment struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// Submission.Grade stays nil until the submission has been graded.
type Submission struct {
	ID          string     `json:"_id"`
	Student     Ref        `json:"student"`
	Content     string     `json:"content,omitempty"`
	FileURL     string     `json:"fileUrl,omitempty"`
	SubmittedAt time.Time  `json:"submittedAt"`
	Grade       *float64   `json:"grade,omitempty"`
	Feedback    string     `json:"feedback,omitempty"`
	GradedAt    *time.Time `json:"gradedAt,omitempty"`
}

func (s Submission) Graded() bool {
	return s.Grade != nil
}

type AssignmentInput struct {
	Title        string     `json:"title" validate:"required"`
	Description  string     `json:"description" validate:"required"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	MaxPoints    int        `json:"maxPoints" validate:"gte=0"`
	Instructions string     `json:"instructions"`
	Course       string     `json:"course,omitempty"`
	Module       string     `json:"module,omitempty"`
	Batch        string     `json:"batch,omitempty"`
}

func NewAssignmentInput() AssignmentInput {
	return AssignmentInput{MaxPoints: 100}
}

func AssignmentInputFrom(a Assignment) AssignmentInput {
	in := AssignmentInput{
		Title:        a.Title,
		Description:  a.Description,
		DueDate:      a.DueDate,
		MaxPoints:    a.MaxPoints,
		Instructions: a.Instructions,
		Module:       a.Module,
	}
	if a.Batch != nil {
		in.Batch = a.Batch.ID
	}
	return in
}

type GradeInput struct {
	StudentID string  `json:"studentId"`
	Grade     float64 `json:"grade"`
	Feedback  string  `json:"feedback"`
}

// KeepRefs returns a with the populated course, batch and student refs of
// prev restored wherever a carries bare ids.
func (a Assignment) KeepRefs(prev Assignment) Assignment {
	a.Course = a.Course.Or(prev.Course)
	if a.Batch != nil && prev.Batch != nil {
		batch := a.Batch.Or(*prev.Batch)
		a.Batch = &batch
	}

	idx := refIndex{}
	for _, s := range prev.Submissions {
		idx.add(s.Student)
	}
	if len(a.Submissions) > 0 {
		subs := make([]Submission, len(a.Submissions))
		copy(subs, a.Submissions)
		for i := range subs {
			subs[i].Student = idx.fill(subs[i].Student)
		}
		a.Submissions = subs
	}
	return a
}
