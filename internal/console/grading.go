package console

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/errdefs"
)

type grading struct {
	assignmentID string
	submissionID string
	grade        float64
	feedback     string
}

// OpenGrading lists the submissions already embedded in the assignment with
// a blank grade form.
func (c *Console) OpenGrading(assignmentID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return errdefs.ErrNoCourseSelected
	}
	if _, ok := c.assignments.Get(assignmentID); !ok {
		return fmt.Errorf("assignment %s: %w", assignmentID, errdefs.ErrNotFound)
	}
	c.grading = &grading{assignmentID: assignmentID}
	return nil
}

// SelectSubmission pre-fills the form with the submission's current grade
// and feedback so it can be re-graded.
func (c *Console) SelectSubmission(submissionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.grading == nil {
		return errdefs.ErrFormNotOpen
	}
	a, ok := c.assignments.Get(c.grading.assignmentID)
	if !ok {
		return fmt.Errorf("assignment %s: %w", c.grading.assignmentID, errdefs.ErrNotFound)
	}
	sub, ok := a.Submission(submissionID)
	if !ok {
		return fmt.Errorf("submission %s: %w", submissionID, errdefs.ErrNotFound)
	}

	c.grading.submissionID = submissionID
	c.grading.grade = 0
	c.grading.feedback = ""
	if sub.Grade != nil {
		c.grading.grade = *sub.Grade
	}
	if sub.Feedback != "" {
		c.grading.feedback = sub.Feedback
	}
	return nil
}

// SaveGrade grades the selected submission. Grades outside 0..maxPoints are
// rejected before any call and the form keeps the entered values.
func (c *Console) SaveGrade(ctx context.Context, grade float64, feedback string) error {
	c.mu.Lock()
	course, gen, err := c.begin()
	if err != nil {
		c.mu.Unlock()
		return err
	}
	if c.grading == nil {
		c.mu.Unlock()
		return errdefs.ErrFormNotOpen
	}
	if c.grading.submissionID == "" {
		c.mu.Unlock()
		return errdefs.ErrNothingSelected
	}
	assignmentID := c.grading.assignmentID
	a, ok := c.assignments.Get(assignmentID)
	if !ok {
		c.mu.Unlock()
		return fmt.Errorf("assignment %s: %w", assignmentID, errdefs.ErrNotFound)
	}
	sub, ok := a.Submission(c.grading.submissionID)
	if !ok {
		c.mu.Unlock()
		return fmt.Errorf("submission %s: %w", c.grading.submissionID, errdefs.ErrNotFound)
	}
	c.grading.grade = grade
	c.grading.feedback = feedback
	c.mu.Unlock()

	if math.IsNaN(grade) || grade < 0 || grade > float64(a.MaxPoints) {
		return c.fail(invalid(fmt.Sprintf("Grade must be between 0 and %d.", a.MaxPoints)))
	}

	updated, err := c.backend.GradeAssignment(ctx, assignmentID, domain.GradeInput{
		StudentID: sub.Student.ID,
		Grade:     grade,
		Feedback:  feedback,
	})
	if err != nil {
		c.logger.Error(ctx, "failed to grade submission",
			zap.String("assignment_id", assignmentID),
			zap.String("student_id", sub.Student.ID),
			zap.Error(err),
		)
		return c.fail(alertFor(err, "Failed to save grade."))
	}
	if updated.ID == "" {
		updated.ID = assignmentID
	}

	c.mu.Lock()
	if !c.staleLocked(ctx, gen, "save grade") {
		if prev, ok := c.assignments.Get(updated.ID); ok {
			updated = updated.KeepRefs(prev)
		}
		c.assignments.Upsert(updated)
		c.grading = nil
	}
	c.mu.Unlock()
	c.publish(ctx, domain.ContentEvent{
		Type:      domain.EventAssignmentGraded,
		CourseID:  course.ID,
		EntityID:  assignmentID,
		Title:     a.Title,
		StudentID: sub.Student.ID,
	})
	return nil
}

func (c *Console) CloseGrading() {
	c.mu.Lock()
	c.grading = nil
	c.mu.Unlock()
}
