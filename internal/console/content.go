package console

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/errdefs"
)

// ── modules ─────────────────────────────────────────────────────────

func (c *Console) OpenModuleCreate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return errdefs.ErrNoCourseSelected
	}
	c.moduleForm.OpenCreate()
	return nil
}

func (c *Console) OpenModuleEdit(moduleID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return errdefs.ErrNoCourseSelected
	}
	m, ok := c.modules.Get(moduleID)
	if !ok {
		return fmt.Errorf("module %s: %w", moduleID, errdefs.ErrNotFound)
	}
	c.moduleForm.OpenEdit(m)
	return nil
}

func (c *Console) CancelModuleForm() {
	c.mu.Lock()
	c.moduleForm.Cancel()
	c.mu.Unlock()
}

// SubmitModule creates or updates a module depending on how the form was
// opened. On failure the form stays open with the submitted values.
func (c *Console) SubmitModule(ctx context.Context, in domain.ModuleInput) error {
	if in.Resources == nil {
		in.Resources = []domain.Resource{}
	}

	c.mu.Lock()
	course, gen, err := c.begin()
	if err != nil {
		c.mu.Unlock()
		return err
	}
	if !c.moduleForm.IsOpen() {
		c.mu.Unlock()
		return errdefs.ErrFormNotOpen
	}
	c.moduleForm.Stage(in)
	editing, isEdit := c.moduleForm.Editing()
	c.mu.Unlock()

	if err := c.validate.Struct(in); err != nil {
		return c.fail(validationAlert(err))
	}

	if isEdit {
		updated, err := c.backend.UpdateModule(ctx, course.ID, editing.ID, in)
		if err != nil {
			c.logger.Error(ctx, "failed to update module", zap.String("module_id", editing.ID), zap.Error(err))
			return c.fail(alertFor(err, "Failed to save module."))
		}
		if updated.ID == "" {
			updated.ID = editing.ID
		}
		c.mu.Lock()
		if !c.staleLocked(ctx, gen, "update module") {
			c.modules.Upsert(updated)
			c.moduleForm.Cancel()
		}
		c.mu.Unlock()
		c.publish(ctx, domain.ContentEvent{Type: domain.EventModuleUpdated, CourseID: course.ID, EntityID: updated.ID, Title: updated.Title})
		return nil
	}

	modules, err := c.backend.CreateModule(ctx, course.ID, in)
	if err != nil {
		c.logger.Error(ctx, "failed to create module", zap.String("course_id", course.ID), zap.Error(err))
		return c.fail(alertFor(err, "Failed to save module."))
	}
	c.mu.Lock()
	var createdID string
	if !c.staleLocked(ctx, gen, "create module") {
		createdID = newModuleID(c.modules.List(), modules)
		c.modules.Replace(modules)
		c.moduleForm.Cancel()
	}
	c.mu.Unlock()
	c.publish(ctx, domain.ContentEvent{Type: domain.EventModuleCreated, CourseID: course.ID, EntityID: createdID, Title: in.Title})
	return nil
}

// newModuleID finds the id present in after but not in before.
func newModuleID(before, after []domain.Module) string {
	known := make(map[string]struct{}, len(before))
	for _, m := range before {
		known[m.ID] = struct{}{}
	}
	for _, m := range after {
		if _, ok := known[m.ID]; !ok {
			return m.ID
		}
	}
	return ""
}

func (c *Console) DeleteModule(ctx context.Context, moduleID string, confirmed bool) error {
	if !confirmed {
		return errdefs.ErrConfirmationRequired
	}

	c.mu.Lock()
	course, gen, err := c.begin()
	if err != nil {
		c.mu.Unlock()
		return err
	}
	m, ok := c.modules.Get(moduleID)
	c.mu.Unlock()
	if !ok {
		return fmt.Errorf("module %s: %w", moduleID, errdefs.ErrNotFound)
	}

	remaining, err := c.backend.DeleteModule(ctx, course.ID, moduleID)
	if err != nil {
		c.logger.Error(ctx, "failed to delete module", zap.String("module_id", moduleID), zap.Error(err))
		return c.fail(alertFor(err, "Failed to delete module."))
	}

	c.mu.Lock()
	if !c.staleLocked(ctx, gen, "delete module") {
		if remaining == nil {
			c.modules.Remove(moduleID)
		} else {
			c.modules.Replace(remaining)
		}
	}
	c.mu.Unlock()
	c.publish(ctx, domain.ContentEvent{Type: domain.EventModuleDeleted, CourseID: course.ID, EntityID: moduleID, Title: m.Title})
	return nil
}

// ── assignments ─────────────────────────────────────────────────────

func (c *Console) OpenAssignmentCreate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return errdefs.ErrNoCourseSelected
	}
	c.assignmentForm.OpenCreate()
	return nil
}

func (c *Console) OpenAssignmentEdit(assignmentID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return errdefs.ErrNoCourseSelected
	}
	a, ok := c.assignments.Get(assignmentID)
	if !ok {
		return fmt.Errorf("assignment %s: %w", assignmentID, errdefs.ErrNotFound)
	}
	c.assignmentForm.OpenEdit(a)
	return nil
}

func (c *Console) CancelAssignmentForm() {
	c.mu.Lock()
	c.assignmentForm.Cancel()
	c.mu.Unlock()
}

// SubmitAssignment sends the form to the server. The payload always names the
// selected course; batch and module are sent only when the instructor chose
// them.
func (c *Console) SubmitAssignment(ctx context.Context, in domain.AssignmentInput) error {
	in.Batch = strings.TrimSpace(in.Batch)
	in.Module = strings.TrimSpace(in.Module)

	c.mu.Lock()
	course, gen, err := c.begin()
	if err != nil {
		c.mu.Unlock()
		return err
	}
	if !c.assignmentForm.IsOpen() {
		c.mu.Unlock()
		return errdefs.ErrFormNotOpen
	}
	in.Course = course.ID
	c.assignmentForm.Stage(in)
	editing, isEdit := c.assignmentForm.Editing()
	_, moduleKnown := c.modules.Get(in.Module)
	c.mu.Unlock()

	if err := c.validate.Struct(in); err != nil {
		return c.fail(validationAlert(err))
	}
	if in.Module != "" && !moduleKnown {
		return c.fail(invalid("Selected module does not belong to this course."))
	}

	var (
		saved     domain.Assignment
		eventType domain.ContentEventType
	)
	if isEdit {
		saved, err = c.backend.UpdateAssignment(ctx, editing.ID, in)
		if err == nil && saved.ID == "" {
			saved.ID = editing.ID
		}
		eventType = domain.EventAssignmentUpdated
	} else {
		saved, err = c.backend.CreateAssignment(ctx, in)
		eventType = domain.EventAssignmentCreated
	}
	if err != nil {
		c.logger.Error(ctx, "failed to save assignment", zap.String("course_id", course.ID), zap.Error(err))
		return c.fail(alertFor(err, "Failed to save assignment."))
	}

	c.mu.Lock()
	if !c.staleLocked(ctx, gen, "save assignment") {
		if prev, ok := c.assignments.Get(saved.ID); ok {
			saved = saved.KeepRefs(prev)
		}
		c.assignments.Upsert(saved)
		c.assignmentForm.Cancel()
	}
	c.mu.Unlock()
	c.publish(ctx, domain.ContentEvent{Type: eventType, CourseID: course.ID, EntityID: saved.ID, Title: saved.Title})
	return nil
}

func (c *Console) DeleteAssignment(ctx context.Context, assignmentID string, confirmed bool) error {
	if !confirmed {
		return errdefs.ErrConfirmationRequired
	}

	c.mu.Lock()
	course, gen, err := c.begin()
	if err != nil {
		c.mu.Unlock()
		return err
	}
	a, ok := c.assignments.Get(assignmentID)
	c.mu.Unlock()
	if !ok {
		return fmt.Errorf("assignment %s: %w", assignmentID, errdefs.ErrNotFound)
	}

	if err := c.backend.DeleteAssignment(ctx, assignmentID); err != nil {
		c.logger.Error(ctx, "failed to delete assignment", zap.String("assignment_id", assignmentID), zap.Error(err))
		return c.fail(alertFor(err, "Failed to delete assignment."))
	}

	c.mu.Lock()
	if !c.staleLocked(ctx, gen, "delete assignment") {
		c.assignments.Remove(assignmentID)
		if c.grading != nil && c.grading.assignmentID == assignmentID {
			c.grading = nil
		}
	}
	c.mu.Unlock()
	c.publish(ctx, domain.ContentEvent{Type: domain.EventAssignmentDeleted, CourseID: course.ID, EntityID: assignmentID, Title: a.Title})
	return nil
}

// ── live sessions ───────────────────────────────────────────────────

func (c *Console) OpenSessionCreate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return errdefs.ErrNoCourseSelected
	}
	c.sessionForm.OpenCreate()
	return nil
}

func (c *Console) OpenSessionEdit(sessionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return errdefs.ErrNoCourseSelected
	}
	s, ok := c.sessions.Get(sessionID)
	if !ok {
		return fmt.Errorf("session %s: %w", sessionID, errdefs.ErrNotFound)
	}
	c.sessionForm.OpenEdit(s)
	return nil
}

func (c *Console) CancelSessionForm() {
	c.mu.Lock()
	c.sessionForm.Cancel()
	c.mu.Unlock()
}

func (c *Console) SubmitSession(ctx context.Context, in domain.SessionInput) error {
	in.Batch = strings.TrimSpace(in.Batch)

	c.mu.Lock()
	course, gen, err := c.begin()
	if err != nil {
		c.mu.Unlock()
		return err
	}
	if !c.sessionForm.IsOpen() {
		c.mu.Unlock()
		return errdefs.ErrFormNotOpen
	}
	in.Course = course.ID
	c.sessionForm.Stage(in)
	editing, isEdit := c.sessionForm.Editing()
	c.mu.Unlock()

	if err := c.validate.Struct(in); err != nil {
		return c.fail(validationAlert(err))
	}

	var (
		saved     domain.LiveSession
		eventType domain.ContentEventType
	)
	if isEdit {
		saved, err = c.backend.UpdateSession(ctx, editing.ID, in)
		if err == nil && saved.ID == "" {
			saved.ID = editing.ID
		}
		eventType = domain.EventSessionUpdated
	} else {
		saved, err = c.backend.CreateSession(ctx, course.ID, in)
		eventType = domain.EventSessionCreated
	}
	if err != nil {
		c.logger.Error(ctx, "failed to save live session", zap.String("course_id", course.ID), zap.Error(err))
		return c.fail(alertFor(err, "Failed to save session."))
	}

	c.mu.Lock()
	if !c.staleLocked(ctx, gen, "save session") {
		if saved.ID != "" {
			c.sessions.Upsert(saved)
		}
		c.sessionForm.Cancel()
	}
	c.mu.Unlock()

	if saved.ID == "" {
		c.logger.Warn(ctx, "session saved without a record in the response, refetching", zap.String("course_id", course.ID))
		saved = c.reloadSessions(ctx, gen, course.ID, in.Title)
	}
	c.publish(ctx, domain.ContentEvent{Type: eventType, CourseID: course.ID, EntityID: saved.ID, Title: in.Title})
	return nil
}

// reloadSessions replaces the session store with the server's list and
// returns the newest session titled title, if there is one.
func (c *Console) reloadSessions(ctx context.Context, gen uint64, courseID, title string) domain.LiveSession {
	items, err := c.backend.GetCourseSessions(ctx, courseID, "")

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.staleLocked(ctx, gen, "reload sessions") {
		return domain.LiveSession{}
	}
	if err != nil {
		c.loadErrors[storeSessions] = err.Error()
		c.logger.Warn(ctx, "course data unavailable", zap.String("course_id", courseID), zap.String("store", storeSessions), zap.Error(err))
		return domain.LiveSession{}
	}
	c.sessions.Replace(items)
	delete(c.loadErrors, storeSessions)

	var found domain.LiveSession
	for _, s := range items {
		if s.Title == title && !s.CreatedAt.Before(found.CreatedAt) {
			found = s
		}
	}
	return found
}

func (c *Console) DeleteSession(ctx context.Context, sessionID string, confirmed bool) error {
	if !confirmed {
		return errdefs.ErrConfirmationRequired
	}

	c.mu.Lock()
	course, gen, err := c.begin()
	if err != nil {
		c.mu.Unlock()
		return err
	}
	s, ok := c.sessions.Get(sessionID)
	c.mu.Unlock()
	if !ok {
		return fmt.Errorf("session %s: %w", sessionID, errdefs.ErrNotFound)
	}

	if err := c.backend.DeleteSession(ctx, sessionID); err != nil {
		c.logger.Error(ctx, "failed to delete live session", zap.String("session_id", sessionID), zap.Error(err))
		return c.fail(alertFor(err, "Failed to delete session."))
	}

	c.mu.Lock()
	if !c.staleLocked(ctx, gen, "delete session") {
		c.sessions.Remove(sessionID)
	}
	c.mu.Unlock()
	c.publish(ctx, domain.ContentEvent{Type: domain.EventSessionDeleted, CourseID: course.ID, EntityID: sessionID, Title: s.Title})
	return nil
}

func (c *Console) UpdateSessionStatus(ctx context.Context, sessionID string, status domain.SessionStatus) error {
	if !status.IsValid() {
		return c.fail(invalid(fmt.Sprintf("Unknown session status %q.", status)))
	}

	c.mu.Lock()
	course, gen, err := c.begin()
	if err != nil {
		c.mu.Unlock()
		return err
	}
	s, ok := c.sessions.Get(sessionID)
	c.mu.Unlock()
	if !ok {
		return fmt.Errorf("session %s: %w", sessionID, errdefs.ErrNotFound)
	}

	updated, err := c.backend.UpdateSessionStatus(ctx, sessionID, status)
	if err != nil {
		c.logger.Error(ctx, "failed to update session status", zap.String("session_id", sessionID), zap.Error(err))
		return c.fail(alertFor(err, "Failed to update session status."))
	}
	if updated.ID == "" {
		updated.ID = sessionID
	}

	c.mu.Lock()
	if !c.staleLocked(ctx, gen, "update session status") {
		c.sessions.Upsert(updated)
	}
	c.mu.Unlock()
	c.publish(ctx, domain.ContentEvent{Type: domain.EventSessionStatusChanged, CourseID: course.ID, EntityID: sessionID, Title: s.Title})
	return nil
}
