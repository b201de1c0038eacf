// Package console keeps one instructor's course-management state: the
// selected course, its entity stores, the open forms and the grading and
// chat selections. Every change to server data goes through Backend; the
// stores are patched only with what the server returned.
package console

//go:generate mockgen -source=console.go -destination=mocks/console_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/chat"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/errdefs"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/store"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/logging"
)

type Backend interface {
	GetInstructorCourses(ctx context.Context) ([]domain.Course, error)
	GetCourse(ctx context.Context, courseID string) (domain.Course, error)
	CreateModule(ctx context.Context, courseID string, in domain.ModuleInput) ([]domain.Module, error)
	UpdateModule(ctx context.Context, courseID, moduleID string, in domain.ModuleInput) (domain.Module, error)
	DeleteModule(ctx context.Context, courseID, moduleID string) ([]domain.Module, error)

	GetCourseAssignments(ctx context.Context, courseID, batchID string) ([]domain.Assignment, error)
	CreateAssignment(ctx context.Context, in domain.AssignmentInput) (domain.Assignment, error)
	UpdateAssignment(ctx context.Context, id string, in domain.AssignmentInput) (domain.Assignment, error)
	DeleteAssignment(ctx context.Context, id string) error
	GradeAssignment(ctx context.Context, id string, in domain.GradeInput) (domain.Assignment, error)

	GetCourseSessions(ctx context.Context, courseID, batchID string) ([]domain.LiveSession, error)
	CreateSession(ctx context.Context, courseID string, in domain.SessionInput) (domain.LiveSession, error)
	UpdateSession(ctx context.Context, id string, in domain.SessionInput) (domain.LiveSession, error)
	DeleteSession(ctx context.Context, id string) error
	UpdateSessionStatus(ctx context.Context, id string, status domain.SessionStatus) (domain.LiveSession, error)

	GetCourseBatches(ctx context.Context, courseID string) ([]domain.Batch, error)

	GetMentorChats(ctx context.Context) ([]domain.Chat, error)
	SendMessageToStudent(ctx context.Context, courseID, studentID, content string) error

	GetCourseForums(ctx context.Context, courseID string, category domain.PostCategory) ([]domain.ForumPost, error)
	CreatePost(ctx context.Context, in domain.PostInput) (domain.ForumPost, error)
	AddReply(ctx context.Context, postID, content string) (domain.ForumPost, error)
	PinPost(ctx context.Context, postID string) (domain.ForumPost, error)
	LockPost(ctx context.Context, postID string) (domain.ForumPost, error)
}

type Publisher interface {
	Publish(ctx context.Context, event domain.ContentEvent) error
}

type Tab string

const (
	TabOverview    Tab = "overview"
	TabAssignments Tab = "assignments"
	TabSessions    Tab = "sessions"
	TabChats       Tab = "chats"
	TabDiscussions Tab = "discussions"
)

func (t Tab) IsValid() bool {
	switch t {
	case TabOverview, TabAssignments, TabSessions, TabChats, TabDiscussions:
		return true
	default:
		return false
	}
}

// Store names used as keys of View.LoadErrors.
const (
	storeCourses     = "courses"
	storeModules     = "modules"
	storeAssignments = "assignments"
	storeSessions    = "sessions"
	storeBatches     = "batches"
	storeChats       = "chats"
	storeDiscussions = "discussions"
)

type Console struct {
	backend   Backend
	publisher Publisher
	logger    *logging.Logger
	validate  *validator.Validate
	now       func() time.Time

	mu sync.Mutex
	// gen changes on every course selection. Results computed under an
	// older generation are dropped.
	gen        uint64
	cancelLoad context.CancelFunc

	actorID  string
	courses  []domain.Course
	selected *domain.Course
	tab      Tab

	modules     *store.Collection[domain.Module]
	assignments *store.Collection[domain.Assignment]
	sessions    *store.Collection[domain.LiveSession]
	batches     *store.Collection[domain.Batch]
	discussions *store.Collection[domain.ForumPost]
	threads     []chat.Thread
	chatKey     string

	moduleForm     *FormController[domain.Module, domain.ModuleInput]
	assignmentForm *FormController[domain.Assignment, domain.AssignmentInput]
	sessionForm    *FormController[domain.LiveSession, domain.SessionInput]
	grading        *grading

	alert      string
	loadErrors map[string]string
}

type Option func(*Console)

func WithPublisher(p Publisher) Option {
	return func(c *Console) { c.publisher = p }
}

func WithLogger(l *logging.Logger) Option {
	return func(c *Console) { c.logger = l }
}

// WithActor stamps published events with the instructor's id.
func WithActor(userID string) Option {
	return func(c *Console) { c.actorID = userID }
}

func WithClock(now func() time.Time) Option {
	return func(c *Console) { c.now = now }
}

func New(backend Backend, opts ...Option) *Console {
	c := &Console{
		backend:        backend,
		logger:         logging.Nop(),
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		now:            time.Now,
		tab:            TabOverview,
		modules:        store.NewCollection[domain.Module](),
		assignments:    store.NewCollection[domain.Assignment](),
		sessions:       store.NewCollection[domain.LiveSession](),
		batches:        store.NewCollection[domain.Batch](),
		discussions:    store.NewCollection[domain.ForumPost](),
		moduleForm:     NewFormController(domain.NewModuleInput, domain.ModuleInputFrom),
		assignmentForm: NewFormController(domain.NewAssignmentInput, domain.AssignmentInputFrom),
		sessionForm:    NewFormController(domain.NewSessionInput, domain.SessionInputFrom),
		loadErrors:     make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load fetches the instructor's courses and selects the first one. With no
// courses the console stays without a selection and nothing else is fetched.
func (c *Console) Load(ctx context.Context) error {
	return c.refreshCourses(ctx, "")
}

// Reload refreshes the course list and re-runs the fetch cascade for the
// current course, or for the first course if the current one is gone.
func (c *Console) Reload(ctx context.Context) error {
	c.mu.Lock()
	keep := ""
	if c.selected != nil {
		keep = c.selected.ID
	}
	c.mu.Unlock()
	return c.refreshCourses(ctx, keep)
}

func (c *Console) refreshCourses(ctx context.Context, keep string) error {
	courses, err := c.backend.GetInstructorCourses(ctx)
	if err != nil {
		c.logger.Error(ctx, "failed to load instructor courses", zap.Error(err))
		c.mu.Lock()
		c.loadErrors[storeCourses] = err.Error()
		c.mu.Unlock()
		return c.fail(alertFor(err, "Failed to load courses."))
	}

	c.mu.Lock()
	c.courses = courses
	delete(c.loadErrors, storeCourses)
	next := ""
	for _, course := range courses {
		if course.ID == keep {
			next = keep
			break
		}
	}
	if next == "" && len(courses) > 0 {
		next = courses[0].ID
	}
	if next == "" {
		c.resetSelectionLocked()
		c.mu.Unlock()
		c.logger.Info(ctx, "instructor has no courses")
		return nil
	}
	c.mu.Unlock()

	return c.SelectCourse(ctx, next)
}

// SelectCourse makes courseID current, resets the tab to overview, closes
// every form and fetches the course's data. A later selection cancels this
// one's fetches and its results are discarded.
func (c *Console) SelectCourse(ctx context.Context, courseID string) error {
	c.mu.Lock()
	var course *domain.Course
	for i := range c.courses {
		if c.courses[i].ID == courseID {
			selected := c.courses[i]
			course = &selected
			break
		}
	}
	if course == nil {
		c.mu.Unlock()
		return fmt.Errorf("course %s: %w", courseID, errdefs.ErrNotFound)
	}

	c.resetSelectionLocked()
	c.selected = course
	gen := c.gen
	loadCtx, cancel := context.WithCancel(ctx)
	c.cancelLoad = cancel
	c.mu.Unlock()

	defer cancel()
	c.cascade(loadCtx, gen, *course)
	return nil
}

// resetSelectionLocked starts a new generation and clears everything tied to
// the previous course.
func (c *Console) resetSelectionLocked() {
	c.gen++
	if c.cancelLoad != nil {
		c.cancelLoad()
		c.cancelLoad = nil
	}
	c.selected = nil
	c.tab = TabOverview
	c.modules.Clear()
	c.assignments.Clear()
	c.sessions.Clear()
	c.batches.Clear()
	c.discussions.Clear()
	c.threads = nil
	c.chatKey = ""
	c.moduleForm.Cancel()
	c.assignmentForm.Cancel()
	c.sessionForm.Cancel()
	c.grading = nil
	for name := range c.loadErrors {
		if name != storeCourses {
			delete(c.loadErrors, name)
		}
	}
}

type cascadeResult struct {
	modules     []domain.Module
	assignments []domain.Assignment
	sessions    []domain.LiveSession
	batches     []domain.Batch
	chats       []domain.Chat
	discussions []domain.ForumPost
	errs        map[string]error
}

func (c *Console) cascade(ctx context.Context, gen uint64, course domain.Course) {
	res := cascadeResult{errs: make(map[string]error)}
	var errMu sync.Mutex
	record := func(name string, err error) {
		errMu.Lock()
		res.errs[name] = err
		errMu.Unlock()
	}

	var g errgroup.Group
	g.Go(func() error {
		detail, err := c.backend.GetCourse(ctx, course.ID)
		if err != nil {
			record(storeModules, err)
			return nil
		}
		res.modules = detail.Modules
		return nil
	})
	g.Go(func() error {
		items, err := c.backend.GetCourseAssignments(ctx, course.ID, "")
		if err != nil {
			record(storeAssignments, err)
			return nil
		}
		res.assignments = items
		return nil
	})
	g.Go(func() error {
		items, err := c.backend.GetCourseSessions(ctx, course.ID, "")
		if err != nil {
			record(storeSessions, err)
			return nil
		}
		res.sessions = items
		return nil
	})
	g.Go(func() error {
		items, err := c.backend.GetCourseBatches(ctx, course.ID)
		if err != nil {
			record(storeBatches, err)
			return nil
		}
		res.batches = items
		return nil
	})
	g.Go(func() error {
		items, err := c.backend.GetMentorChats(ctx)
		if err != nil {
			record(storeChats, err)
			return nil
		}
		res.chats = items
		return nil
	})
	g.Go(func() error {
		items, err := c.backend.GetCourseForums(ctx, course.ID, "")
		if err != nil {
			record(storeDiscussions, err)
			return nil
		}
		res.discussions = items
		return nil
	})
	_ = g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		c.logger.Debug(ctx, "discarding stale course data",
			zap.String("course_id", course.ID),
			zap.Uint64("generation", gen),
		)
		return
	}

	c.modules.Replace(res.modules)
	c.assignments.Replace(res.assignments)
	c.sessions.Replace(res.sessions)
	c.batches.Replace(res.batches)
	c.discussions.Replace(res.discussions)
	c.threads = chat.Group(res.chats)
	for name, err := range res.errs {
		c.loadErrors[name] = err.Error()
		c.logger.Warn(ctx, "course data unavailable",
			zap.String("course_id", course.ID),
			zap.String("store", name),
			zap.Error(err),
		)
	}
}

// SelectTab switches the visible tab. It never calls the backend.
func (c *Console) SelectTab(tab Tab) error {
	if !tab.IsValid() {
		return fmt.Errorf("tab %q: %w", tab, errdefs.ErrInvalidArgument)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return errdefs.ErrNoCourseSelected
	}
	c.tab = tab
	return nil
}

func (c *Console) DismissAlert() {
	c.mu.Lock()
	c.alert = ""
	c.mu.Unlock()
}

// Close cancels any in-flight fetch cascade.
func (c *Console) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancelLoad != nil {
		c.cancelLoad()
		c.cancelLoad = nil
	}
}

// begin snapshots the selected course and generation for a mutation.
func (c *Console) begin() (domain.Course, uint64, error) {
	if c.selected == nil {
		return domain.Course{}, 0, errdefs.ErrNoCourseSelected
	}
	return *c.selected, c.gen, nil
}

// fail records err as the visible alert when it carries one.
func (c *Console) fail(err error) error {
	if alert, ok := asAlert(err); ok {
		c.mu.Lock()
		c.alert = alert.Message
		c.mu.Unlock()
	}
	return err
}

// staleLocked reports whether gen is no longer current. Callers hold mu.
func (c *Console) staleLocked(ctx context.Context, gen uint64, what string) bool {
	if gen == c.gen {
		return false
	}
	c.logger.Debug(ctx, "discarding result for previous course", zap.String("operation", what))
	return true
}

func (c *Console) publish(ctx context.Context, event domain.ContentEvent) {
	if c.publisher == nil {
		return
	}
	event.ActorID = c.actorID
	if event.OccurredAt.IsZero() {
		event.OccurredAt = c.now()
	}
	if err := c.publisher.Publish(ctx, event); err != nil {
		c.logger.Warn(ctx, "failed to publish content event",
			zap.String("type", string(event.Type)),
			zap.String("course_id", event.CourseID),
			zap.Error(err),
		)
	}
}
