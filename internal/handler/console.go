package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/console"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/errdefs"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/ctxdata"
)

// ConsoleHandler exposes each instructor's console. Every successful call
// answers with the full view.
type ConsoleHandler struct {
	registry *console.Registry
}

func NewConsoleHandler(registry *console.Registry) *ConsoleHandler {
	return &ConsoleHandler{registry: registry}
}

func (h *ConsoleHandler) RegisterRoutes(r chi.Router, middlewares ...Middleware) {
	r.With(middlewares...).Group(func(r chi.Router) {
		r.Get("/", h.GetView)
		r.Post("/reload", h.Reload)
		r.Put("/course", h.SelectCourse)
		r.Put("/tab", h.SelectTab)
		r.Delete("/alert", h.DismissAlert)

		r.Post("/modules/form", h.OpenModuleCreate)
		r.Post("/modules/{id}/form", h.OpenModuleEdit)
		r.Put("/modules/form", h.SubmitModule)
		r.Delete("/modules/form", h.CancelModuleForm)
		r.Delete("/modules/{id}", h.DeleteModule)

		r.Post("/assignments/form", h.OpenAssignmentCreate)
		r.Post("/assignments/{id}/form", h.OpenAssignmentEdit)
		r.Put("/assignments/form", h.SubmitAssignment)
		r.Delete("/assignments/form", h.CancelAssignmentForm)
		r.Delete("/assignments/{id}", h.DeleteAssignment)

		r.Post("/sessions/form", h.OpenSessionCreate)
		r.Post("/sessions/{id}/form", h.OpenSessionEdit)
		r.Put("/sessions/form", h.SubmitSession)
		r.Delete("/sessions/form", h.CancelSessionForm)
		r.Delete("/sessions/{id}", h.DeleteSession)
		r.Put("/sessions/{id}/status", h.UpdateSessionStatus)

		r.Post("/grading/{assignmentID}", h.OpenGrading)
		r.Put("/grading/submission", h.SelectSubmission)
		r.Post("/grading/save", h.SaveGrade)
		r.Delete("/grading", h.CloseGrading)

		r.Put("/chats/selected", h.SelectChat)
		r.Post("/chats/messages", h.SendMessage)

		r.Post("/discussions", h.CreateDiscussion)
		r.Post("/discussions/{id}/replies", h.ReplyToDiscussion)
		r.Post("/discussions/{id}/pin", h.TogglePin)
		r.Post("/discussions/{id}/lock", h.ToggleLock)
	})
}

// consoleFor returns the caller's console, loading it on first use.
func (h *ConsoleHandler) consoleFor(ctx context.Context) (*console.Console, error) {
	userID, ok := ctxdata.GetUserID(ctx)
	if !ok || userID == "" {
		return nil, errdefs.ErrUnauthenticated
	}
	return h.registry.Acquire(ctx, userID)
}

// serve runs op against the caller's console and writes the resulting view.
func (h *ConsoleHandler) serve(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, c *console.Console) error) {
	ctx := r.Context()
	c, err := h.consoleFor(ctx)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if op != nil {
		if err := op(ctx, c); err != nil {
			writeErr(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, c.View())
}

func (h *ConsoleHandler) GetView(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, nil)
}

func (h *ConsoleHandler) Reload(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context, c *console.Console) error {
		return c.Reload(ctx)
	})
}

type selectCourseRequest struct {
	CourseID string `json:"courseId"`
}

func (h *ConsoleHandler) SelectCourse(w http.ResponseWriter, r *http.Request) {
	var req selectCourseRequest
	if err := decodeBody(r, &req); err != nil {
		writeErr(w, r, err)
		return
	}
	if req.CourseID == "" {
		writeErrorJSON(w, http.StatusBadRequest, "courseId is required")
		return
	}
	h.serve(w, r, func(ctx context.Context, c *console.Console) error {
		return c.SelectCourse(ctx, req.CourseID)
	})
}

type selectTabRequest struct {
	Tab console.Tab `json:"tab"`
}

func (h *ConsoleHandler) SelectTab(w http.ResponseWriter, r *http.Request) {
	var req selectTabRequest
	if err := decodeBody(r, &req); err != nil {
		writeErr(w, r, err)
		return
	}
	h.serve(w, r, func(_ context.Context, c *console.Console) error {
		return c.SelectTab(req.Tab)
	})
}

func (h *ConsoleHandler) DismissAlert(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(_ context.Context, c *console.Console) error {
		c.DismissAlert()
		return nil
	})
}

func (h *ConsoleHandler) OpenModuleCreate(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(_ context.Context, c *console.Console) error {
		return c.OpenModuleCreate()
	})
}

func (h *ConsoleHandler) OpenModuleEdit(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, "id", func(_ context.Context, c *console.Console, id string) error {
		return c.OpenModuleEdit(id)
	})
}

func (h *ConsoleHandler) SubmitModule(w http.ResponseWriter, r *http.Request) {
	var in domain.ModuleInput
	if err := decodeBody(r, &in); err != nil {
		writeErr(w, r, err)
		return
	}
	h.serve(w, r, func(ctx context.Context, c *console.Console) error {
		return c.SubmitModule(ctx, in)
	})
}

func (h *ConsoleHandler) CancelModuleForm(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(_ context.Context, c *console.Console) error {
		c.CancelModuleForm()
		return nil
	})
}

func (h *ConsoleHandler) DeleteModule(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, "id", func(ctx context.Context, c *console.Console, id string) error {
		return c.DeleteModule(ctx, id, confirmed(r))
	})
}

func (h *ConsoleHandler) OpenAssignmentCreate(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(_ context.Context, c *console.Console) error {
		return c.OpenAssignmentCreate()
	})
}

func (h *ConsoleHandler) OpenAssignmentEdit(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, "id", func(_ context.Context, c *console.Console, id string) error {
		return c.OpenAssignmentEdit(id)
	})
}

func (h *ConsoleHandler) SubmitAssignment(w http.ResponseWriter, r *http.Request) {
	var in domain.AssignmentInput
	if err := decodeBody(r, &in); err != nil {
		writeErr(w, r, err)
		return
	}
	h.serve(w, r, func(ctx context.Context, c *console.Console) error {
		return c.SubmitAssignment(ctx, in)
	})
}

func (h *ConsoleHandler) CancelAssignmentForm(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(_ context.Context, c *console.Console) error {
		c.CancelAssignmentForm()
		return nil
	})
}

func (h *ConsoleHandler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, "id", func(ctx context.Context, c *console.Console, id string) error {
		return c.DeleteAssignment(ctx, id, confirmed(r))
	})
}

func (h *ConsoleHandler) OpenSessionCreate(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(_ context.Context, c *console.Console) error {
		return c.OpenSessionCreate()
	})
}

func (h *ConsoleHandler) OpenSessionEdit(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, "id", func(_ context.Context, c *console.Console, id string) error {
		return c.OpenSessionEdit(id)
	})
}

func (h *ConsoleHandler) SubmitSession(w http.ResponseWriter, r *http.Request) {
	var in domain.SessionInput
	if err := decodeBody(r, &in); err != nil {
		writeErr(w, r, err)
		return
	}
	h.serve(w, r, func(ctx context.Context, c *console.Console) error {
		return c.SubmitSession(ctx, in)
	})
}

func (h *ConsoleHandler) CancelSessionForm(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(_ context.Context, c *console.Console) error {
		c.CancelSessionForm()
		return nil
	})
}

func (h *ConsoleHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, "id", func(ctx context.Context, c *console.Console, id string) error {
		return c.DeleteSession(ctx, id, confirmed(r))
	})
}

type sessionStatusRequest struct {
	Status domain.SessionStatus `json:"status"`
}

func (h *ConsoleHandler) UpdateSessionStatus(w http.ResponseWriter, r *http.Request) {
	var req sessionStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeErr(w, r, err)
		return
	}
	h.withID(w, r, "id", func(ctx context.Context, c *console.Console, id string) error {
		return c.UpdateSessionStatus(ctx, id, req.Status)
	})
}

func (h *ConsoleHandler) OpenGrading(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, "assignmentID", func(_ context.Context, c *console.Console, id string) error {
		return c.OpenGrading(id)
	})
}

type selectSubmissionRequest struct {
	SubmissionID string `json:"submissionId"`
}

func (h *ConsoleHandler) SelectSubmission(w http.ResponseWriter, r *http.Request) {
	var req selectSubmissionRequest
	if err := decodeBody(r, &req); err != nil {
		writeErr(w, r, err)
		return
	}
	h.serve(w, r, func(_ context.Context, c *console.Console) error {
		return c.SelectSubmission(req.SubmissionID)
	})
}

type saveGradeRequest struct {
	Grade    float64 `json:"grade"`
	Feedback string  `json:"feedback"`
}

func (h *ConsoleHandler) SaveGrade(w http.ResponseWriter, r *http.Request) {
	var req saveGradeRequest
	if err := decodeBody(r, &req); err != nil {
		writeErr(w, r, err)
		return
	}
	h.serve(w, r, func(ctx context.Context, c *console.Console) error {
		return c.SaveGrade(ctx, req.Grade, req.Feedback)
	})
}

func (h *ConsoleHandler) CloseGrading(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(_ context.Context, c *console.Console) error {
		c.CloseGrading()
		return nil
	})
}

type selectChatRequest struct {
	Key string `json:"key"`
}

func (h *ConsoleHandler) SelectChat(w http.ResponseWriter, r *http.Request) {
	var req selectChatRequest
	if err := decodeBody(r, &req); err != nil {
		writeErr(w, r, err)
		return
	}
	h.serve(w, r, func(_ context.Context, c *console.Console) error {
		return c.SelectChat(req.Key)
	})
}

type contentRequest struct {
	Content string `json:"content"`
}

func (h *ConsoleHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := decodeBody(r, &req); err != nil {
		writeErr(w, r, err)
		return
	}
	h.serve(w, r, func(ctx context.Context, c *console.Console) error {
		return c.SendMessage(ctx, req.Content)
	})
}

func (h *ConsoleHandler) CreateDiscussion(w http.ResponseWriter, r *http.Request) {
	var in domain.PostInput
	if err := decodeBody(r, &in); err != nil {
		writeErr(w, r, err)
		return
	}
	h.serve(w, r, func(ctx context.Context, c *console.Console) error {
		return c.CreateDiscussion(ctx, in)
	})
}

func (h *ConsoleHandler) ReplyToDiscussion(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := decodeBody(r, &req); err != nil {
		writeErr(w, r, err)
		return
	}
	h.withID(w, r, "id", func(ctx context.Context, c *console.Console, id string) error {
		return c.ReplyToDiscussion(ctx, id, req.Content)
	})
}

func (h *ConsoleHandler) TogglePin(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, "id", func(ctx context.Context, c *console.Console, id string) error {
		return c.TogglePin(ctx, id)
	})
}

func (h *ConsoleHandler) ToggleLock(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, "id", func(ctx context.Context, c *console.Console, id string) error {
		return c.ToggleLock(ctx, id)
	})
}

func (h *ConsoleHandler) withID(w http.ResponseWriter, r *http.Request, param string, op func(ctx context.Context, c *console.Console, id string) error) {
	id, err := parsePathParam(r, param)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	h.serve(w, r, func(ctx context.Context, c *console.Console) error {
		return op(ctx, c, id)
	})
}

func confirmed(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}
