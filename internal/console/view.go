package console

import (
	"sort"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/chat"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
)

// View is a point-in-time copy of everything the console renders.
type View struct {
	Courses          []domain.Course                                     `json:"courses"`
	NoCourseSelected bool                                                `json:"noCourseSelected"`
	SelectedCourse   *domain.Course                                      `json:"selectedCourse,omitempty"`
	Tab              Tab                                                 `json:"tab"`
	Modules          []domain.Module                                     `json:"modules"`
	Assignments      []domain.Assignment                                 `json:"assignments"`
	Sessions         []domain.LiveSession                                `json:"sessions"`
	Batches          []domain.Batch                                      `json:"batches"`
	Discussions      []domain.ForumPost                                  `json:"discussions"`
	Chats            []chat.Thread                                       `json:"chats"`
	SelectedChat     *chat.Thread                                        `json:"selectedChat,omitempty"`
	ModuleForm       FormView[domain.Module, domain.ModuleInput]         `json:"moduleForm"`
	AssignmentForm   FormView[domain.Assignment, domain.AssignmentInput] `json:"assignmentForm"`
	SessionForm      FormView[domain.LiveSession, domain.SessionInput]   `json:"sessionForm"`
	Grading          *GradingView                                        `json:"grading,omitempty"`
	Alert            string                                              `json:"alert,omitempty"`
	LoadErrors       map[string]string                                   `json:"loadErrors,omitempty"`
}

type GradingView struct {
	Assignment         domain.Assignment  `json:"assignment"`
	SelectedSubmission *domain.Submission `json:"selectedSubmission,omitempty"`
	Grade              float64            `json:"grade"`
	Feedback           string             `json:"feedback"`
}

func (c *Console) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		Courses:          append([]domain.Course{}, c.courses...),
		NoCourseSelected: c.selected == nil,
		Tab:              c.tab,
		Modules:          sortedModules(c.modules.List()),
		Assignments:      c.assignments.List(),
		Sessions:         c.sessions.List(),
		Batches:          c.batches.List(),
		Discussions:      c.discussions.List(),
		Chats:            []chat.Thread{},
		ModuleForm:       c.moduleForm.Snapshot(),
		AssignmentForm:   c.assignmentForm.Snapshot(),
		SessionForm:      c.sessionForm.Snapshot(),
		Alert:            c.alert,
	}

	if c.selected != nil {
		selected := *c.selected
		selected.Modules = v.Modules
		v.SelectedCourse = &selected
		v.Chats = chat.ForCourse(c.threads, selected.ID)
		if c.chatKey != "" {
			if t, ok := chat.Find(v.Chats, c.chatKey); ok {
				v.SelectedChat = &t
			}
		}
	}

	if c.grading != nil {
		if a, ok := c.assignments.Get(c.grading.assignmentID); ok {
			gv := &GradingView{Assignment: a, Grade: c.grading.grade, Feedback: c.grading.feedback}
			if sub, ok := a.Submission(c.grading.submissionID); ok {
				gv.SelectedSubmission = &sub
			}
			v.Grading = gv
		}
	}

	if len(c.loadErrors) > 0 {
		v.LoadErrors = make(map[string]string, len(c.loadErrors))
		for k, msg := range c.loadErrors {
			v.LoadErrors[k] = msg
		}
	}
	return v
}

func sortedModules(modules []domain.Module) []domain.Module {
	sort.SliceStable(modules, func(i, j int) bool {
		return modules[i].Order < modules[j].Order
	})
	return modules
}
