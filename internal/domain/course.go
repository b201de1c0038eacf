package domain

import "time"

type Course struct {
	ID              string    `json:"_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category,omitempty"`
	Instructor      Ref       `json:"instructor"`
	Price           float64   `json:"price"`
	Thumbnail       string    `json:"thumbnail,omitempty"`
	EnrollmentCount int       `json:"enrollmentCount"`
	IsPublished     bool      `json:"isPublished"`
	Tags            []string  `json:"tags,omitempty"`
	Modules         []Module  `json:"modules"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (c Course) GetID() string { return c.ID }

type ResourceType string

const (
	ResourcePDF   ResourceType = "pdf"
	ResourceDoc   ResourceType = "doc"
	ResourceLink  ResourceType = "link"
	ResourceVideo ResourceType = "video"
	ResourceOther ResourceType = "other"
)

type Resource struct {
	ID    string       `json:"_id,omitempty"`
	Title string       `json:"title"`
	URL   string       `json:"url"`
	Type  ResourceType `json:"type"`
}

// Module is embedded in its course document. Order drives display only.
type Module struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	VideoURL    string     `json:"videoUrl,omitempty"`
	Duration    int        `json:"duration"`
	Order       int        `json:"order"`
	Resources   []Resource `json:"resources"`
}

func (m Module) GetID() string { return m.ID }

type ModuleInput struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	VideoURL    string     `json:"videoUrl"`
	Duration    int        `json:"duration" validate:"gte=0"`
	Order       int        `json:"order"`
	Resources   []Resource `json:"resources"`
}

func NewModuleInput() ModuleInput {
	return ModuleInput{Order: 1, Resources: []Resource{}}
}

func ModuleInputFrom(m Module) ModuleInput {
	resources := m.Resources
	if resources == nil {
		resources = []Resource{}
	}
	return ModuleInput{
		Title:       m.Title,
		Description: m.Description,
		VideoURL:    m.VideoURL,
		Duration:    m.Duration,
		Order:       m.Order,
		Resources:   resources,
	}
}
