package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"rhive/internal/core/domain"
	"rhive/internal/core/ports"
)

type ProjectService struct {
	store ports.CollectionStore
}

func NewProjectService(store ports.CollectionStore) *ProjectService {
	return &ProjectService{store: store}
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.store.Projects(), nil
}

func (s *ProjectService) GetProject(ctx context.Context, id string) (domain.Project, error) {
	for _, project := range s.store.Projects() {
		if project.ID == id {
			return project, nil
		}
	}
	return domain.Project{}, domain.ErrProjectNotFound
}

func (s *ProjectService) CreateProject(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.StartDate == "" || input.EndDate == "" {
		return domain.Project{}, domain.ErrInvalidProjectPayload
	}

	projects := s.store.Projects()

	project := domain.Project{
		ID:        "p-" + uuid.NewString(),
		Code:      nextProjectCode(projects),
		Name:      name,
		OwnerID:   input.OwnerID,
		Status:    domain.ProjectStatusActive,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Tasks:     []domain.Task{},
	}
	domain.ComputeProgress(project.Tasks).Apply(&project)

	// Newest project goes first, matching how the dashboard lists them.
	next := append([]domain.Project{project}, projects...)
	if err := s.store.CommitProjects(ctx, next); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

func (s *ProjectService) UpdateProjectStatus(ctx context.Context, id string, status domain.ProjectStatus) (domain.Project, error) {
	if !status.Valid() {
		return domain.Project{}, domain.ErrInvalidStatus
	}

	projects := s.store.Projects()
	for i := range projects {
		if projects[i].ID != id {
			continue
		}
		// Status only; the derived fields depend on the task sequence alone.
		projects[i].Status = status
		if err := s.store.CommitProjects(ctx, projects); err != nil {
			return domain.Project{}, err
		}
		return projects[i], nil
	}
	return domain.Project{}, domain.ErrProjectNotFound
}

func (s *ProjectService) CreateTask(ctx context.Context, projectID string, input domain.CreateTaskInput) (domain.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || strings.TrimSpace(input.AssigneeID) == "" {
		return domain.Project{}, domain.ErrInvalidTaskPayload
	}
	if !userExists(s.store.Users(), input.AssigneeID) {
		return domain.Project{}, domain.ErrUserNotFound
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.Valid() {
		return domain.Project{}, domain.ErrInvalidTaskPayload
	}

	startDate := input.StartDate
	if startDate == "" {
		startDate = time.Now().Format("2006-01-02")
	}

	task := domain.Task{
		ID:          "t-" + uuid.NewString(),
		Name:        name,
		Description: input.Description,
		Priority:    priority,
		AssigneeID:  input.AssigneeID,
		Status:      domain.TaskStatusOpen,
		StartDate:   startDate,
		DueDate:     input.DueDate,
	}

	projects := s.store.Projects()
	for i := range projects {
		if projects[i].ID != projectID {
			continue
		}
		projects[i].Tasks = append(projects[i].Tasks, task)
		domain.ComputeProgress(projects[i].Tasks).Apply(&projects[i])
		if err := s.store.CommitProjects(ctx, projects); err != nil {
			return domain.Project{}, err
		}
		return projects[i], nil
	}
	return domain.Project{}, domain.ErrProjectNotFound
}

func (s *ProjectService) UpdateTaskStatus(ctx context.Context, projectID, taskID string, status domain.TaskStatus) (domain.Project, error) {
	if !status.Valid() {
		return domain.Project{}, domain.ErrInvalidStatus
	}

	projects := s.store.Projects()
	for i := range projects {
		if projects[i].ID != projectID {
			continue
		}
		for j := range projects[i].Tasks {
			if projects[i].Tasks[j].ID != taskID {
				continue
			}
			projects[i].Tasks[j].Status = status
			domain.ComputeProgress(projects[i].Tasks).Apply(&projects[i])
			if err := s.store.CommitProjects(ctx, projects); err != nil {
				return domain.Project{}, err
			}
			return projects[i], nil
		}
		return domain.Project{}, domain.ErrTaskNotFound
	}
	return domain.Project{}, domain.ErrProjectNotFound
}

// nextProjectCode picks the first PRO-NN code above every existing one, so
// codes stay unique within a profile.
func nextProjectCode(projects []domain.Project) string {
	max := 0
	for _, project := range projects {
		var n int
		if _, err := fmt.Sscanf(project.Code, "PRO-%d", &n); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("PRO-%02d", max+1)
}

func userExists(users []domain.User, id string) bool {
	for _, user := range users {
		if user.ID == id {
			return true
		}
	}
	return false
}

var _ ports.ProjectService = (*ProjectService)(nil)
