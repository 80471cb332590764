package domain

type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "Open"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusOnHold     TaskStatus = "On Hold"
	TaskStatusDone       TaskStatus = "Done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusOnHold, TaskStatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type ProjectStatus string

const (
	ProjectStatusActive     ProjectStatus = "Active"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusOnTrack    ProjectStatus = "On Track"
	ProjectStatusDelayed    ProjectStatus = "Delayed"
	ProjectStatusInTesting  ProjectStatus = "In Testing"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusInProgress, ProjectStatusOnTrack,
		ProjectStatusDelayed, ProjectStatusInTesting:
		return true
	}
	return false
}

// Dates are calendar dates with no time component, kept in 2006-01-02 form.
type Task struct {
	ID          string
	Name        string
	Description string
	Priority    TaskPriority
	AssigneeID  string
	Status      TaskStatus
	StartDate   string
	DueDate     string
}

// Project owns its task sequence exclusively. TasksTotal, TasksCompleted and
// Percent are derived from the task sequence via ComputeProgress and are
// never set directly by any operation.
type Project struct {
	ID             string
	Code           string
	Name           string
	OwnerID        string
	Status         ProjectStatus
	StartDate      string
	EndDate        string
	Tasks          []Task
	TasksTotal     int
	TasksCompleted int
	Percent        int
}

type CreateProjectInput struct {
	Name      string
	OwnerID   string
	StartDate string
	EndDate   string
}

type CreateTaskInput struct {
	Name        string
	Description string
	Priority    TaskPriority
	AssigneeID  string
	StartDate   string
	DueDate     string
}
