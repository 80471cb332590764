package dto

type TaskItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	AssigneeID  string `json:"assignee_id"`
	Status      string `json:"status"`
	StartDate   string `json:"start_date,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
}

type ProjectItem struct {
	ID             string     `json:"id"`
	Code           string     `json:"code"`
	Name           string     `json:"name"`
	OwnerID        string     `json:"owner_id"`
	Status         string     `json:"status"`
	StartDate      string     `json:"start_date"`
	EndDate        string     `json:"end_date"`
	TasksTotal     int        `json:"tasks_total"`
	TasksCompleted int        `json:"tasks_completed"`
	Percent        int        `json:"percent"`
	Tasks          []TaskItem `json:"tasks"`
}

type CreateProjectRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
}

type UpdateProjectStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Active 'In Progress' 'On Track' Delayed 'In Testing'"`
}

type CreateTaskRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	AssigneeID  string  `json:"assignee_id" binding:"required"`
	StartDate   *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Open 'In Progress' 'On Hold' Done"`
}
