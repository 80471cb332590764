package mapper

import (
	"rhive/internal/adapter/http/dto"
	"rhive/internal/core/domain"
)

func ToProjectItems(projects []domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToProjectItem(project))
	}
	return items
}

func ToProjectItem(project domain.Project) dto.ProjectItem {
	tasks := make([]dto.TaskItem, 0, len(project.Tasks))
	for _, task := range project.Tasks {
		tasks = append(tasks, ToTaskItem(task))
	}

	return dto.ProjectItem{
		ID:             project.ID,
		Code:           project.Code,
		Name:           project.Name,
		OwnerID:        project.OwnerID,
		Status:         string(project.Status),
		StartDate:      project.StartDate,
		EndDate:        project.EndDate,
		TasksTotal:     project.TasksTotal,
		TasksCompleted: project.TasksCompleted,
		Percent:        project.Percent,
		Tasks:          tasks,
	}
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		Priority:    string(task.Priority),
		AssigneeID:  task.AssigneeID,
		Status:      string(task.Status),
		StartDate:   task.StartDate,
		DueDate:     task.DueDate,
	}
}
