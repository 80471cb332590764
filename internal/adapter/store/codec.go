package store

import (
	"time"

	"rhive/internal/core/domain"
)

// Serialized shapes of the three collections. Field names match what the
// presentation layer historically stored, so an existing profile loads
// unchanged.

type userRecord struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Avatar       string `json:"avatar"`
	Password     string `json:"password,omitempty"`
	IsFirstLogin bool   `json:"isFirstLogin"`
	Role         string `json:"role"`
}

type taskRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	AssigneeID  string `json:"assigneeId"`
	Status      string `json:"status"`
	StartDate   string `json:"startDate,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
}

type projectRecord struct {
	ID             string       `json:"id"`
	Code           string       `json:"projectId"`
	Name           string       `json:"name"`
	Percent        int          `json:"percent"`
	OwnerID        string       `json:"ownerId"`
	Status         string       `json:"status"`
	TasksCompleted int          `json:"tasksCompleted"`
	TasksTotal     int          `json:"tasksTotal"`
	StartDate      string       `json:"startDate"`
	EndDate        string       `json:"endDate"`
	Tasks          []taskRecord `json:"tasks"`
}

type messageRecord struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

type sessionRecord struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Participants []string        `json:"participants"`
	Unread       int             `json:"unread"`
	Messages     []messageRecord `json:"messages"`
}

func encodeUsers(users []domain.User) []userRecord {
	records := make([]userRecord, 0, len(users))
	for _, user := range users {
		records = append(records, userRecord{
			ID:           user.ID,
			Username:     user.Username,
			Email:        user.Email,
			Name:         user.Name,
			Avatar:       user.Avatar,
			Password:     user.PasswordHash,
			IsFirstLogin: user.IsFirstLogin,
			Role:         string(user.Role),
		})
	}
	return records
}

func decodeUsers(records []userRecord) []domain.User {
	users := make([]domain.User, 0, len(records))
	for _, record := range records {
		role := domain.Role(record.Role)
		if role == "" {
			role = domain.RoleUser
		}
		users = append(users, domain.User{
			ID:           record.ID,
			Username:     record.Username,
			Email:        record.Email,
			Name:         record.Name,
			Avatar:       record.Avatar,
			PasswordHash: record.Password,
			IsFirstLogin: record.IsFirstLogin,
			Role:         role,
		})
	}
	return users
}

func encodeProjects(projects []domain.Project) []projectRecord {
	records := make([]projectRecord, 0, len(projects))
	for _, project := range projects {
		tasks := make([]taskRecord, 0, len(project.Tasks))
		for _, task := range project.Tasks {
			tasks = append(tasks, taskRecord{
				ID:          task.ID,
				Name:        task.Name,
				Description: task.Description,
				Priority:    string(task.Priority),
				AssigneeID:  task.AssigneeID,
				Status:      string(task.Status),
				StartDate:   task.StartDate,
				DueDate:     task.DueDate,
			})
		}
		records = append(records, projectRecord{
			ID:             project.ID,
			Code:           project.Code,
			Name:           project.Name,
			Percent:        project.Percent,
			OwnerID:        project.OwnerID,
			Status:         string(project.Status),
			TasksCompleted: project.TasksCompleted,
			TasksTotal:     project.TasksTotal,
			StartDate:      project.StartDate,
			EndDate:        project.EndDate,
			Tasks:          tasks,
		})
	}
	return records
}

func decodeProjects(records []projectRecord) []domain.Project {
	projects := make([]domain.Project, 0, len(records))
	for _, record := range records {
		tasks := make([]domain.Task, 0, len(record.Tasks))
		for _, task := range record.Tasks {
			tasks = append(tasks, domain.Task{
				ID:          task.ID,
				Name:        task.Name,
				Description: task.Description,
				Priority:    domain.TaskPriority(task.Priority),
				AssigneeID:  task.AssigneeID,
				Status:      domain.TaskStatus(task.Status),
				StartDate:   task.StartDate,
				DueDate:     task.DueDate,
			})
		}
		projects = append(projects, domain.Project{
			ID:             record.ID,
			Code:           record.Code,
			Name:           record.Name,
			Percent:        record.Percent,
			OwnerID:        record.OwnerID,
			Status:         domain.ProjectStatus(record.Status),
			TasksCompleted: record.TasksCompleted,
			TasksTotal:     record.TasksTotal,
			StartDate:      record.StartDate,
			EndDate:        record.EndDate,
			Tasks:          tasks,
		})
	}
	return projects
}

func encodeSessions(chats []domain.ChatSession) []sessionRecord {
	records := make([]sessionRecord, 0, len(chats))
	for _, session := range chats {
		messages := make([]messageRecord, 0, len(session.Messages))
		for _, message := range session.Messages {
			messages = append(messages, messageRecord{
				ID:         message.ID,
				SenderID:   message.SenderID,
				SenderName: message.SenderName,
				Text:       message.Text,
				Timestamp:  message.Timestamp,
			})
		}
		participants := make([]string, 0, len(session.ParticipantIDs))
		participants = append(participants, session.ParticipantIDs...)
		records = append(records, sessionRecord{
			ID:           session.ID,
			Name:         session.Name,
			Type:         string(session.Type),
			Participants: participants,
			Unread:       session.Unread,
			Messages:     messages,
		})
	}
	return records
}

func decodeSessions(records []sessionRecord) []domain.ChatSession {
	chats := make([]domain.ChatSession, 0, len(records))
	for _, record := range records {
		messages := make([]domain.ChatMessage, 0, len(record.Messages))
		for _, message := range record.Messages {
			messages = append(messages, domain.ChatMessage{
				ID:         message.ID,
				SenderID:   message.SenderID,
				SenderName: message.SenderName,
				Text:       message.Text,
				Timestamp:  message.Timestamp,
			})
		}
		participants := make([]string, 0, len(record.Participants))
		participants = append(participants, record.Participants...)
		chats = append(chats, domain.ChatSession{
			ID:             record.ID,
			Name:           record.Name,
			Type:           domain.ChatType(record.Type),
			ParticipantIDs: participants,
			Unread:         record.Unread,
			Messages:       messages,
		})
	}
	return chats
}
