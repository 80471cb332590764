package store

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"rhive/internal/core/domain"
)

// Canonical seed data for a fresh profile. The task lists are fixed rather
// than randomized so the derived fields are stable across fresh installs.

const seedAdminCredential = "admin123"

func seedAdmin() domain.User {
	return domain.User{
		ID:           "admin",
		Username:     "admin",
		Email:        "admin@rhiveconstruction.com",
		Name:         "Administrator",
		Avatar:       "https://picsum.photos/200/200?random=99",
		PasswordHash: mustHash(seedAdminCredential),
		IsFirstLogin: false,
		Role:         domain.RoleAdmin,
	}
}

func seedUsers() []domain.User {
	users := []domain.User{seedAdmin()}
	for i, seed := range []struct {
		username string
		name     string
	}{
		{"michael.r", "Michael Rob"},
		{"kara.r", "Kara Robins"},
		{"victor.v", "Victor Viller"},
		{"van.v", "Vanessa Pol"},
		{"sheena.l", "Sheena Les"},
		{"james.g", "James Gime"},
		{"maureen.g", "Maureen G"},
	} {
		users = append(users, domain.User{
			ID:           fmt.Sprintf("u%d", i+1),
			Username:     seed.username,
			Email:        seed.username + "@rhiveconstruction.com",
			Name:         seed.name,
			Avatar:       fmt.Sprintf("https://picsum.photos/200/200?random=%d", i+1),
			PasswordHash: mustHash(domain.DefaultCredential),
			IsFirstLogin: true,
			Role:         domain.RoleUser,
		})
	}
	return users
}

func seedProjects(users []domain.User) []domain.Project {
	projects := []domain.Project{
		{ID: "1", Code: "PRO-01", Name: "Event Planner App", OwnerID: findSeedUser(users, "kara"), Status: domain.ProjectStatusActive, StartDate: "2024-06-01", EndDate: "2024-09-01"},
		{ID: "2", Code: "PRO-02", Name: "Website Redesign", OwnerID: findSeedUser(users, "van"), Status: domain.ProjectStatusInTesting, StartDate: "2024-08-15", EndDate: "2024-10-30"},
		{ID: "3", Code: "PRO-03", Name: "Q4 Marketing Strategy", OwnerID: findSeedUser(users, "victor"), Status: domain.ProjectStatusOnTrack, StartDate: "2024-07-01", EndDate: "2024-12-31"},
		{ID: "4", Code: "PRO-04", Name: "Mobile API Integration", OwnerID: findSeedUser(users, "james"), Status: domain.ProjectStatusInTesting, StartDate: "2024-05-10", EndDate: "2024-06-20"},
		{ID: "5", Code: "PRO-05", Name: "Customer Feedback Loop", OwnerID: findSeedUser(users, "van"), Status: domain.ProjectStatusDelayed, StartDate: "2024-06-15", EndDate: "2024-08-15"},
		{ID: "6", Code: "PRO-06", Name: "Internal Audit", OwnerID: findSeedUser(users, "sheena"), Status: domain.ProjectStatusActive, StartDate: "2024-09-01", EndDate: "2024-11-01"},
		{ID: "7", Code: "PRO-07", Name: "New Hire Onboarding", OwnerID: findSeedUser(users, "michael"), Status: domain.ProjectStatusOnTrack, StartDate: "2024-01-01", EndDate: "2024-12-31"},
		{ID: "8", Code: "PRO-08", Name: "AI Research Phase 1", OwnerID: findSeedUser(users, "kara"), Status: domain.ProjectStatusInProgress, StartDate: "2024-08-01", EndDate: "2025-02-01"},
		{ID: "9", Code: "PRO-09", Name: "Database Migration", OwnerID: findSeedUser(users, "maureen"), Status: domain.ProjectStatusDelayed, StartDate: "2024-03-01", EndDate: "2024-07-30"},
		{ID: "10", Code: "PRO-10", Name: "Security Compliance", OwnerID: findSeedUser(users, "maureen"), Status: domain.ProjectStatusOnTrack, StartDate: "2024-02-01", EndDate: "2024-10-01"},
	}

	taskCounts := []int{5, 3, 8, 2, 4, 6, 3, 5, 7, 4}
	for i := range projects {
		projects[i].Tasks = seedTasks(projects[i].ID, projects[i].OwnerID, taskCounts[i])
		domain.ComputeProgress(projects[i].Tasks).Apply(&projects[i])
	}
	return projects
}

var seedTaskNames = []string{
	"Review Q3 Requirements", "Update User Flow", "Fix Mobile Padding",
	"Database Schema Sync", "Client Meeting Prep", "Deploy to Staging",
	"Write Integration Tests", "Accessibility Audit", "Update API Docs",
	"Email Automation Setup",
}

func seedTasks(projectID, assigneeID string, count int) []domain.Task {
	statuses := []domain.TaskStatus{
		domain.TaskStatusOpen, domain.TaskStatusInProgress,
		domain.TaskStatusDone, domain.TaskStatusOnHold,
	}
	priorities := []domain.TaskPriority{
		domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh,
	}

	tasks := make([]domain.Task, 0, count)
	for i := 0; i < count; i++ {
		tasks = append(tasks, domain.Task{
			ID:          fmt.Sprintf("t-%s-%d", projectID, i+1),
			Name:        seedTaskNames[i%len(seedTaskNames)],
			Description: "Detailed description of the task requirements and acceptance criteria should go here.",
			Priority:    priorities[i%len(priorities)],
			AssigneeID:  assigneeID,
			Status:      statuses[i%len(statuses)],
			StartDate:   "2025-02-12",
			DueDate:     "2025-02-28",
		})
	}
	return tasks
}

func seedChats(users []domain.User) []domain.ChatSession {
	michael := findSeedUser(users, "michael")
	kara := findSeedUser(users, "kara")
	now := time.Now().UTC()
	return []domain.ChatSession{
		{
			ID:             "c1",
			Name:           "Project Alpha Team",
			Type:           domain.ChatTypeGroup,
			ParticipantIDs: []string{michael, kara},
			Unread:         3,
			Messages: []domain.ChatMessage{
				{ID: "1", SenderID: michael, SenderName: userName(users, michael), Text: "Hey everyone, check the latest designs.", Timestamp: now},
				{ID: "2", SenderID: kara, SenderName: userName(users, kara), Text: "Looks great! Approved.", Timestamp: now},
			},
		},
	}
}

func userName(users []domain.User, id string) string {
	for _, user := range users {
		if user.ID == id {
			return user.Name
		}
	}
	return ""
}

// findSeedUser matches by username fragment, defaulting to the first
// non-admin user so seed projects never end up owned by the admin.
func findSeedUser(users []domain.User, namePart string) string {
	for _, user := range users {
		if user.Role == domain.RoleAdmin {
			continue
		}
		if strings.Contains(user.Username, namePart) {
			return user.ID
		}
	}
	for _, user := range users {
		if user.Role != domain.RoleAdmin {
			return user.ID
		}
	}
	return ""
}

func mustHash(plain string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}
