package domain

import "math"

// Progress is the derived state of a project's task sequence.
type Progress struct {
	TasksTotal     int
	TasksCompleted int
	Percent        int
}

// ComputeProgress recomputes the derived fields from a task sequence. It is
// pure and must be invoked by every operation that adds a task or changes a
// task's status. An empty sequence short-circuits to all zeroes before any
// division happens. Percent rounds half up: 1/8 done is 13, not 12.
func ComputeProgress(tasks []Task) Progress {
	total := len(tasks)
	if total == 0 {
		return Progress{}
	}

	completed := 0
	for _, task := range tasks {
		if task.Status == TaskStatusDone {
			completed++
		}
	}

	return Progress{
		TasksTotal:     total,
		TasksCompleted: completed,
		Percent:        int(math.Round(100 * float64(completed) / float64(total))),
	}
}

// Apply overwrites the derived fields on a project.
func (p Progress) Apply(project *Project) {
	project.TasksTotal = p.TasksTotal
	project.TasksCompleted = p.TasksCompleted
	project.Percent = p.Percent
}
