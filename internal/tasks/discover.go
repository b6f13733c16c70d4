package tasks

import "github.com/osse101/BlumBot_Go/internal/domain"

// Discover flattens the task tree into one ordered list.
//
//   - HIGHLIGHTS: each task's sub-tasks, then the task itself unless it is a partner integration
//   - WEEKLY_ROUTINE: sub-tasks only
//   - DEFAULT: every task of every sub-section
//
// Other section types are ignored. Sub-tasks are copied without their own sub-tasks.
func Discover(sections []domain.TaskSection) []domain.Task {
	var out []domain.Task

	for _, section := range sections {
		switch section.SectionType {
		case domain.SectionHighlights:
			for _, task := range section.Tasks {
				out = appendLeaves(out, task.SubTasks)
				if task.Type != domain.TaskTypePartnerIntegration {
					out = append(out, task)
				}
			}
		case domain.SectionWeeklyRoutine:
			for _, task := range section.Tasks {
				out = appendLeaves(out, task.SubTasks)
			}
		case domain.SectionDefault:
			for _, sub := range section.SubSections {
				out = append(out, sub.Tasks...)
			}
		}
	}

	return out
}

func appendLeaves(out []domain.Task, subTasks []domain.Task) []domain.Task {
	for _, sub := range subTasks {
		sub.SubTasks = nil
		out = append(out, sub)
	}
	return out
}
