package domain

// Task statuses reported by the earn service
const (
	TaskStatusNotStarted     = "NOT_STARTED"
	TaskStatusStarted        = "STARTED"
	TaskStatusReadyForClaim  = "READY_FOR_CLAIM"
	TaskStatusReadyForVerify = "READY_FOR_VERIFY"
	TaskStatusFinished       = "FINISHED"
)

// Task types with special handling
const (
	TaskTypeProgressTarget     = "PROGRESS_TARGET"
	TaskTypeProgressTask       = "PROGRESS_TASK"
	TaskTypePartnerIntegration = "PARTNER_INTEGRATION"
)

// ValidationKeyword marks tasks verified by submitting a keyword
const ValidationKeyword = "KEYWORD"

// Section types of the task tree
const (
	SectionHighlights    = "HIGHLIGHTS"
	SectionWeeklyRoutine = "WEEKLY_ROUTINE"
	SectionDefault       = "DEFAULT"
)

// Task is one earn task. Unknown statuses and types are carried verbatim.
type Task struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Type           string `json:"type"`
	Status         string `json:"status"`
	ValidationType string `json:"validationType"`
	SubTasks       []Task `json:"subTasks"`
}

// TaskSubSection groups tasks inside a DEFAULT section
type TaskSubSection struct {
	Title string `json:"title"`
	Tasks []Task `json:"tasks"`
}

// TaskSection is a top-level node of GET /api/v1/tasks
type TaskSection struct {
	SectionType string           `json:"sectionType"`
	Tasks       []Task           `json:"tasks"`
	SubSections []TaskSubSection `json:"subSections"`
}
