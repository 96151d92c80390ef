// Package actions implements the editor-triggered operations: the connection
// test on the settings document and the product fetch on a product document.
// Every outcome, including failures, is reported as a Notification.
package actions

type Status string

const (
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
	StatusInfo    Status = "info"
)

// Notification is the user-facing result of an action.
type Notification struct {
	Status      Status `json:"status"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (n Notification) OK() bool {
	return n.Status == StatusSuccess || n.Status == StatusInfo
}

// ActionStatus is the readiness hint shown next to an action's button.
type ActionStatus struct {
	Ready   bool   `json:"ready"`
	Busy    bool   `json:"busy"`
	Message string `json:"message"`
}

func warning(title, description string) Notification {
	return Notification{Status: StatusWarning, Title: title, Description: description}
}

func failure(title string, err error) Notification {
	description := "Unknown error occurred"
	if err != nil && err.Error() != "" {
		description = err.Error()
	}
	return Notification{Status: StatusError, Title: title, Description: description}
}

var inProgress = warning("Request In Progress", "This action is already running, please wait for it to finish")

// InProgress reports whether the action was rejected because the same
// target was already busy.
func (n Notification) InProgress() bool {
	return n == inProgress
}
