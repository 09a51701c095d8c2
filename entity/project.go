package entity

// Account addresses a Team Services account (or TFS collection) together with
// the encoded personal access token used to talk to it.
type Account struct {
	URL   string
	Token string
}

type TeamProject struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	State       string `json:"state,omitempty"`
}

type CreateProjectRequest struct {
	Name        string // Required
	Description string // Optional
}

// Operation is a long running server-side job, such as project creation.
type Operation struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status,omitempty"`
	URL    string `json:"url,omitempty"`
}

const (
	OperationNotSet     = "notSet"
	OperationQueued     = "queued"
	OperationInProgress = "inProgress"
	OperationCancelled  = "cancelled"
	OperationSucceeded  = "succeeded"
	OperationFailed     = "failed"
)

func (o *Operation) Done() bool {
	switch o.Status {
	case OperationSucceeded, OperationFailed, OperationCancelled:
		return true
	}
	return false
}
