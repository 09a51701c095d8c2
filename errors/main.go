package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/teamgen/cli/ui"
)

type TeamError error

var (
	ProjectCreateFailed    TeamError = fmt.Errorf("%s\nThe team project operation did not succeed, check the project in the browser.", ui.RedText("There was a problem creating the team project."))
	ProjectCreateTimeout   TeamError = fmt.Errorf("%s\nRun %s again once the project shows up.", ui.RedText("Timed out waiting for the team project to be created."), ui.Bold("teamgen pipeline"))
	QueueNotSpecified      TeamError = fmt.Errorf("%s\nRun %s to see the available pools.", ui.RedText("Specify an agent queue."), ui.Bold("teamgen pools"))
	AnswersFileNotFound    TeamError = fmt.Errorf("%s", ui.RedText("No stored answers found. Answers are saved after the first successful run."))
	InvalidApplicationName TeamError = fmt.Errorf("%s\nUse a name without %s or %s.", ui.RedText("The application name is not a folder name."), ui.Bold("/"), ui.Bold("\\"))
	UnknownApplicationType TeamError = fmt.Errorf("%s\nChoose one of %s.", ui.RedText("Unknown application type."), ui.Bold("asp, node, java"))
	UnknownTarget          TeamError = fmt.Errorf("%s\nChoose one of %s.", ui.RedText("Unknown deployment target."), ui.Bold("docker, paas"))
)

// MissingAnswer is returned for a required answer that was neither passed on
// the command line nor stored, when there is no terminal to prompt on.
func MissingAnswer(field string) TeamError {
	return fmt.Errorf("%s\nPass it on the command line or run %s in a terminal.", ui.RedText(fmt.Sprintf("No value for %s.", field)), ui.Bold("teamgen"))
}

type Code string

const (
	CodeNotFound             Code = "NotFound"
	CodeAuthenticationFailed Code = "AuthenticationFailed"
	CodeRequestFailed        Code = "RequestFailed"
)

// TeamServicesError is an error reported by, or derived from, a response of
// the team services REST API.
type TeamServicesError struct {
	Code       Code
	Message    string
	StatusCode int
}

func (e *TeamServicesError) Error() string {
	return e.Message
}

// Is matches on Code so callers can compare against the sentinels below.
func (e *TeamServicesError) Is(target error) bool {
	t, ok := target.(*TeamServicesError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

var (
	ErrNotFound             = &TeamServicesError{Code: CodeNotFound, Message: "not found"}
	ErrAuthenticationFailed = &TeamServicesError{
		Code:    CodeAuthenticationFailed,
		Message: "Unable to authenticate with Team Services. Check account name and personal access token.",
	}
	ErrRequestFailed = &TeamServicesError{Code: CodeRequestFailed, Message: "request failed"}
)

func NotFound(format string, args ...interface{}) error {
	return &TeamServicesError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: 404,
	}
}

// RequestFailed carries the status text of the failed response.
func RequestFailed(statusCode int, status string) error {
	return &TeamServicesError{
		Code:       CodeRequestFailed,
		Message:    status,
		StatusCode: statusCode,
	}
}

// EmptyResponse is returned when a successful response carries no entity.
func EmptyResponse(what string) error {
	return &TeamServicesError{
		Code:       CodeRequestFailed,
		Message:    fmt.Sprintf("Team Services returned no %s", what),
		StatusCode: 200,
	}
}

func IsNotFound(err error) bool {
	return stderrors.Is(err, ErrNotFound)
}

func IsAuthenticationFailed(err error) bool {
	return stderrors.Is(err, ErrAuthenticationFailed)
}
