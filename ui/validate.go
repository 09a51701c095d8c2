package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/teamgen/cli/uuid"
)

// Required fails with msg when input is empty.
func Required(msg string) func(string) error {
	return func(input string) error {
		if strings.TrimSpace(input) == "" {
			return errors.New(msg)
		}
		return nil
	}
}

// GUID is Required plus a check that input parses as a GUID.
func GUID(msg string) func(string) error {
	required := Required(msg)
	return func(input string) error {
		if err := required(input); err != nil {
			return err
		}
		if !uuid.IsValidUUID(strings.TrimSpace(input)) {
			return fmt.Errorf("%s is not a valid GUID", input)
		}
		return nil
	}
}

func ValidateTFS(input string) error {
	if err := Required("You must provide your TFS URL including collection")(input); err != nil {
		return err
	}
	if !strings.HasPrefix(input, "http://") && !strings.HasPrefix(input, "https://") {
		return errors.New("Your TFS URL must start with http:// or https://")
	}
	return nil
}

// ValidateApplicationName also rejects names that would leave the folder the
// application is generated in.
func ValidateApplicationName(input string) error {
	if err := Required("You must provide a name for your application")(input); err != nil {
		return err
	}
	if input == "." || input == ".." || strings.ContainsAny(input, `/\`) {
		return errors.New("Your application name cannot contain / or \\")
	}
	return nil
}

var (
	ValidateGroupID               = Required("You must provide a Group ID")
	ValidatePersonalAccessToken   = Required("You must provide a Personal Access Token")
	ValidatePortMapping           = Required("You must provide a Port Mapping")
	ValidateAzureSub              = Required("You must provide an Azure Subscription Name")
	ValidateAzureSubID            = GUID("You must provide an Azure Subscription ID")
	ValidateAzureTenantID         = GUID("You must provide an Azure Tenant ID")
	ValidateServicePrincipalID    = GUID("You must provide a Service Principal ID")
	ValidateServicePrincipalKey   = Required("You must provide a Service Principal Key")
	ValidateDockerHost            = Required("You must provide a Docker Host URL")
	ValidateDockerCertificatePath = Required("You must provide a Docker Certificate Path")
	ValidateDockerHubID           = Required("You must provide a Docker Hub ID")
	ValidateDockerHubPassword     = Required("You must provide a Docker Hub Password")
	ValidateDockerHubEmail        = Required("You must provide a Docker Hub Email")
)
