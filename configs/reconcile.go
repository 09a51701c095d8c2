package configs

import "github.com/teamgen/cli/entity"

// Reconcile returns first if it is set, else second, else the fallback. The
// zero value counts as unset, so an explicit empty string cannot override a
// later source.
func Reconcile[T comparable](first, second T, fallback ...T) T {
	var zero T
	if first != zero {
		return first
	}
	if second != zero {
		return second
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return zero
}

func DefaultPortMapping(appType string) string {
	switch appType {
	case entity.TypeJava:
		return "8080:8080"
	case entity.TypeNode:
		return "3000:3000"
	default:
		return "80:80"
	}
}

// MergeAnswers resolves every field from the prompted answers, then the
// command line, then the stored answers. Nil sources are treated as empty.
// The port mapping is never taken from stored answers, it falls back to the
// default of the merged application type.
func MergeAnswers(prompted, cmdLine, stored *entity.Answers) *entity.Answers {
	if prompted == nil {
		prompted = &entity.Answers{}
	}
	if cmdLine == nil {
		cmdLine = &entity.Answers{}
	}
	if stored == nil {
		stored = &entity.Answers{}
	}

	merged := &entity.Answers{
		TFS:                    Reconcile(prompted.TFS, cmdLine.TFS, stored.TFS),
		PAT:                    Reconcile(prompted.PAT, cmdLine.PAT, stored.PAT),
		Type:                   Reconcile(prompted.Type, cmdLine.Type, stored.Type),
		ApplicationName:        Reconcile(prompted.ApplicationName, cmdLine.ApplicationName, stored.ApplicationName),
		GroupID:                Reconcile(prompted.GroupID, cmdLine.GroupID, stored.GroupID),
		InstallDep:             Reconcile(prompted.InstallDep, cmdLine.InstallDep, Reconcile(stored.InstallDep, "false")),
		Queue:                  Reconcile(prompted.Queue, cmdLine.Queue, stored.Queue),
		Target:                 Reconcile(prompted.Target, cmdLine.Target, stored.Target),
		AzureSub:               Reconcile(prompted.AzureSub, cmdLine.AzureSub, stored.AzureSub),
		AzureSubID:             Reconcile(prompted.AzureSubID, cmdLine.AzureSubID, stored.AzureSubID),
		TenantID:               Reconcile(prompted.TenantID, cmdLine.TenantID, stored.TenantID),
		ServicePrincipalID:     Reconcile(prompted.ServicePrincipalID, cmdLine.ServicePrincipalID, stored.ServicePrincipalID),
		ServicePrincipalKey:    Reconcile(prompted.ServicePrincipalKey, cmdLine.ServicePrincipalKey, stored.ServicePrincipalKey),
		DockerHost:             Reconcile(prompted.DockerHost, cmdLine.DockerHost, stored.DockerHost),
		DockerCertPath:         Reconcile(prompted.DockerCertPath, cmdLine.DockerCertPath, stored.DockerCertPath),
		DockerRegistryID:       Reconcile(prompted.DockerRegistryID, cmdLine.DockerRegistryID, stored.DockerRegistryID),
		DockerRegistryPassword: Reconcile(prompted.DockerRegistryPassword, cmdLine.DockerRegistryPassword, stored.DockerRegistryPassword),
		DockerRegistryEmail:    Reconcile(prompted.DockerRegistryEmail, cmdLine.DockerRegistryEmail, stored.DockerRegistryEmail),
	}
	merged.DockerPorts = Reconcile(prompted.DockerPorts, cmdLine.DockerPorts, DefaultPortMapping(merged.Type))
	return merged
}
