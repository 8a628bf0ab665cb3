package commands

import (
	"tenancy-service/internal/infra"
)

// notFoundAs replaces a repository not-found with the domain error the
// caller reports. Other errors pass through.
func notFoundAs(err, target error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return target
	}
	return err
}

func conflictAs(err, target error) error {
	if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
		return target
	}
	return err
}
