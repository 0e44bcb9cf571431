package orchestrator

import "errors"

var (
	// ErrOutputExists is returned when an output file exists, overwriting is
	// disabled and no Confirmer is configured.
	ErrOutputExists = errors.New("orchestrator: output exists and overwrite is disabled")

	// ErrOverwriteDeclined is returned when the Confirmer answers no.
	ErrOverwriteDeclined = errors.New("orchestrator: overwrite declined")

	// ErrOutputStale is returned in check mode when the output would change.
	ErrOutputStale = errors.New("orchestrator: output is out of date")
)
