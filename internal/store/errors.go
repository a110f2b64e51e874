package store

import "fmt"

// MissingArtifactError reports that a stage's required upstream artifacts
// are absent from the ContextStore.
type MissingArtifactError struct {
	Stage       string
	MissingKeys []string
}

func (e *MissingArtifactError) Error() string {
	return fmt.Sprintf("stage %s: missing artifacts: %v", e.Stage, e.MissingKeys)
}
