package importer

import "fmt"

// ImporterError reports a result file missing from a job directory.
type ImporterError struct {
	File   string
	JobDir string
}

func (e *ImporterError) Error() string {
	return fmt.Sprintf("result file %q not found in job directory (%s)", e.File, e.JobDir)
}
