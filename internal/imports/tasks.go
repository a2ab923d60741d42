package imports

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// TaskImportFilePurge removes archived import files past the retention window.
const TaskImportFilePurge = "imports.file_purge"

// FilePurgePayload parameterizes one purge run.
type FilePurgePayload struct {
	// Retention is a Go duration string; files older than now-Retention go.
	Retention string `json:"retention"`
}

// NewFilePurgeTask builds the purge task for the scheduler.
func NewFilePurgeTask(payload FilePurgePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskImportFilePurge, data), nil
}

// ParseFilePurgePayload decodes the purge task payload.
func ParseFilePurgePayload(task *asynq.Task) (FilePurgePayload, error) {
	var payload FilePurgePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return FilePurgePayload{}, err
	}
	return payload, nil
}
