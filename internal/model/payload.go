package model

import "github.com/google/uuid"

// Payload keys stored with every indexed task point.
const (
	PayloadTaskID             = "task_id"
	PayloadTaskText           = "task_text"
	PayloadProjectID          = "project_id"
	PayloadProjectName        = "project_name"
	PayloadProjectDescription = "project_description"
)

// pointNamespace is the RFC 4122 URL namespace.
var pointNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// PointID maps a catalog task id to the deterministic UUID used as its vector point id.
func PointID(taskID string) string {
	return uuid.NewSHA1(pointNamespace, []byte(taskID)).String()
}

// Payload returns the vector point payload for t.
func (t CatalogTask) Payload() map[string]any {
	return map[string]any{
		PayloadTaskID:             t.TaskID,
		PayloadTaskText:           t.TaskText,
		PayloadProjectID:          t.ProjectID,
		PayloadProjectName:        t.ProjectName,
		PayloadProjectDescription: t.ProjectDescription,
	}
}

// RetrievedTaskFromPayload builds a hit from a point payload. ok is false
// when the payload has no task id.
func RetrievedTaskFromPayload(payload map[string]any, score float64) (RetrievedTask, bool) {
	taskID := payloadString(payload, PayloadTaskID)
	if taskID == "" {
		return RetrievedTask{}, false
	}
	return RetrievedTask{
		TaskID:             taskID,
		TaskText:           payloadString(payload, PayloadTaskText),
		ProjectID:          payloadString(payload, PayloadProjectID),
		ProjectName:        payloadString(payload, PayloadProjectName),
		ProjectDescription: payloadString(payload, PayloadProjectDescription),
		RawScore:           score,
	}, true
}

func payloadString(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}
