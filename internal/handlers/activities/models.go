// internal/handlers/activities/models.go
package activities

import "activities-api/pkg/catalog"

// ActivityDetail is the wire form of one activity record. The activity name
// is the key of the enclosing map, not a field of the record.
type ActivityDetail struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MessageResponse acknowledges a successful roster mutation.
type MessageResponse struct {
	Message string `json:"message"`
}

func toDetail(a catalog.Activity) ActivityDetail {
	return ActivityDetail{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    a.Participants,
	}
}
