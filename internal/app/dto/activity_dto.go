package dto

type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
	SpotsLeft       int      `json:"spots_left"`
}

// ActivityList is keyed by activity name.
type ActivityList map[string]Activity

type EmailQuery struct {
	Email string `form:"email" binding:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
