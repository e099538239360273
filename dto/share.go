package dto

type CreateShareRequest struct {
	NoteID string `json:"noteId" binding:"required"`
	// Optional time-to-live for the link, in hours. Zero means the
	// share never expires.
	ExpiresInHours int `json:"expiresInHours" binding:"omitempty,min=1"`
}

type ShareResponse struct {
	ShareToken string `json:"shareToken"`
}
