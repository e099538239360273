package handler

import (
	"net/http"
	"time"

	"secondbrain/dto"
	"secondbrain/middleware"
	"secondbrain/usecase"
	"secondbrain/utils"

	"github.com/gin-gonic/gin"
)

// CreateShareHandler mints or reuses a share link. Mounted behind
// auth: only the note's owner can publish it.
func CreateShareHandler(c *gin.Context, shareService *usecase.ShareService) {
	var req dto.CreateShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	userID := c.GetString("user_id")
	expiresIn := time.Duration(req.ExpiresInHours) * time.Hour

	token, err := shareService.CreateOrReuse(c.Request.Context(), userID, req.NoteID, expiresIn)
	if err != nil {
		utils.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ShareResponse{ShareToken: token})
}

// RevokeShareHandler deactivates a note's active share links.
func RevokeShareHandler(c *gin.Context, shareService *usecase.ShareService) {
	noteID := c.Param("noteId")
	userID := c.GetString("user_id")

	if err := shareService.Revoke(c.Request.Context(), userID, noteID); err != nil {
		utils.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Share revoked successfully"})
}

// ResolveShareHandler is the public, unauthenticated read path.
func ResolveShareHandler(c *gin.Context, shareService *usecase.ShareService) {
	token := c.Param("token")

	note, err := shareService.Resolve(c.Request.Context(), token)
	if err != nil {
		middleware.SharesResolvedTotal.WithLabelValues("miss").Inc()
		utils.FromError(c, err)
		return
	}

	middleware.SharesResolvedTotal.WithLabelValues("hit").Inc()
	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}
