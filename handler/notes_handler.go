package handler

import (
	"net/http"

	"secondbrain/dto"
	"secondbrain/middleware"
	"secondbrain/model"
	"secondbrain/usecase"
	"secondbrain/utils"

	"github.com/gin-gonic/gin"
)

func ListNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString("user_id")

	notes, err := notesService.List(c.Request.Context(), userID)
	if err != nil {
		utils.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteResponses(notes))
}

func CreateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	userID := c.GetString("user_id")
	note, err := notesService.Create(c.Request.Context(), userID,
		req.Title, req.Content, model.NoteType(req.NoteType), req.Tags)
	if err != nil {
		utils.FromError(c, err)
		return
	}

	middleware.NotesOperationsTotal.WithLabelValues("create").Inc()
	c.JSON(http.StatusCreated, dto.ToNoteResponse(note))
}

func UpdateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Failed to update note")
		return
	}

	note, err := notesService.Update(c.Request.Context(), userID, noteID, req.ToUpdate())
	if err != nil {
		utils.FromError(c, err)
		return
	}

	middleware.NotesOperationsTotal.WithLabelValues("update").Inc()
	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	if err := notesService.Delete(c.Request.Context(), userID, noteID); err != nil {
		utils.FromError(c, err)
		return
	}

	middleware.NotesOperationsTotal.WithLabelValues("delete").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}

func ToggleFavoriteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	note, err := notesService.ToggleFavorite(c.Request.Context(), userID, noteID)
	if err != nil {
		utils.FromError(c, err)
		return
	}

	middleware.NotesOperationsTotal.WithLabelValues("favorite").Inc()
	c.JSON(http.StatusOK, gin.H{"id": note.ID, "isFavorite": note.IsFavorite})
}

func ToggleArchiveHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	note, err := notesService.ToggleArchive(c.Request.Context(), userID, noteID)
	if err != nil {
		utils.FromError(c, err)
		return
	}

	middleware.NotesOperationsTotal.WithLabelValues("archive").Inc()
	c.JSON(http.StatusOK, gin.H{"id": note.ID, "isArchived": note.IsArchived})
}
