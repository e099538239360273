package handler

import (
	"net/http"

	"secondbrain/dto"
	"secondbrain/usecase"
	"secondbrain/utils"

	"github.com/gin-gonic/gin"
)

func ListTagsHandler(c *gin.Context, tagsService *usecase.TagsService) {
	userID := c.GetString("user_id")

	tags, err := tagsService.List(c.Request.Context(), userID)
	if err != nil {
		utils.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTagResponses(tags))
}

func CreateTagHandler(c *gin.Context, tagsService *usecase.TagsService) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	userID := c.GetString("user_id")
	tag, err := tagsService.Create(c.Request.Context(), userID, req.Name, req.Color)
	if err != nil {
		utils.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTagResponse(tag))
}

func DeleteTagHandler(c *gin.Context, tagsService *usecase.TagsService) {
	tagID := c.Param("id")
	userID := c.GetString("user_id")

	if err := tagsService.Delete(c.Request.Context(), userID, tagID); err != nil {
		utils.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted successfully"})
}
