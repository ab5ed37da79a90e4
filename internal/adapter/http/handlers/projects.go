package handlers

import (
	"encoding/json"
	"net/http"

	"projecthub/internal/adapter/http/dto"
	"projecthub/internal/adapter/http/mapper"
	"projecthub/internal/adapter/http/middleware"
	"projecthub/internal/adapter/http/validation"
	"projecthub/internal/core/domain"
	"projecthub/internal/core/ports"
	"projecthub/pkg/apierrors"
	"projecthub/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProjectHandler struct {
	projectService ports.ProjectService
	users          ports.UserDirectory
}

func NewProjectHandler(projectService ports.ProjectService, users ports.UserDirectory) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, users: users}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidProjectPayload)
		return
	}

	input, err := validation.BuildCreateProjectInput(req)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidProjectPayload)
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateProject)
		return
	}

	c.JSON(http.StatusCreated, h.projectItem(c, project))
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	projects, err := h.projectService.ListProjects(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListProject)
		return
	}

	users := resolveUsers(c, h.users, mapper.ProjectUserIDs(projects...))
	c.JSON(http.StatusOK, mapper.ToProjectItems(projects, users))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id", apierrors.MsgInvalidProjectID)
	if !ok {
		return
	}

	details, err := h.projectService.GetProjectDetails(c.Request.Context(), userID, projectID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailGetProject, zap.String("project_id", projectID))
		return
	}

	users := resolveUsers(c, h.users, mapper.ProjectUserIDs(details.Project))
	c.JSON(http.StatusOK, mapper.ToProjectDetails(details, users))
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id", apierrors.MsgInvalidProjectID)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidProjectPayload)
		return
	}
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidProjectPayload)
		return
	}

	input, err := validation.BuildUpdateProjectInput(req, raw)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidProjectPayload)
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), userID, projectID, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateProject, zap.String("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, h.projectItem(c, project))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id", apierrors.MsgInvalidProjectID)
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), userID, projectID); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteProject, zap.String("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: translator.Message(apierrors.MsgProjectDeleted, middleware.GetLang(c)),
	})
}

func (h *ProjectHandler) AddTeamMember(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id", apierrors.MsgInvalidProjectID)
	if !ok {
		return
	}

	var req dto.AddTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidMemberID)
		return
	}
	if _, err := uuid.Parse(req.UserID); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidMemberID)
		return
	}

	project, err := h.projectService.AddTeamMember(c.Request.Context(), userID, projectID, domain.UserID(req.UserID))
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateTeam, zap.String("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, h.projectItem(c, project))
}

func (h *ProjectHandler) RemoveTeamMember(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id", apierrors.MsgInvalidProjectID)
	if !ok {
		return
	}
	memberID, ok := pathID(c, "memberId", apierrors.MsgInvalidMemberID)
	if !ok {
		return
	}

	project, err := h.projectService.RemoveTeamMember(c.Request.Context(), userID, projectID, domain.UserID(memberID))
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateTeam, zap.String("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, h.projectItem(c, project))
}

func (h *ProjectHandler) projectItem(c *gin.Context, project domain.Project) dto.ProjectItem {
	return mapper.ToProjectItem(project, resolveUsers(c, h.users, mapper.ProjectUserIDs(project)))
}
