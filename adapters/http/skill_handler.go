package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	skillUC "github.com/khoahotran/portfolio-api/internal/application/usecase/skill"
)

type SkillHandler struct {
	skillUseCase *skillUC.SkillUseCase
}

func NewSkillHandler(uc *skillUC.SkillUseCase) *SkillHandler {
	return &SkillHandler{skillUseCase: uc}
}

func (h *SkillHandler) ListPublicSkills(c *gin.Context) {
	skills, err := h.skillUseCase.ListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]SkillDTO, len(skills))
	for i, s := range skills {
		dtos[i] = ToSkillDTO(s)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := h.skillUseCase.ListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]AdminSkillDTO, len(skills))
	for i, s := range skills {
		dtos[i] = ToAdminSkillDTO(s)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req SkillRequest
	if err := bindRequest(c, &req); err != nil {
		c.Error(err)
		return
	}
	s, err := h.skillUseCase.CreateSkill(c.Request.Context(), skillUC.SkillInput{
		Name:  req.Name,
		Level: req.Level,
		Order: req.Order,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToAdminSkillDTO(s))
}

func (h *SkillHandler) GetSkill(c *gin.Context) {
	id, err := parseID(c, "skill")
	if err != nil {
		c.Error(err)
		return
	}
	s, err := h.skillUseCase.GetSkill(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToAdminSkillDTO(s))
}

func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	id, err := parseID(c, "skill")
	if err != nil {
		c.Error(err)
		return
	}

	var req SkillRequest
	if isPartial(c) {
		current, err := h.skillUseCase.GetSkill(c.Request.Context(), id)
		if err != nil {
			c.Error(err)
			return
		}
		req = SkillRequest{Name: current.Name, Level: current.Level, Order: current.Order}
	}
	if err := bindRequest(c, &req); err != nil {
		c.Error(err)
		return
	}

	s, err := h.skillUseCase.UpdateSkill(c.Request.Context(), id, skillUC.SkillInput{
		Name:  req.Name,
		Level: req.Level,
		Order: req.Order,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToAdminSkillDTO(s))
}

func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	id, err := parseID(c, "skill")
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.skillUseCase.DeleteSkill(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
