package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	experienceUC "github.com/khoahotran/portfolio-api/internal/application/usecase/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

const dateFormatMessage = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."

type ExperienceHandler struct {
	experienceUseCase *experienceUC.ExperienceUseCase
}

func NewExperienceHandler(uc *experienceUC.ExperienceUseCase) *ExperienceHandler {
	return &ExperienceHandler{experienceUseCase: uc}
}

func (req ExperienceRequest) toInput() (experienceUC.ExperienceInput, error) {
	in := experienceUC.ExperienceInput{
		JobTitle:    req.JobTitle,
		Company:     req.Company,
		Location:    req.Location,
		IsCurrent:   req.IsCurrent,
		Description: req.Description,
		Order:       req.Order,
	}
	errs := apperror.FieldErrors{}
	start, err := time.Parse(experience.DateLayout, req.StartDate)
	if err != nil {
		errs.Add("start_date", dateFormatMessage)
	}
	in.StartDate = start
	if end := blankToNil(req.EndDate); end != nil {
		t, err := time.Parse(experience.DateLayout, *end)
		if err != nil {
			errs.Add("end_date", dateFormatMessage)
		} else {
			in.EndDate = &t
		}
	}
	return in, errs.Err()
}

func (h *ExperienceHandler) ListExperience(c *gin.Context) {
	records, err := h.experienceUseCase.ListExperience(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]ExperienceDTO, len(records))
	for i, e := range records {
		dtos[i] = ToExperienceDTO(e)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *ExperienceHandler) CreateExperience(c *gin.Context) {
	var req ExperienceRequest
	if err := bindRequest(c, &req); err != nil {
		c.Error(err)
		return
	}
	in, err := req.toInput()
	if err != nil {
		c.Error(err)
		return
	}
	e, err := h.experienceUseCase.CreateExperience(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToExperienceDTO(e))
}

func (h *ExperienceHandler) GetExperience(c *gin.Context) {
	id, err := parseID(c, "experience")
	if err != nil {
		c.Error(err)
		return
	}
	e, err := h.experienceUseCase.GetExperience(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToExperienceDTO(e))
}

func (h *ExperienceHandler) UpdateExperience(c *gin.Context) {
	id, err := parseID(c, "experience")
	if err != nil {
		c.Error(err)
		return
	}

	var req ExperienceRequest
	if isPartial(c) {
		current, err := h.experienceUseCase.GetExperience(c.Request.Context(), id)
		if err != nil {
			c.Error(err)
			return
		}
		req = newExperienceRequest(current)
	}
	if err := bindRequest(c, &req); err != nil {
		c.Error(err)
		return
	}
	in, err := req.toInput()
	if err != nil {
		c.Error(err)
		return
	}

	e, err := h.experienceUseCase.UpdateExperience(c.Request.Context(), id, in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToExperienceDTO(e))
}

func (h *ExperienceHandler) DeleteExperience(c *gin.Context) {
	id, err := parseID(c, "experience")
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.experienceUseCase.DeleteExperience(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
