package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	educationUC "github.com/khoahotran/portfolio-api/internal/application/usecase/education"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

type EducationHandler struct {
	educationUseCase *educationUC.EducationUseCase
}

func NewEducationHandler(uc *educationUC.EducationUseCase) *EducationHandler {
	return &EducationHandler{educationUseCase: uc}
}

func (req EducationRequest) toInput() (educationUC.EducationInput, error) {
	in := educationUC.EducationInput{
		Institution:  req.Institution,
		DegreeTitle:  req.DegreeTitle,
		FieldOfStudy: req.FieldOfStudy,
		StartYear:    req.StartYear,
		EndYear:      req.EndYear,
		Grade:        req.Grade,
		Description:  req.Description,
		Order:        req.Order,
	}
	// Cleared form inputs arrive as zero values.
	if in.EndYear != nil && *in.EndYear == 0 {
		in.EndYear = nil
	}
	if req.MarksPercentage != nil && *req.MarksPercentage != "" {
		v, err := strconv.ParseFloat(string(*req.MarksPercentage), 64)
		if err != nil {
			return in, apperror.NewFieldError("marks_percentage", "A valid number is required.")
		}
		in.MarksPercentage = &v
	}
	return in, nil
}

func (h *EducationHandler) ListEducation(c *gin.Context) {
	records, err := h.educationUseCase.ListEducation(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]EducationDTO, len(records))
	for i, e := range records {
		dtos[i] = ToEducationDTO(e)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *EducationHandler) CreateEducation(c *gin.Context) {
	var req EducationRequest
	if err := bindRequest(c, &req); err != nil {
		c.Error(err)
		return
	}
	in, err := req.toInput()
	if err != nil {
		c.Error(err)
		return
	}
	e, err := h.educationUseCase.CreateEducation(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToEducationDTO(e))
}

func (h *EducationHandler) GetEducation(c *gin.Context) {
	id, err := parseID(c, "education")
	if err != nil {
		c.Error(err)
		return
	}
	e, err := h.educationUseCase.GetEducation(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToEducationDTO(e))
}

func (h *EducationHandler) UpdateEducation(c *gin.Context) {
	id, err := parseID(c, "education")
	if err != nil {
		c.Error(err)
		return
	}

	var req EducationRequest
	if isPartial(c) {
		current, err := h.educationUseCase.GetEducation(c.Request.Context(), id)
		if err != nil {
			c.Error(err)
			return
		}
		req = newEducationRequest(current)
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

	e, err := h.educationUseCase.UpdateEducation(c.Request.Context(), id, in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToEducationDTO(e))
}

func (h *EducationHandler) DeleteEducation(c *gin.Context) {
	id, err := parseID(c, "education")
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.educationUseCase.DeleteEducation(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
