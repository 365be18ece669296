package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
}

func NewProfileHandler(uc *profileUC.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{profileUseCase: uc}
}

func (h *ProfileHandler) bindProfile(c *gin.Context) (profileUC.ProfileInput, func(), error) {
	var req ProfileRequest
	if err := bindRequest(c, &req); err != nil {
		return profileUC.ProfileInput{}, func() {}, err
	}
	if image, ok := formValue(c, "profile_image"); ok {
		req.ProfileImage = &image
	}
	file, err := formFile(c, "profile_image")
	if err != nil {
		return profileUC.ProfileInput{}, func() {}, err
	}
	in := profileUC.ProfileInput{ProfileImage: blankToNil(req.ProfileImage)}
	if file == nil {
		return in, func() {}, nil
	}
	in.ImageFile = file
	return in, func() { file.Close() }, nil
}

func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profileUseCase.ExecuteListProfiles(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]ProfileDTO, len(profiles))
	for i, p := range profiles {
		dtos[i] = ToProfileDTO(p)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	in, done, err := h.bindProfile(c)
	if err != nil {
		c.Error(err)
		return
	}
	defer done()

	p, err := h.profileUseCase.ExecuteCreateProfile(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToProfileDTO(p))
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, err := parseID(c, "profile")
	if err != nil {
		c.Error(err)
		return
	}
	p, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(p))
}

// UpdateProfile serves PUT and PATCH alike: the image is the only writable
// field and an absent one keeps the stored image.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	id, err := parseID(c, "profile")
	if err != nil {
		c.Error(err)
		return
	}
	in, done, err := h.bindProfile(c)
	if err != nil {
		c.Error(err)
		return
	}
	defer done()

	p, err := h.profileUseCase.ExecuteUpdateProfile(c.Request.Context(), id, in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(p))
}

func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	id, err := parseID(c, "profile")
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.profileUseCase.ExecuteDeleteProfile(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
