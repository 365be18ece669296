package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-api/internal/application/access"
	authUC "github.com/khoahotran/portfolio-api/internal/application/usecase/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type Dependencies struct {
	Logger            logger.Logger
	IdentifyUseCase   *authUC.IdentifyUseCase
	AuthHandler       *AuthHandler
	ProjectHandler    *ProjectHandler
	SkillHandler      *SkillHandler
	EducationHandler  *EducationHandler
	ExperienceHandler *ExperienceHandler
	ContactHandler    *ContactHandler
	ProfileHandler    *ProfileHandler
	SiteHandler       *SiteHandler
}

// collection registers list (GET) and create (POST) on path.
func collection(g *gin.RouterGroup, path string, policy access.Policy, list, create gin.HandlerFunc) {
	guard := RequirePolicy(policy)
	g.GET(path, guard, list)
	g.POST(path, guard, create)
}

// detail registers retrieve, full update, partial update and delete on path.
func detail(g *gin.RouterGroup, path string, policy access.Policy, get, update, remove gin.HandlerFunc) {
	guard := RequirePolicy(policy)
	g.GET(path, guard, get)
	g.PUT(path, guard, update)
	g.PATCH(path, guard, update)
	g.DELETE(path, guard, remove)
}

func NewRouter(deps Dependencies) *gin.Engine {
	useJSONFieldNames()

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(RequestLogger(deps.Logger))
	router.Use(ErrorMiddleware(deps.Logger))
	router.Use(IdentityMiddleware(deps.IdentifyUseCase))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found", "message": "Not found."})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed", "message": "Method not allowed."})
	})

	open := RequirePolicy(access.OpenPolicy())
	publicRead := RequirePolicy(access.PublicReadPolicy())
	authenticated := RequirePolicy(access.AuthenticatedPolicy())
	adminOnly := RequirePolicy(access.AdminOnlyPolicy())

	auth := deps.AuthHandler
	projects := deps.ProjectHandler
	skills := deps.SkillHandler
	education := deps.EducationHandler
	experience := deps.ExperienceHandler
	contact := deps.ContactHandler
	profiles := deps.ProfileHandler

	api := router.Group("/api")
	{
		api.GET("/health", open, func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.POST("/token/", open, auth.Login)
		api.POST("/token/refresh/", open, auth.Refresh)
		api.POST("/token/blacklist/", open, auth.Logout)

		accounts := api.Group("/accounts")
		{
			accounts.POST("/register/", open, auth.Register)
			accounts.GET("/me/", authenticated, auth.Me)
		}

		portfolio := api.Group("/portfolio")
		{
			portfolio.GET("/projects/", publicRead, projects.ListPublicProjects)
			collection(portfolio, "/add/projects/", access.AdminOnlyPolicy(), projects.ListProjects, projects.CreateProject)
			collection(portfolio, "/admin/projects/", access.AdminOnlyPolicy(), projects.ListProjects, projects.CreateProject)
			detail(portfolio, "/admin/projects/:id/", access.AdminOnlyPolicy(),
				projects.GetProject, projects.UpdateProject, projects.DeleteProject)

			collection(portfolio, "/skills/", access.MixedReadPublicWriteAdmin(), skills.ListPublicSkills, skills.CreateSkill)
			detail(portfolio, "/admin/skills/:id/", access.AdminOnlyPolicy(),
				skills.GetSkill, skills.UpdateSkill, skills.DeleteSkill)

			portfolio.GET("/education/", publicRead, education.ListEducation)
			collection(portfolio, "/admin/education/", access.AdminOnlyPolicy(), education.ListEducation, education.CreateEducation)
			detail(portfolio, "/admin/education/:id/", access.AdminOnlyPolicy(),
				education.GetEducation, education.UpdateEducation, education.DeleteEducation)

			portfolio.GET("/experience/", publicRead, experience.ListExperience)
			collection(portfolio, "/admin/experience/", access.AdminOnlyPolicy(), experience.ListExperience, experience.CreateExperience)
			detail(portfolio, "/admin/experience/:id/", access.AdminOnlyPolicy(),
				experience.GetExperience, experience.UpdateExperience, experience.DeleteExperience)

			portfolio.POST("/contact/", open, contact.SubmitMessage)
			portfolio.GET("/contact/messages/", authenticated, contact.ListMessages)

			collection(portfolio, "/profile/", access.AuthenticatedPolicy(), profiles.ListProfiles, profiles.CreateProfile)
			detail(portfolio, "/profile/:id/", access.AuthenticatedPolicy(),
				profiles.GetProfile, profiles.UpdateProfile, profiles.DeleteProfile)
		}

		dashboard := api.Group("/dashboard")
		{
			collection(dashboard, "/projects/create/", access.AdminOnlyPolicy(), projects.ListProjects, projects.CreateProject)
			detail(dashboard, "/projects/update/:id/", access.AdminOnlyPolicy(),
				projects.GetProject, projects.UpdateProject, projects.DeleteProject)
			detail(dashboard, "/projects/delete/:id/", access.AdminOnlyPolicy(),
				projects.GetProject, projects.UpdateProject, projects.DeleteProject)

			collection(dashboard, "/skills/create/", access.AdminOnlyPolicy(), skills.ListSkills, skills.CreateSkill)
			detail(dashboard, "/skills/update/:id/", access.AdminOnlyPolicy(),
				skills.GetSkill, skills.UpdateSkill, skills.DeleteSkill)
			detail(dashboard, "/skills/delete/:id/", access.AdminOnlyPolicy(),
				skills.GetSkill, skills.UpdateSkill, skills.DeleteSkill)

			dashboard.GET("/contact/messages/", adminOnly, contact.ListMessages)
			dashboard.DELETE("/contact/messages/delete/:id/", adminOnly, contact.DeleteMessage)

			dashboard.GET("/site/", adminOnly, deps.SiteHandler.GetBranding)
		}
	}

	return router
}
