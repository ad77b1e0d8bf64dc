package httpserver

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/auth"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/handlers"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/rbac"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/services"
)

type Deps struct {
	DB        *gorm.DB
	JWTSecret string
	Resolver  *rbac.Resolver

	Shortlist  *services.ShortlistService
	Jobs       *services.JobService
	Candidates *services.CandidateService
	Members    *services.MemberService
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	shortlistHandler := handlers.NewShortlistHandler(d.Shortlist, d.Resolver)
	jobHandler := handlers.NewJobHandler(d.Jobs, d.Resolver)
	candidateHandler := handlers.NewCandidateHandler(d.Candidates, d.Resolver)
	memberHandler := handlers.NewMemberHandler(d.Members)

	authMW := auth.JWT(d.DB, d.JWTSecret)

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)
		api.POST("/auth/login", handlers.Login(d.DB, d.JWTSecret))
	}

	protected := r.Group("/api/v1", authMW)
	{
		protected.POST("/auth/logout", handlers.Logout(d.Resolver))
		protected.GET("/me", handlers.Me(d.DB))

		// Shortlisting
		protected.POST("/ai-shortlist", shortlistHandler.Run)

		// Jobs
		protected.POST("/jobs", jobHandler.CreateJob)
		protected.GET("/jobs", jobHandler.ListJobs)
		protected.GET("/jobs/:id/report", jobHandler.Report)

		// Candidates & applications
		protected.GET("/candidates", candidateHandler.ListCandidates)
		protected.DELETE("/candidates/:id", candidateHandler.DeleteCandidate)
		protected.PATCH("/applications/:id/override", candidateHandler.Override)

		// Organization members
		protected.PATCH("/organization/update-member", memberHandler.UpdateMember)
		protected.DELETE("/organization/delete-member", memberHandler.DeleteMember)

		// Observability
		protected.GET("/usage/export", handlers.ExportUsage(d.DB, d.Resolver))
		protected.GET("/audit", handlers.ListAudit(d.DB, d.Resolver))
	}

	return r
}
