package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stocai/blog-admin/internal/domain/contract"
	"github.com/stocai/blog-admin/internal/handler/http/middleware"
	usecasecontract "github.com/stocai/blog-admin/internal/usecase/contract"
)

// Router assembles the admin HTTP surface.
type Router struct {
	gate             usecasecontract.IAuthUseCase
	authHandler      *AuthHandler
	blogHandler      *BlogHandler
	commentHandler   *CommentHandler
	feedbackHandler  *FeedbackHandler
	storyHandler     *StoryHandler
	dashboardHandler *DashboardHandler
	uuidGen          contract.IUUIDGenerator
}

// NewRouter wires the handlers for the admin surface.
func NewRouter(gate usecasecontract.IAuthUseCase, blogUC usecasecontract.IBlogUseCase, commentUC usecasecontract.ICommentUseCase, feedbackUC usecasecontract.IFeedbackUseCase, storyUC usecasecontract.IStoryUseCase, dashboardUC usecasecontract.IDashboardUseCase, uuidGen contract.IUUIDGenerator) *Router {
	return &Router{
		gate:             gate,
		authHandler:      NewAuthHandler(gate),
		blogHandler:      NewBlogHandler(blogUC),
		commentHandler:   NewCommentHandler(commentUC),
		feedbackHandler:  NewFeedbackHandler(feedbackUC),
		storyHandler:     NewStoryHandler(storyUC),
		dashboardHandler: NewDashboardHandler(dashboardUC),
		uuidGen:          uuidGen,
	}
}

// SetupRoutes attaches middleware and routes to the gin engine.
func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDKey},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RequestID(r.uuidGen))

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) { MessageHandler(c, 200, "ok") })

	// Public auth routes
	router.POST("/login", r.authHandler.Login)
	router.POST("/logout", r.authHandler.Logout)
	router.GET("/me", r.authHandler.Me)

	// Protected admin routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.RouteGuard(r.gate))
	{
		blogs := v1.Group("/blogs")
		{
			blogs.GET("", r.blogHandler.ListBlogs)
			blogs.POST("", r.blogHandler.CreateBlog)
			blogs.GET("/:id", r.blogHandler.GetBlog)
			blogs.PUT("/:id", r.blogHandler.UpdateBlog)
			blogs.DELETE("/:id", r.blogHandler.DeleteBlog)
		}

		comments := v1.Group("/comments")
		{
			comments.GET("", r.commentHandler.ListComments)
			comments.DELETE("/:id", r.commentHandler.DeleteComment)
		}

		feedback := v1.Group("/feedback")
		{
			feedback.GET("", r.feedbackHandler.ListFeedback)
			feedback.DELETE("/:id", r.feedbackHandler.DeleteFeedback)
		}

		stories := v1.Group("/stories")
		{
			stories.GET("", r.storyHandler.ListStories)
			stories.PUT("/:id/publish", r.storyHandler.PublishStory)
			stories.DELETE("/:id", r.storyHandler.DeleteStory)
		}

		v1.GET("/dashboard", r.dashboardHandler.GetStats)
	}
}
