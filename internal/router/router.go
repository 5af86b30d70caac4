package router

import (
	"spread/internal/handlers"
	"spread/internal/middleware"
	"spread/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, facade *services.Facade) {
	// Handlers
	authHandler := handlers.NewAuthHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	postHandler := handlers.NewPostHandler(facade)
	pollHandler := handlers.NewPollHandler(facade)
	todoHandler := handlers.NewTodoHandler(facade)
	notebookHandler := handlers.NewNotebookHandler(facade)
	companyHandler := handlers.NewCompanyHandler(facade)
	resumeHandler := handlers.NewResumeHandler(facade)
	entertainmentHandler := handlers.NewEntertainmentHandler(facade)
	toolsHandler := handlers.NewToolsHandler(facade)

	// Public routes
	r.POST("/signup", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	r.GET("/u/:id", userHandler.Profile)
	r.GET("/p/:id", postHandler.Detail)
	r.GET("/polls/:id/results", pollHandler.Results)
	r.GET("/companies/:id", companyHandler.Detail)

	// Protected routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/profile", userHandler.UpdateProfile)
		authorized.DELETE("/profile", userHandler.Delete)
		authorized.POST("/friends/:id", userHandler.AddFriend)
		authorized.DELETE("/friends/:id", userHandler.RemoveFriend)
		authorized.POST("/repost/:id", userHandler.Repost)

		authorized.POST("/p", postHandler.Create)
		authorized.DELETE("/p/:id", postHandler.Delete)
		authorized.POST("/p/:id/comment", postHandler.CreateComment)
		authorized.DELETE("/comment/:id", postHandler.DeleteComment)

		authorized.POST("/polls", pollHandler.Create)
		authorized.POST("/polls/:id/vote", pollHandler.Vote)
		authorized.DELETE("/polls/:id/vote", pollHandler.Retract)

		authorized.POST("/companies", companyHandler.Create)
		authorized.POST("/companies/:id/apply", companyHandler.Apply)
		authorized.DELETE("/companies/:id/apply", companyHandler.Withdraw)
		authorized.POST("/companies/:id/hire", companyHandler.Hire)
		authorized.POST("/companies/:id/inventory/:list", companyHandler.UpsertInventory)
		authorized.DELETE("/companies/:id/inventory/:list/:itemRef", companyHandler.RemoveInventory)

		authorized.GET("/resumes", resumeHandler.List)
		authorized.POST("/resumes", resumeHandler.Create)
		authorized.POST("/resumes/:id", resumeHandler.Update)
		authorized.DELETE("/resumes/:id", resumeHandler.Delete)
	}

	// Todo list routes
	todos := r.Group("/todos")
	todos.Use(middleware.AuthRequired())
	{
		todos.GET("", todoHandler.List)
		todos.POST("", todoHandler.Create)
		todos.POST("/:id/items", todoHandler.AddItem)
		todos.POST("/:id/items/:todoId/check", todoHandler.CheckOff)
		todos.POST("/:id/items/:todoId/uncheck", todoHandler.Uncheck)
		todos.DELETE("/:id/items/:todoId", todoHandler.RemoveItem)
		todos.DELETE("/:id", todoHandler.Delete)
	}

	// Notebook routes
	notebooks := r.Group("/notebooks")
	notebooks.Use(middleware.AuthRequired())
	{
		notebooks.GET("", notebookHandler.List)
		notebooks.POST("", notebookHandler.Create)
		notebooks.GET("/:notebookId", notebookHandler.Detail)
		notebooks.POST("/:notebookId", notebookHandler.Update)
		notebooks.DELETE("/:notebookId", notebookHandler.Delete)

		notebooks.POST("/:notebookId/sections", notebookHandler.CreateSection)
		notebooks.GET("/:notebookId/sections/:sectionId", notebookHandler.SectionDetail)
		notebooks.DELETE("/:notebookId/sections/:sectionId", notebookHandler.DeleteSection)

		notebooks.POST("/:notebookId/sections/:sectionId/notes", notebookHandler.CreateNote)
		notebooks.POST("/:notebookId/notes/:noteId", notebookHandler.UpdateNote)
		notebooks.DELETE("/:notebookId/notes/:noteId", notebookHandler.DeleteNote)
	}

	// Entertainment and tool routes
	tools := r.Group("/")
	tools.Use(middleware.AuthRequired())
	{
		tools.GET("/movies/lookup", entertainmentHandler.LookupMovie)
		tools.POST("/movies", entertainmentHandler.SaveMovie)
		tools.DELETE("/movies/:key", entertainmentHandler.RemoveMovie)
		tools.POST("/shows", entertainmentHandler.SaveShow)
		tools.DELETE("/shows/:key", entertainmentHandler.RemoveShow)

		tools.GET("/dictionary/:word", toolsHandler.Define)
		tools.GET("/weather", toolsHandler.Weather)
	}
}
