package handler

import (
	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Auth       *AuthHandler
	User       *UserHandler
	Project    *ProjectHandler
	Defect     *DefectHandler
	Comment    *CommentHandler
	Attachment *AttachmentHandler
	Report     *ReportHandler
	Readyz     *ReadyzHandler
}

// RegisterRoutes はすべてのルートを登録します。
// /token、/register/、ヘルスチェック以外は requireActor を通過します。
func RegisterRoutes(e *echo.Echo, h Handlers, requireActor echo.MiddlewareFunc) {
	e.GET("/healthz", HealthHandler)
	e.GET("/readyz", h.Readyz.Handle)

	e.POST("/token", h.Auth.Login)
	e.POST("/register/", h.User.Register)

	users := e.Group("/users", requireActor)
	users.POST("/", h.User.Create)
	users.GET("/", h.User.List)
	users.GET("/me/", h.User.GetMe)
	users.GET("/:id", h.User.Get)
	users.PUT("/:id/role", h.User.UpdateRole)
	users.POST("/:user_id/projects/", h.Project.CreateForUser)

	e.GET("/admin/users/", h.User.List, requireActor)

	projects := e.Group("/projects", requireActor)
	projects.GET("/", h.Project.List)
	projects.GET("/:id", h.Project.Get)
	projects.PUT("/:id", h.Project.Update)
	projects.DELETE("/:id", h.Project.Delete)
	projects.POST("/:project_id/defects/", h.Defect.CreateForProject)

	defects := e.Group("/defects", requireActor)
	defects.POST("/", h.Defect.Create)
	defects.GET("/", h.Defect.List)
	defects.GET("/:id", h.Defect.Get)
	defects.PUT("/:id", h.Defect.Update)
	defects.DELETE("/:id", h.Defect.Delete)
	defects.POST("/:id/comments/", h.Comment.Create)
	defects.GET("/:id/comments/", h.Comment.ListForDefect)
	defects.POST("/:id/attachments/", h.Attachment.Upload)
	defects.GET("/:id/attachments/", h.Attachment.ListForDefect)
	defects.GET("/:id/attachments/:aid/download", h.Attachment.Download)
	defects.DELETE("/:id/attachments/:aid", h.Attachment.Delete)

	comments := e.Group("/comments", requireActor)
	comments.PUT("/:id", h.Comment.Update)
	comments.DELETE("/:id", h.Comment.Delete)

	e.GET("/reports/defects/export", h.Report.Export, requireActor)
}
