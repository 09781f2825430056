package router

import (
	"github.com/gin-gonic/gin"

	"hermes/controllers"
)

func environmentRouter(r *gin.Engine) {
	envR := r.Group("/api/v1/project")
	{
		envR.POST("/:id/environment", controllers.ForwardEnvironment)
	}
}
