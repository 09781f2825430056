package router

import (
	"github.com/gin-gonic/gin"

	"hermes/controllers"
)

func credentialRouter(r *gin.Engine) {
	credR := r.Group("/api/v1/credentials")
	{
		credR.GET("", controllers.FetchAllCredentials)
		credR.POST("", controllers.AddCredential)
	}
}
