package router

import (
	"github.com/gin-gonic/gin"

	"hermes/controllers"
)

func vmConfigRouter(r *gin.Engine) {
	vmR := r.Group("/api/v1/vms")
	{
		vmR.GET("", controllers.FetchAllVMConfigs)
		vmR.POST("", controllers.AddVMConfig)
	}
}
