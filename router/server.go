package router

import (
	"github.com/gin-gonic/gin"

	"hermes/controllers"
)

func serverRouter(r *gin.Engine) {
	serverR := r.Group("/api/v1/servers")
	{
		serverR.GET("", controllers.FetchAllServers)
		serverR.POST("", controllers.AddServer)
		serverR.POST("/:id/replica", controllers.AddReplica)
		serverR.POST("/:id/replica/proxmox", controllers.AddProxmoxReplica)
		serverR.GET("/:id/replicas", controllers.FetchReplicas)
	}
}
