package router

import (
	"github.com/gin-gonic/gin"

	"hermes/common"
	"hermes/middleware"
)

var R *gin.Engine

func Init() {
	R = gin.Default()
	R.Use(middleware.Cors(common.Config.AllowOrigin))
	R.Use(middleware.RequestID())
	Register()
}

// Register 注册子路由
func Register() {
	serverRouter(R)
	credentialRouter(R)
	vmConfigRouter(R)
	environmentRouter(R)
}
