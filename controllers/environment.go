package controllers

import (
	"github.com/gin-gonic/gin"

	"hermes/common"
)

// ForwardEnvironment 同步转发environment配置到自动化系统，
// 上游失败以独立状态上报，不影响任何注册表状态
func ForwardEnvironment(ctx *gin.Context) {
	payload, err := ctx.GetRawData()
	if err != nil {
		ctx.JSON(400, newHttpResp(100001, "参数错误：无法读取请求体", nil))
		return
	}
	status, body, err := Runner.ForwardEnvironment(ctx.Param("id"), payload)
	if err != nil {
		common.Log.Errorf("Environment forward failed: %s", err.Error())
		ctx.JSON(502, newHttpResp(100005, "自动化系统调用失败", nil))
		return
	}
	ctx.Data(status, "application/json", body)
	return
}
