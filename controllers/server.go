package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hermes/common"
	"hermes/models"
)

type serverForm struct {
	Name          string `json:"new_vm_name" binding:"required,max=128"`
	Memory        int    `json:"vm_memory" binding:"required,min=1"`
	Cores         int    `json:"vm_cores" binding:"required,min=1"`
	CiUser        string `json:"ci_user" binding:"required,max=64"`
	CiPassword    string `json:"ci_password" binding:"required,min=6,max=255"`
	MysqlPassword string `json:"mysql_password" binding:"required,min=6,max=255"`
	IPConfig      string `json:"ipconfig0" binding:"required,max=255"`
	IsMaster      string `json:"is_master" binding:"required,max=128"`
	Provider      string `json:"provider" binding:"required,max=128"`
}

// replicaForm is_master由父记录推导，provider可省略
type replicaForm struct {
	Name          string `json:"new_vm_name" binding:"required,max=128"`
	Memory        int    `json:"vm_memory" binding:"required,min=1"`
	Cores         int    `json:"vm_cores" binding:"required,min=1"`
	CiUser        string `json:"ci_user" binding:"required,max=64"`
	CiPassword    string `json:"ci_password" binding:"required,min=6,max=255"`
	MysqlPassword string `json:"mysql_password" binding:"required,min=6,max=255"`
	IPConfig      string `json:"ipconfig0" binding:"required,max=255"`
	Provider      string `json:"provider" binding:"omitempty,max=128"`
}

func (f *serverForm) server() *models.Server {
	return &models.Server{
		Name:     strings.TrimSpace(f.Name),
		Memory:   f.Memory,
		Cores:    f.Cores,
		CiUser:   strings.TrimSpace(f.CiUser),
		IPConfig: strings.TrimSpace(f.IPConfig),
		IsMaster: strings.TrimSpace(f.IsMaster),
		Provider: strings.TrimSpace(f.Provider),
	}
}

func (f *replicaForm) server() *models.Server {
	return &models.Server{
		Name:     strings.TrimSpace(f.Name),
		Memory:   f.Memory,
		Cores:    f.Cores,
		CiUser:   strings.TrimSpace(f.CiUser),
		IPConfig: strings.TrimSpace(f.IPConfig),
		Provider: strings.TrimSpace(f.Provider),
	}
}

func AddServer(ctx *gin.Context) {
	var form serverForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(400, newHttpResp(100001, fmt.Sprintf("参数错误：%s", firstBindError(err)), nil))
		return
	}
	s := form.server()
	if err := Reg.AddServer(s, form.CiPassword, form.MysqlPassword); err != nil {
		if err == models.ErrConflict {
			ctx.JSON(409, newHttpResp(100004, "服务器名称必须唯一", nil))
			return
		}
		common.Log.Errorf("Couldn't create server %s: %s", s.Name, err.Error())
		ctx.JSON(500, newHttpResp(100002, "内部错误", nil))
		return
	}
	ctx.JSON(201, newHttpResp(100000, "服务器创建成功", s))
	return
}

func FetchAllServers(ctx *gin.Context) {
	servers, err := Reg.FetchServers()
	if err != nil {
		common.Log.Errorf("Couldn't fetch server list: %s", err.Error())
		ctx.JSON(500, newHttpResp(100002, "内部错误", nil))
		return
	}
	ctx.JSON(200, newHttpResp(100000, "成功获取服务器列表", servers))
	return
}

func AddReplica(ctx *gin.Context) {
	addReplica(ctx, "")
}

// AddProxmoxReplica 旧别名路由：未指定provider时强制为proxmox
func AddProxmoxReplica(ctx *gin.Context) {
	addReplica(ctx, models.DefaultProvider)
}

func addReplica(ctx *gin.Context, forcedProvider string) {
	parentID, err := parseID(ctx)
	if err != nil {
		ctx.JSON(400, newHttpResp(100001, "参数错误：无效的父服务器id", nil))
		return
	}
	var form replicaForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(400, newHttpResp(100001, fmt.Sprintf("参数错误：%s", firstBindError(err)), nil))
		return
	}
	s := form.server()
	if len(s.Provider) == 0 {
		s.Provider = forcedProvider
	}
	if err := Reg.AddReplica(parentID, s, form.CiPassword, form.MysqlPassword); err != nil {
		switch err {
		case models.ErrNotFound:
			ctx.JSON(404, newHttpResp(100003, "父服务器不存在", nil))
		case models.ErrConflict:
			ctx.JSON(409, newHttpResp(100004, "服务器名称必须唯一", nil))
		default:
			common.Log.Errorf("Couldn't create replica %s under parent %d: %s", s.Name, parentID, err.Error())
			ctx.JSON(500, newHttpResp(100002, "内部错误", nil))
		}
		return
	}
	ctx.JSON(201, newHttpResp(100000, "副本创建成功", s))
	return
}

func FetchReplicas(ctx *gin.Context) {
	parentID, err := parseID(ctx)
	if err != nil {
		ctx.JSON(400, newHttpResp(100001, "参数错误：无效的父服务器id", nil))
		return
	}
	replicas, err := Reg.FetchReplicas(parentID)
	if err != nil {
		if err == models.ErrNotFound {
			ctx.JSON(404, newHttpResp(100003, "父服务器不存在", nil))
			return
		}
		common.Log.Errorf("Couldn't fetch replicas of parent %d: %s", parentID, err.Error())
		ctx.JSON(500, newHttpResp(100002, "内部错误", nil))
		return
	}
	ctx.JSON(200, newHttpResp(100000, "成功获取副本列表", replicas))
	return
}

func parseID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
