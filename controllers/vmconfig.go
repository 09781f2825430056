package controllers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"hermes/common"
	"hermes/models"
)

type vmConfigForm struct {
	Name        string `json:"vm_name" binding:"required,max=255"`
	Memory      int    `json:"vm_memory" binding:"required,min=1"`
	Cores       int    `json:"vm_cores" binding:"required,min=1"`
	CiUser      string `json:"cloud_init_user" binding:"required,max=50"`
	CiPassword  string `json:"cloud_init_password" binding:"required,min=6,max=255"`
	IPConfig    string `json:"cloud_init_ipconfig" binding:"required,max=100"`
	Nameservers string `json:"cloud_init_nameservers" binding:"required,max=100"`
}

func (f *vmConfigForm) vmConfig() *models.VMConfig {
	return &models.VMConfig{
		Name:        strings.TrimSpace(f.Name),
		Memory:      f.Memory,
		Cores:       f.Cores,
		CiUser:      strings.TrimSpace(f.CiUser),
		IPConfig:    strings.TrimSpace(f.IPConfig),
		Nameservers: strings.TrimSpace(f.Nameservers),
	}
}

func AddVMConfig(ctx *gin.Context) {
	var form vmConfigForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(400, newHttpResp(100001, fmt.Sprintf("参数错误：%s", firstBindError(err)), nil))
		return
	}
	v := form.vmConfig()
	if err := Reg.AddVMConfig(v, form.CiPassword); err != nil {
		if err == models.ErrConflict {
			ctx.JSON(409, newHttpResp(100004, "VM名称必须唯一", nil))
			return
		}
		common.Log.Errorf("Couldn't create vm configuration %s: %s", v.Name, err.Error())
		ctx.JSON(500, newHttpResp(100002, "内部错误", nil))
		return
	}
	ctx.JSON(201, newHttpResp(100000, "VM配置创建成功", v))
	return
}

func FetchAllVMConfigs(ctx *gin.Context) {
	configs, err := Reg.FetchVMConfigs()
	if err != nil {
		common.Log.Errorf("Couldn't fetch vm configuration list: %s", err.Error())
		ctx.JSON(500, newHttpResp(100002, "内部错误", nil))
		return
	}
	ctx.JSON(200, newHttpResp(100000, "成功获取VM配置列表", configs))
	return
}
