package controllers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"hermes/common"
	"hermes/models"
)

type credentialForm struct {
	Name       string `json:"credential_name" binding:"required,max=255"`
	ApiUser    string `json:"api_user" binding:"required,max=255"`
	ApiToken   string `json:"api_token" binding:"omitempty,max=255"`
	ApiUrl     string `json:"api_url" binding:"required,max=255"`
	ApiTokenID string `json:"api_token_id" binding:"required,max=255"`
}

func (f *credentialForm) credential() *models.Credential {
	return &models.Credential{
		Name:       strings.TrimSpace(f.Name),
		ApiUser:    strings.TrimSpace(f.ApiUser),
		ApiToken:   f.ApiToken,
		ApiUrl:     strings.TrimSpace(f.ApiUrl),
		ApiTokenID: strings.TrimSpace(f.ApiTokenID),
	}
}

func AddCredential(ctx *gin.Context) {
	var form credentialForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(400, newHttpResp(100001, fmt.Sprintf("参数错误：%s", firstBindError(err)), nil))
		return
	}
	c := form.credential()
	if err := Reg.AddCredential(c); err != nil {
		if err == models.ErrConflict {
			ctx.JSON(409, newHttpResp(100004, "凭据名称必须唯一", nil))
			return
		}
		common.Log.Errorf("Couldn't create credential %s: %s", c.Name, err.Error())
		ctx.JSON(500, newHttpResp(100002, "内部错误", nil))
		return
	}
	// 提交后的尽力通知，失败不影响已落库的凭据
	if Notify != nil {
		Notify.EnqueueCredential(c)
	}
	ctx.JSON(201, newHttpResp(100000, "凭据创建成功", c))
	return
}

func FetchAllCredentials(ctx *gin.Context) {
	creds, err := Reg.FetchCredentials()
	if err != nil {
		common.Log.Errorf("Couldn't fetch credential list: %s", err.Error())
		ctx.JSON(500, newHttpResp(100002, "内部错误", nil))
		return
	}
	ctx.JSON(200, newHttpResp(100000, "成功获取凭据列表", creds))
	return
}
