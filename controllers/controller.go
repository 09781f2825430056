package controllers

import (
	"fmt"

	validator "gopkg.in/go-playground/validator.v8"

	"hermes/external"
	"hermes/models"
)

// 注册表与外部协作方在init阶段注入
var (
	Reg    *models.Registry
	Runner *external.RunnerClient
	Notify *external.Notifier
)

func Init(reg *models.Registry, runner *external.RunnerClient, notify *external.Notifier) {
	Reg = reg
	Runner = runner
	Notify = notify
}

type SHttpResp struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func newHttpResp(code int, message string, data interface{}) SHttpResp {
	return SHttpResp{Code: code, Message: message, Data: data}
}

// firstBindError 只向调用方暴露第一条字段级校验失败原因
func firstBindError(err error) string {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			return fmt.Sprintf("字段%s校验失败（%s）", fe.Field, fe.Tag)
		}
	}
	return err.Error()
}
