package main

import (
	"os"
	"os/signal"
	"syscall"

	"hermes/common"
	"hermes/controllers"
	"hermes/external"
	"hermes/models"
	"hermes/router"
	"hermes/utils"
)

var registry *models.Registry
var notifier *external.Notifier

func initAll() {
	// 初始化程序配置、日志以及redis连接
	common.Init()
	registry = models.NewRegistry(common.OpenMysql(), utils.NewBcryptHasher(common.Config.BcryptCost))
	if err := registry.AutoMigrate(); err != nil {
		common.Log.Fatalf("Couldn't migrate registry tables: %s", err.Error())
	}
	runner := external.NewRunnerClient(common.Config.RunnerConfig.Addr, common.Config.RunnerConfig.ApiPrefix, common.Config.RunnerConfig.Token)
	notifier = external.NewNotifier(common.Redis, runner, common.Config.RunnerConfig.Queue, common.Config.RunnerConfig.ProjectID)
	notifier.Start()
	controllers.Init(registry, runner, notifier)
	router.Init()
}

func monitorOsSignal() {
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
	<-sc
	// 系统退出前停止后台任务并释放连接
	clearAll()
	os.Exit(0)
}

func clearAll() {
	notifier.Stop()
	if err := registry.Close(); err != nil {
		common.Log.Errorf("Couldn't closing mysql connection: %s", err.Error())
	}
	common.Exit()
}
