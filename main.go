package main

import (
	"flag"

	"hermes/common"
	"hermes/router"
)

func main() {
	// 定义命令行参数'--config'， 默认值为"./configs/config.toml"
	common.Configfile = flag.String("config", "./configs/config.toml", "Specify config file for server")
	flag.Parse()
	initAll()
	defer common.Exit()
	go monitorOsSignal()
	// 运行web服务
	if err := router.R.Run(common.Config.ListenAddr); err != nil {
		common.Log.Fatalf("Couldn't run web server: %s", err.Error())
	}
}
