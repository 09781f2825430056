package common

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	easy "github.com/t-tomalak/logrus-easy-formatter"
)

var Log = logrus.New()

func initLog() {
	logFormatter := &easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05",
		LogFormat:       "%time% [%lvl%] %msg%\n",
	}
	Log.SetFormatter(logFormatter)
	Log.SetLevel(logrus.InfoLevel)
	// 同时落盘和输出到终端，口令及token不进日志
	Log.SetOutput(io.MultiWriter(Config.mainConfig.LogFile, os.Stdout))
}
