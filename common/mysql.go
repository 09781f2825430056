package common

import (
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"
)

type mysqlConfig struct {
	host       string
	port       int
	user       string
	password   string
	database   string
	connParams []string
}

// OpenMysql 建立mysql连接并返回句柄，连接失败则退出；
// 句柄由调用方持有并负责关闭
func OpenMysql() *gorm.DB {
	Log.Infoln("Connecting Mysql ......")
	db, err := gorm.Open("mysql", fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		Config.mysqlConfig.user, Config.mysqlConfig.password, Config.mysqlConfig.host, Config.mysqlConfig.port,
		Config.mysqlConfig.database, strings.Join(Config.mysqlConfig.connParams, "&")))
	if err != nil {
		Log.Fatalf("Couldn't connect to mysql at %s:%d", Config.mysqlConfig.host, Config.mysqlConfig.port)
	}
	Log.Infof("Connected to mysql at %s:%d successfully", Config.mysqlConfig.host, Config.mysqlConfig.port)
	return db
}
