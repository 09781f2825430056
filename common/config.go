package common

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// 定义部分默认配置
const (
	DefaultListenAddr    = "0.0.0.0:3001"
	DefaultAllowOrigin   = "http://localhost:5173"
	DefaultBcryptCost    = 10
	DefaultLogFile       = "/tmp/var/lib/hermes/server.log"
	DefaultMysqlHost     = "127.0.0.1"
	DefaultMysqlPort     = 3306
	DefaultMysqlUser     = "root"
	DefaultMysqlPassword = ""
	DefaultMysqlDatabase = "hermes"
	DefaultRedisHost     = "127.0.0.1"
	DefaultRedisPort     = 6379
	DefaultRedisPassword = ""
	DefaultRedisDb       = 0
	DefaultRunnerAddr    = "http://127.0.0.1:3000"
	DefaultRunnerPrefix  = "api"
	DefaultRunnerProject = 1
	DefaultNotifyQueue   = "hermes:notify"
	DefaultFileMode      = 0644
	DefaultDirMode       = 0755
)

type mainConfig struct {
	ListenAddr  string
	AllowOrigin string
	BcryptCost  int
	LogFile     *os.File
}

// RunnerConfig 外部自动化系统相关配置
type RunnerConfig struct {
	Addr      string
	ApiPrefix string
	Token     string
	ProjectID int
	Queue     string
}

type config struct {
	mainConfig
	mysqlConfig
	redisConfig
	RunnerConfig
}

var Config = &config{}
var Configfile *string

// initConfig 读取配置文件，初始化配置；环境变量可覆盖配置文件
func (c *config) initConfig() {
	var err error
	viper.SetConfigFile(*Configfile)
	viper.SetConfigType("toml")
	viper.SetEnvPrefix("hermes")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		Log.Warnf("Couldn't read config file %s", *Configfile)
		Log.Warnf("Using defaults and environment overrides!")
	}
	c.ListenAddr = viper.GetString("main.listen")
	c.AllowOrigin = viper.GetString("main.allow_origin")
	c.BcryptCost = viper.GetInt("main.bcrypt_cost")
	logfile := viper.GetString("main.logfile")
	c.mysqlConfig.user = viper.GetString("mysql.user")
	c.mysqlConfig.host = viper.GetString("mysql.host")
	c.mysqlConfig.port = viper.GetInt("mysql.port")
	c.mysqlConfig.database = viper.GetString("mysql.database")
	c.mysqlConfig.password = viper.GetString("mysql.password")
	c.redisConfig.host = viper.GetString("redis.host")
	c.redisConfig.port = viper.GetInt("redis.port")
	c.redisConfig.password = viper.GetString("redis.password")
	c.redisConfig.db = viper.GetInt("redis.db")
	c.RunnerConfig.Addr = strings.Trim(viper.GetString("runner.addr"), "/")
	c.RunnerConfig.ApiPrefix = strings.Trim(viper.GetString("runner.api_prefix"), "/")
	c.RunnerConfig.Token = viper.GetString("runner.token")
	c.RunnerConfig.ProjectID = viper.GetInt("runner.project_id")
	c.RunnerConfig.Queue = viper.GetString("runner.queue")
	if len(logfile) == 0 {
		logfile = DefaultLogFile
	}
	c.checkAndSetDefault()
	c.createIfNotExist(logfile)
	c.LogFile, err = os.OpenFile(logfile, os.O_RDWR|os.O_CREATE|os.O_APPEND, DefaultFileMode)
	if err != nil {
		Log.Fatalf("Couldn't open log file: %s", logfile)
	}
	// 操作耗时上限由驱动超时保证
	c.mysqlConfig.connParams = []string{"charset=utf8", "parseTime=True", "timeout=5s", "readTimeout=5s", "writeTimeout=5s"}
	if len(c.RunnerConfig.Token) == 0 {
		Log.Warnln("Runner token is empty, upstream calls will be unauthenticated")
	}
	Log.Info("Init configuration successfully !")
}

// checkAndSetDefault 检测配置项是否为0值，如果为0值则设置默认值
func (c *config) checkAndSetDefault() {
	if len(c.mainConfig.ListenAddr) == 0 {
		c.mainConfig.ListenAddr = DefaultListenAddr
	}
	if len(c.mainConfig.AllowOrigin) == 0 {
		c.mainConfig.AllowOrigin = DefaultAllowOrigin
	}
	if c.mainConfig.BcryptCost == 0 {
		c.mainConfig.BcryptCost = DefaultBcryptCost
	}
	if len(c.mysqlConfig.host) == 0 {
		c.mysqlConfig.host = DefaultMysqlHost
	}
	if c.mysqlConfig.port == 0 {
		c.mysqlConfig.port = DefaultMysqlPort
	}
	if len(c.mysqlConfig.user) == 0 {
		c.mysqlConfig.user = DefaultMysqlUser
	}
	if len(c.mysqlConfig.password) == 0 {
		c.mysqlConfig.password = DefaultMysqlPassword
	}
	if len(c.mysqlConfig.database) == 0 {
		c.mysqlConfig.database = DefaultMysqlDatabase
	}
	if len(c.redisConfig.host) == 0 {
		c.redisConfig.host = DefaultRedisHost
	}
	if c.redisConfig.port == 0 {
		c.redisConfig.port = DefaultRedisPort
	}
	if len(c.redisConfig.password) == 0 {
		c.redisConfig.password = DefaultRedisPassword
	}
	if c.redisConfig.db == 0 {
		c.redisConfig.db = DefaultRedisDb
	}
	if len(c.RunnerConfig.Addr) == 0 {
		c.RunnerConfig.Addr = DefaultRunnerAddr
	}
	if len(c.RunnerConfig.ApiPrefix) == 0 {
		c.RunnerConfig.ApiPrefix = DefaultRunnerPrefix
	}
	if c.RunnerConfig.ProjectID == 0 {
		c.RunnerConfig.ProjectID = DefaultRunnerProject
	}
	if len(c.RunnerConfig.Queue) == 0 {
		c.RunnerConfig.Queue = DefaultNotifyQueue
	}
}

// createIfNotExist 检测日志目录是否存在，不存在则创建，创建失败则退出
func (c *config) createIfNotExist(logfile string) {
	dir := filepath.Dir(logfile)
	if err := os.MkdirAll(dir, DefaultDirMode); err != nil {
		Log.Fatalf("couldn't create log dir: %s", dir)
	}
}
