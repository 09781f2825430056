package common

import (
	"fmt"
	"time"

	"github.com/go-redis/redis"
)

type redisConfig struct {
	host     string
	port     int
	password string
	db       int
}

var Redis *redis.Client

// 阻塞弹出队列最长等2秒，ReadTimeout须大于该值
func initRedis() {
	Log.Info("Connecting to redis .......")
	Redis = redis.NewClient(&redis.Options{
		Network:      "tcp",
		Addr:         fmt.Sprintf("%s:%d", Config.redisConfig.host, Config.redisConfig.port),
		Password:     Config.redisConfig.password,
		DB:           Config.redisConfig.db,
		ReadTimeout:  4 * time.Second,
		DialTimeout:  5 * time.Second,
		MaxRetries:   3,
		MinIdleConns: 2,
	})
	if _, err := Redis.Ping().Result(); err != nil {
		Log.Fatalf("Couldn't connect to redis at %s:%d", Config.redisConfig.host, Config.redisConfig.port)
	}
	Log.Infof("Connected to redis at %s:%d successfully !", Config.redisConfig.host, Config.redisConfig.port)
}
