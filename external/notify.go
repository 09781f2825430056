package external

import (
	"encoding/json"
	"time"

	"github.com/go-redis/redis"

	"hermes/common"
	"hermes/models"
)

const notifyPopTimeout = 2 * time.Second

// Notifier 本地提交后的尽力通知：凭据入库成功后向redis队列投递
// 派生的environment负载，由后台worker转发给自动化系统。
// 转发失败只记录日志，不重试，也绝不回滚已提交的注册表写入
type Notifier struct {
	rdb       *redis.Client
	runner    *RunnerClient
	queue     string
	projectID int
	stop      chan struct{}
	done      chan struct{}
}

func NewNotifier(rdb *redis.Client, runner *RunnerClient, queue string, projectID int) *Notifier {
	return &Notifier{
		rdb:       rdb,
		runner:    runner,
		queue:     queue,
		projectID: projectID,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// EnqueueCredential 投递失败同样只记录日志，调用方不感知
func (n *Notifier) EnqueueCredential(c *models.Credential) {
	env, err := n.credentialEnvironment(c)
	if err != nil {
		common.Log.Errorf("Couldn't build environment payload for credential %s: %s", c.Name, err.Error())
		return
	}
	payload, err := json.Marshal(env)
	if err != nil {
		common.Log.Errorf("Couldn't marshal environment payload for credential %s: %s", c.Name, err.Error())
		return
	}
	if err := n.rdb.LPush(n.queue, payload).Err(); err != nil {
		common.Log.Errorf("Couldn't enqueue notification for credential %s: %s", c.Name, err.Error())
	}
}

func (n *Notifier) credentialEnvironment(c *models.Credential) (Environment, error) {
	vars, err := json.Marshal(map[string]string{
		"PROXMOX_API_URL":      c.ApiUrl,
		"PROXMOX_API_USER":     c.ApiUser,
		"PROXMOX_API_TOKEN_ID": c.ApiTokenID,
		"PROXMOX_API_TOKEN":    c.ApiToken,
	})
	if err != nil {
		return Environment{}, err
	}
	return Environment{
		Name:      c.Name,
		ProjectID: n.projectID,
		JSON:      string(vars),
		Env:       "{}",
	}, nil
}

func (n *Notifier) Start() {
	go n.loop()
}

func (n *Notifier) loop() {
	defer close(n.done)
	for {
		select {
		case <-n.stop:
			return
		default:
		}
		res, err := n.rdb.BRPop(notifyPopTimeout, n.queue).Result()
		if err != nil {
			if err != redis.Nil {
				common.Log.Errorf("Notify queue pop error: %s", err.Error())
				time.Sleep(notifyPopTimeout)
			}
			continue
		}
		var env Environment
		if err := json.Unmarshal([]byte(res[1]), &env); err != nil {
			common.Log.Errorf("Dropping malformed notification payload: %s", err.Error())
			continue
		}
		if err := n.runner.CreateEnvironment(env); err != nil {
			common.Log.Errorf("Runner notification for %s failed: %s", env.Name, err.Error())
		}
	}
}

func (n *Notifier) Stop() {
	close(n.stop)
	<-n.done
}
