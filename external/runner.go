package external

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
)

// Environment 自动化系统environment资源的请求体
type Environment struct {
	Name      string `json:"name"`
	ProjectID int    `json:"project_id"`
	JSON      string `json:"json"`
	Env       string `json:"env"`
}

// RunnerClient 自动化系统（Semaphore）客户端，携带静态bearer token
type RunnerClient struct {
	Addr      string
	ApiPrefix string
	token     string
	hc        *http.Client
}

func NewRunnerClient(addr, apiPrefix, token string) *RunnerClient {
	return &RunnerClient{
		Addr:      strings.Trim(addr, "/"),
		ApiPrefix: strings.Trim(apiPrefix, "/"),
		token:     token,
		hc:        NewHttpClient(),
	}
}

func (rc *RunnerClient) environmentApi(projectID string) string {
	return strings.Join([]string{rc.Addr, rc.ApiPrefix, "project", projectID, "environment"}, "/")
}

// ForwardEnvironment 将请求体原样转发到environment配置接口，
// 返回上游状态码与响应体
func (rc *RunnerClient) ForwardEnvironment(projectID string, payload []byte) (int, []byte, error) {
	req, err := http.NewRequest("POST", rc.environmentApi(projectID), bytes.NewReader(payload))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+rc.token)
	req.Header.Set("Content-Type", "application/json")
	resp, err := rc.hc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

// CreateEnvironment 创建environment，上游非2xx视为失败
func (rc *RunnerClient) CreateEnvironment(env Environment) error {
	payload, err := json.Marshal(env)
	if err != nil {
		return err
	}
	status, _, err := rc.ForwardEnvironment(strconv.Itoa(env.ProjectID), payload)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("runner answered status %d", status)
	}
	return nil
}
