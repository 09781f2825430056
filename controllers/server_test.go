package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hermes/common"
	"hermes/controllers"
	"hermes/models"
	"hermes/router"
	"hermes/utils"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type serverOut struct {
	ID       uint   `json:"ID"`
	Name     string `json:"new_vm_name"`
	IsMaster string `json:"is_master"`
	Provider string `json:"provider"`
}

func setupAPI(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	common.Config.AllowOrigin = common.DefaultAllowOrigin
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.DB().SetMaxOpenConns(1)
	reg := models.NewRegistry(db, utils.NewBcryptHasher(4))
	require.NoError(t, reg.AutoMigrate())
	controllers.Init(reg, nil, nil)
	router.Init()
	return router.R
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func masterBody(name string) map[string]interface{} {
	return map[string]interface{}{
		"new_vm_name":    name,
		"vm_memory":      2048,
		"vm_cores":       2,
		"ci_user":        "admin",
		"ci_password":    "secret1",
		"mysql_password": "secret2",
		"ipconfig0":      "ip=10.0.0.5/24,gw=10.0.0.1",
		"is_master":      "master",
		"provider":       "proxmox",
	}
}

func replicaBody(name string) map[string]interface{} {
	b := masterBody(name)
	delete(b, "is_master")
	delete(b, "provider")
	return b
}

func decodeServer(t *testing.T, w *httptest.ResponseRecorder) serverOut {
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var s serverOut
	require.NoError(t, json.Unmarshal(env.Data, &s))
	return s
}

func TestAddServerRedactsSecrets(t *testing.T) {
	r := setupAPI(t)
	w := doJSON(t, r, "POST", "/api/v1/servers", masterBody("core-a"))
	require.Equal(t, 201, w.Code)
	assert.NotContains(t, w.Body.String(), "secret1")
	assert.NotContains(t, w.Body.String(), "secret2")
	assert.NotContains(t, w.Body.String(), "ci_password")
	assert.NotContains(t, w.Body.String(), "mysql_password")
	s := decodeServer(t, w)
	assert.Equal(t, "core-a", s.Name)
	assert.Equal(t, "master", s.IsMaster)
}

func TestAddServerValidation(t *testing.T) {
	r := setupAPI(t)

	body := masterBody("core-a")
	body["vm_memory"] = 0
	w := doJSON(t, r, "POST", "/api/v1/servers", body)
	assert.Equal(t, 400, w.Code)

	body = masterBody("core-a")
	body["vm_cores"] = -1
	w = doJSON(t, r, "POST", "/api/v1/servers", body)
	assert.Equal(t, 400, w.Code)

	body = masterBody("core-a")
	body["ci_password"] = "12345"
	w = doJSON(t, r, "POST", "/api/v1/servers", body)
	assert.Equal(t, 400, w.Code)

	body = masterBody("core-a")
	body["ci_password"] = "123456"
	w = doJSON(t, r, "POST", "/api/v1/servers", body)
	assert.Equal(t, 201, w.Code)
}

func TestAddServerDuplicateName(t *testing.T) {
	r := setupAPI(t)
	w := doJSON(t, r, "POST", "/api/v1/servers", masterBody("db-1"))
	require.Equal(t, 201, w.Code)
	w = doJSON(t, r, "POST", "/api/v1/servers", masterBody("db-1"))
	assert.Equal(t, 409, w.Code)

	w = doJSON(t, r, "GET", "/api/v1/servers", nil)
	require.Equal(t, 200, w.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var list []serverOut
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)
}

func TestReplicaLifecycle(t *testing.T) {
	r := setupAPI(t)
	w := doJSON(t, r, "POST", "/api/v1/servers", masterBody("core-a"))
	require.Equal(t, 201, w.Code)
	master := decodeServer(t, w)

	w = doJSON(t, r, "POST", fmt.Sprintf("/api/v1/servers/%d/replica", master.ID), replicaBody("core-a-r1"))
	require.Equal(t, 201, w.Code)
	r1 := decodeServer(t, w)
	assert.Equal(t, "core-a", r1.IsMaster)
	assert.Equal(t, "proxmox", r1.Provider)

	// 以副本为父创建的副本仍挂在根master下
	w = doJSON(t, r, "POST", fmt.Sprintf("/api/v1/servers/%d/replica", r1.ID), replicaBody("core-a-r2"))
	require.Equal(t, 201, w.Code)
	r2 := decodeServer(t, w)
	assert.Equal(t, "core-a", r2.IsMaster)

	w = doJSON(t, r, "GET", fmt.Sprintf("/api/v1/servers/%d/replicas", master.ID), nil)
	require.Equal(t, 200, w.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var replicas []serverOut
	require.NoError(t, json.Unmarshal(env.Data, &replicas))
	names := make([]string, 0, len(replicas))
	for _, rep := range replicas {
		names = append(names, rep.Name)
	}
	assert.ElementsMatch(t, []string{"core-a-r1", "core-a-r2"}, names)
}

func TestReplicaMissingParent(t *testing.T) {
	r := setupAPI(t)
	w := doJSON(t, r, "POST", "/api/v1/servers/999/replica", replicaBody("orphan"))
	assert.Equal(t, 404, w.Code)

	w = doJSON(t, r, "GET", "/api/v1/servers/999/replicas", nil)
	assert.Equal(t, 404, w.Code)
}

func TestProxmoxAliasForcesProvider(t *testing.T) {
	r := setupAPI(t)
	body := masterBody("core-a")
	body["provider"] = "vmware"
	w := doJSON(t, r, "POST", "/api/v1/servers", body)
	require.Equal(t, 201, w.Code)
	master := decodeServer(t, w)

	w = doJSON(t, r, "POST", fmt.Sprintf("/api/v1/servers/%d/replica/proxmox", master.ID), replicaBody("core-a-r1"))
	require.Equal(t, 201, w.Code)
	rep := decodeServer(t, w)
	assert.Equal(t, "proxmox", rep.Provider)

	w = doJSON(t, r, "POST", fmt.Sprintf("/api/v1/servers/%d/replica", master.ID), replicaBody("core-a-r2"))
	require.Equal(t, 201, w.Code)
	rep = decodeServer(t, w)
	assert.Equal(t, "vmware", rep.Provider)
}

func TestCorsPreflight(t *testing.T) {
	r := setupAPI(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/servers", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = doJSON(t, r, "GET", "/api/v1/servers", nil)
	assert.Equal(t, 200, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}
