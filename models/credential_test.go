package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCredential(name string) *Credential {
	return &Credential{
		Name:       name,
		ApiUser:    "automation@pve",
		ApiToken:   "0b7edd6f-7b54-4b8f-8c0a-16e7ec1b32f7",
		ApiUrl:     "https://pve.local:8006/api2/json",
		ApiTokenID: "automation",
	}
}

func TestAddCredential(t *testing.T) {
	reg := newTestRegistry(t)
	c := newCredential("lab")
	require.NoError(t, reg.AddCredential(c))

	creds, err := reg.FetchCredentials()
	require.NoError(t, err)
	require.Len(t, creds, 1)
	assert.Equal(t, "lab", creds[0].Name)

	// api_token永不进入响应
	out, err := json.Marshal(creds)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "api_token\":")
	assert.NotContains(t, string(out), c.ApiToken)
}

func TestAddCredentialDuplicateName(t *testing.T) {
	reg := newTestRegistry(t)
	require.NoError(t, reg.AddCredential(newCredential("lab")))
	assert.Equal(t, ErrConflict, reg.AddCredential(newCredential("lab")))
}
