package external

import (
	"crypto/tls"
	"net/http"
	"time"
)

func NewHttpClient() *http.Client {
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}
	httpClient := &http.Client{Transport: tr, Timeout: 10 * time.Second}
	return httpClient
}
