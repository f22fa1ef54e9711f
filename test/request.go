package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ngo-admin-system/internal/global/jwt"
	"ngo-admin-system/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func DoRequest(t *testing.T, handlerFunc gin.HandlerFunc, request any) (resp response.ResponseBody) {
	return DoAuthedRequest(t, handlerFunc, request, nil)
}

// DoAuthedRequest 以指定身份调用 handler
// params 为成对出现的路由参数，形如 "id", "3"
func DoAuthedRequest(t *testing.T, handlerFunc gin.HandlerFunc, request any, claims *jwt.Claims, params ...string) (resp response.ResponseBody) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	requestBytes, err := json.Marshal(request)
	require.NoError(t, err)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader(requestBytes))
	if claims != nil {
		c.Set("payload", claims)
	}
	require.Zero(t, len(params)%2)
	for i := 0; i < len(params); i += 2 {
		c.Params = append(c.Params, gin.Param{Key: params[i], Value: params[i+1]})
	}
	handlerFunc(c)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return
}

// DoQueryRequest 以 GET 形式调用 handler，rawQuery 形如 "page=1&name=x"
func DoQueryRequest(t *testing.T, handlerFunc gin.HandlerFunc, rawQuery string, claims *jwt.Claims) (resp response.ResponseBody) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	target := "/test"
	if rawQuery != "" {
		target += "?" + rawQuery
	}
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	if claims != nil {
		c.Set("payload", claims)
	}
	handlerFunc(c)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return
}
