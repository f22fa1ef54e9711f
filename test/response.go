package test

import (
	"encoding/json"
	"testing"

	"ngo-admin-system/internal/global/response"

	"github.com/stretchr/testify/require"
)

// ErrorEqual 按错误码断言失败响应（WithTips 会改写 msg，不比对）
func ErrorEqual(t *testing.T, expected *response.Error, resp response.ResponseBody) {
	require.Equal(t, expected.Code, resp.Code)
}

func NoError(t *testing.T, resp response.ResponseBody) {
	require.Equal(t, int32(200), resp.Code, "msg: %s", resp.Msg)
}

// DecodeData 将响应 Data 解到目标结构体
func DecodeData(t *testing.T, resp response.ResponseBody, out any) {
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}
