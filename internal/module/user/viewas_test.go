package user

import (
	"testing"

	"ngo-admin-system/internal/global/database"
	"ngo-admin-system/internal/global/jwt"
	"ngo-admin-system/internal/global/response"
	"ngo-admin-system/internal/model"
	"ngo-admin-system/test"

	"github.com/stretchr/testify/require"
)

func TestViewAs(t *testing.T) {
	database.InitTest()
	admin := mustCreateUser(t, "Alex Ray", "alex@example.com", model.RoleAdmin, model.StatusActive)

	resp := test.DoAuthedRequest(t, ViewAs, ViewAsReq{Role: model.RoleVolunteer}, claimsFor(admin))
	test.NoError(t, resp)

	var data struct {
		Token       string     `json:"token"`
		Role        model.Role `json:"role"`
		PreviewRole model.Role `json:"preview_role"`
	}
	test.DecodeData(t, resp, &data)
	require.Equal(t, model.RoleAdmin, data.Role)
	require.Equal(t, model.RoleVolunteer, data.PreviewRole)

	// 新令牌里真实角色不变，生效角色是预览角色
	claims, ok := jwt.ParseToken(data.Token)
	require.True(t, ok)
	require.Equal(t, model.RoleAdmin, claims.Role)
	require.Equal(t, model.RoleVolunteer, claims.EffectiveRole())

	// 账号真实角色在库里未被改动
	var stored model.User
	require.NoError(t, database.DB.First(&stored, admin.ID).Error)
	require.Equal(t, model.RoleAdmin, stored.Role)
}

func TestViewAsBackToRealRole(t *testing.T) {
	database.InitTest()
	admin := mustCreateUser(t, "Alex Ray", "alex@example.com", model.RoleAdmin, model.StatusActive)

	// 传回真实角色即退出预览
	claims := claimsFor(admin)
	claims.PreviewRole = model.RoleDonor
	resp := test.DoAuthedRequest(t, ViewAs, ViewAsReq{Role: model.RoleAdmin}, claims)
	test.NoError(t, resp)

	var data struct {
		Token       string     `json:"token"`
		PreviewRole model.Role `json:"preview_role"`
	}
	test.DecodeData(t, resp, &data)
	require.Empty(t, data.PreviewRole)

	parsed, ok := jwt.ParseToken(data.Token)
	require.True(t, ok)
	require.Equal(t, model.RoleAdmin, parsed.EffectiveRole())
}

func TestViewAsInvalidRole(t *testing.T) {
	database.InitTest()
	admin := mustCreateUser(t, "Alex Ray", "alex@example.com", model.RoleAdmin, model.StatusActive)

	resp := test.DoAuthedRequest(t, ViewAs, ViewAsReq{Role: "SuperUser"}, claimsFor(admin))
	test.ErrorEqual(t, response.ErrValidation, resp)
}
