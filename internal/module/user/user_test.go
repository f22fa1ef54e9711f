package user

import (
	"os"
	"testing"

	"ngo-admin-system/internal/global/database"
	"ngo-admin-system/internal/global/jwt"
	"ngo-admin-system/internal/global/response"
	"ngo-admin-system/internal/model"
	"ngo-admin-system/test"
	"ngo-admin-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	(&ModuleUser{}).Init()
	os.Exit(m.Run())
}

const testPassword = "Passw0rd!"

func mustCreateUser(t *testing.T, name, email string, role model.Role, status model.UserStatus) *model.User {
	t.Helper()
	u := &model.User{
		Name:     name,
		Email:    email,
		Password: tools.PasswordEncrypt(testPassword),
		Role:     role,
		Status:   status,
	}
	require.NoError(t, database.DB.Create(u).Error)
	return u
}

func claimsFor(u *model.User) *jwt.Claims {
	return &jwt.Claims{Payload: jwt.Payload{UserID: u.ID, Email: u.Email, Role: u.Role}}
}

func TestLogin(t *testing.T) {
	database.InitTest()
	mustCreateUser(t, "Alex Ray", "alex@example.com", model.RoleAdmin, model.StatusActive)
	mustCreateUser(t, "Morgan Brown", "morgan@example.com", model.RoleDonor, model.StatusInactive)

	resp := test.DoRequest(t, Login, LoginReq{Email: "alex@example.com", Password: testPassword})
	test.NoError(t, resp)
	var data struct {
		Token string     `json:"token"`
		User  model.User `json:"user"`
	}
	test.DecodeData(t, resp, &data)
	require.NotEmpty(t, data.Token)
	require.Equal(t, model.RoleAdmin, data.User.Role)

	resp = test.DoRequest(t, Login, LoginReq{Email: "nobody@example.com", Password: testPassword})
	test.ErrorEqual(t, response.ErrNotFound, resp)

	// 停用账号即使密码正确也拒绝
	resp = test.DoRequest(t, Login, LoginReq{Email: "morgan@example.com", Password: testPassword})
	test.ErrorEqual(t, response.ErrInactiveAccount, resp)

	resp = test.DoRequest(t, Login, LoginReq{Email: "alex@example.com", Password: "wrong-password"})
	test.ErrorEqual(t, response.ErrInvalidPassword, resp)
}

func TestRegister(t *testing.T) {
	database.InitTest()

	resp := test.DoRequest(t, Register, RegisterReq{Name: "New Donor", Email: "donor@example.com", Password: testPassword})
	test.NoError(t, resp)

	// 开放注册一律落 Donor 角色
	var created model.User
	require.NoError(t, database.DB.Where("email = ?", "donor@example.com").First(&created).Error)
	require.Equal(t, model.RoleDonor, created.Role)
	require.Equal(t, model.StatusActive, created.Status)
	require.NotEmpty(t, created.Avatar)

	resp = test.DoRequest(t, Register, RegisterReq{Name: "Dup", Email: "donor@example.com", Password: testPassword})
	test.ErrorEqual(t, response.ErrAlreadyExists, resp)
}

func TestRegisterWhitespaceName(t *testing.T) {
	database.InitTest()

	// 全空白姓名能过 required 校验，头像种子回退到固定值而不是崩掉
	resp := test.DoRequest(t, Register, RegisterReq{Name: "   ", Email: "blank@example.com", Password: testPassword})
	test.NoError(t, resp)

	var created model.User
	require.NoError(t, database.DB.Where("email = ?", "blank@example.com").First(&created).Error)
	require.Equal(t, "https://picsum.photos/seed/user/100/100", created.Avatar)
}

func TestRegisterPasswordStrength(t *testing.T) {
	database.InitTest()

	for _, weak := range []string{"short1!", "NoDigits!", "NoSpecial1", "12345678!"} {
		resp := test.DoRequest(t, Register, RegisterReq{Name: "Weak", Email: "weak@example.com", Password: weak})
		test.ErrorEqual(t, response.ErrInvalidRequest, resp)
	}

	var count int64
	require.NoError(t, database.DB.Model(&model.User{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestChangePassword(t *testing.T) {
	database.InitTest()
	u := mustCreateUser(t, "Casey Smith", "casey@example.com", model.RoleVolunteer, model.StatusActive)

	resp := test.DoAuthedRequest(t, ChangePassword, ChangePasswordReq{OldPassword: "wrong", NewPassword: "NewPass1!"}, claimsFor(u))
	test.ErrorEqual(t, response.ErrInvalidPassword, resp)

	resp = test.DoAuthedRequest(t, ChangePassword, ChangePasswordReq{OldPassword: testPassword, NewPassword: "NewPass1!"}, claimsFor(u))
	test.NoError(t, resp)

	// 新密码即刻生效
	resp = test.DoRequest(t, Login, LoginReq{Email: "casey@example.com", Password: "NewPass1!"})
	test.NoError(t, resp)
	resp = test.DoRequest(t, Login, LoginReq{Email: "casey@example.com", Password: testPassword})
	test.ErrorEqual(t, response.ErrInvalidPassword, resp)
}

func TestMe(t *testing.T) {
	database.InitTest()
	u := mustCreateUser(t, "Jordan Lee", "jordan@example.com", model.RoleManager, model.StatusActive)

	claims := claimsFor(u)
	claims.PreviewRole = model.RoleIntern
	resp := test.DoAuthedRequest(t, Me, nil, claims)
	test.NoError(t, resp)

	var data struct {
		User        model.User `json:"user"`
		PreviewRole model.Role `json:"preview_role"`
	}
	test.DecodeData(t, resp, &data)
	require.Equal(t, u.Email, data.User.Email)
	require.Equal(t, model.RoleManager, data.User.Role)
	require.Equal(t, model.RoleIntern, data.PreviewRole)
}
