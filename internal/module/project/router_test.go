package project

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ngo-admin-system/internal/global/database"
	"ngo-admin-system/internal/global/jwt"
	"ngo-admin-system/internal/global/response"
	"ngo-admin-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func doRouted(t *testing.T, r *gin.Engine, method, target, token string) (resp response.ResponseBody) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return
}

// 经完整路由（含鉴权中间件）验证：非管理角色的写操作被拒且存储不变
func TestProjectRoutesManageGate(t *testing.T) {
	database.InitTest()
	p := model.Project{Name: "Clean Water Initiative", Initiative: model.InitiativeSustainability}
	require.NoError(t, database.DB.Create(&p).Error)

	r := gin.New()
	(&ModuleProject{}).InitRouter(r.Group("/api"))

	target := fmt.Sprintf("/api/project/delete/%d", p.ID)

	// 缺令牌直接拒绝
	resp := doRouted(t, r, http.MethodDelete, target, "")
	require.Equal(t, response.ErrTokenInvalid.Code, resp.Code)

	// Volunteer 在路由层被拒，行数不变
	volunteerToken := jwt.CreateToken(jwt.Payload{UserID: 3, Email: "casey@example.com", Role: model.RoleVolunteer})
	resp = doRouted(t, r, http.MethodDelete, target, volunteerToken)
	require.Equal(t, response.ErrForbidden.Code, resp.Code)

	var count int64
	require.NoError(t, database.DB.Model(&model.Project{}).Count(&count).Error)
	require.Equal(t, int64(1), count)

	// Manager 放行，删除生效
	managerToken := jwt.CreateToken(jwt.Payload{UserID: 2, Email: "jordan@example.com", Role: model.RoleManager})
	resp = doRouted(t, r, http.MethodDelete, target, managerToken)
	require.Equal(t, int32(200), resp.Code)

	require.NoError(t, database.DB.Model(&model.Project{}).Count(&count).Error)
	require.Zero(t, count)
}
