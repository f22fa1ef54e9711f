package user

import (
	"ngo-admin-system/internal/global/jwt"
	"ngo-admin-system/internal/global/response"
	"ngo-admin-system/internal/model"

	"github.com/gin-gonic/gin"
)

// ViewAsReq 定义角色预览请求的结构体
type ViewAsReq struct {
	Role model.Role `json:"role" binding:"required"`
}

// ViewAs 以指定角色视角预览系统
// 只签发带预览角色的新令牌，账号真实角色不变；传回真实角色本身即退出预览
// 用户增删改接口始终按真实角色判定，预览不会放大权限
func ViewAs(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req ViewAsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定角色预览请求失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if !req.Role.Valid() {
		response.Fail(c, response.ErrValidation.WithTips("角色取值非法"))
		return
	}

	preview := req.Role
	if preview == payload.Role {
		// 回到真实角色，清除预览标记
		preview = ""
	}

	token := jwt.CreateTokenWithPreview(jwt.Payload{
		UserID: payload.UserID,
		Email:  payload.Email,
		Role:   payload.Role,
	}, preview)

	log.Info("角色预览切换",
		"user_id", payload.UserID,
		"real_role", payload.Role,
		"preview_role", req.Role)

	response.Success(c, map[string]interface{}{
		"token":        token,
		"role":         payload.Role,
		"preview_role": preview,
	})
}
