package user

import (
	"strconv"

	"ngo-admin-system/internal/global/database"
	"ngo-admin-system/internal/global/jwt"
	"ngo-admin-system/internal/global/notify"
	"ngo-admin-system/internal/global/response"
	"ngo-admin-system/internal/model"
	"ngo-admin-system/internal/policy"
	"ngo-admin-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// actorFromPayload 从令牌负载构造权限判定用的操作者
// 用真实角色而不是预览角色：预览视角不能放大用户管理权限
func actorFromPayload(payload *jwt.Claims) *model.User {
	actor := &model.User{Role: payload.Role}
	actor.ID = payload.UserID
	return actor
}

// ListUsers 返回用户列表
func ListUsers(c *gin.Context) {
	var users []model.User
	if err := database.DB.Order("id").Find(&users).Error; err != nil {
		log.Error("数据库查询失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, users)
}

// CreateUserReq 定义创建用户请求的结构体
type CreateUserReq struct {
	Name     string     `json:"name" binding:"required"`
	Email    string     `json:"email" binding:"required,email"`
	Role     model.Role `json:"role" binding:"required"`
	Password string     `json:"password"` // 可选，缺省时账号暂不可登录
	Avatar   string     `json:"avatar"`   // 可选，缺省按姓名生成
}

// CreateUser 处理创建用户请求
// 先校验操作者是否有创建权限，再校验目标角色是否在可分配范围内
func CreateUser(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	// Donor 没有创建用户入口
	if !policy.CanCreateUser(payload.Role) {
		log.Warn("无权创建用户", "user_id", payload.UserID, "role", payload.Role)
		response.Fail(c, response.ErrForbidden)
		return
	}

	var req CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定创建用户请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	// 目标角色必须在操作者可分配范围内
	if !req.Role.Valid() || !policy.RoleAssignable(payload.Role, req.Role) {
		log.Warn("角色不可分配", "user_id", payload.UserID, "actor_role", payload.Role, "target_role", req.Role)
		response.Fail(c, response.ErrValidation.WithTips("角色不可分配"))
		return
	}

	// 检查邮箱是否已存在
	var existingUser model.User
	err := database.DB.Where("email = ?", req.Email).First(&existingUser).Error
	if err == nil {
		log.Warn("用户已存在", "email", req.Email)
		response.Fail(c, response.ErrAlreadyExists)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("数据库查询失败", "error", err, "email", req.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	user := model.User{
		Name:   req.Name,
		Email:  req.Email,
		Avatar: req.Avatar,
		Role:   req.Role,
		Status: model.StatusActive,
	}
	if user.Avatar == "" {
		user.Avatar = defaultAvatar(req.Name)
	}
	if req.Password != "" {
		user.Password = tools.PasswordEncrypt(req.Password)
	}

	if err := database.DB.Create(&user).Error; err != nil {
		log.Error("创建用户失败", "error", err, "email", req.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	notify.CollectionChanged(c.Request.Context(), database.CollectionUsers)

	log.Info("用户创建成功",
		"user_id", user.ID,
		"email", user.Email,
		"role", user.Role,
		"created_by", payload.UserID)

	response.Success(c, user)
}

// UpdateUserReq 定义更新用户请求的结构体，使用指针类型支持部分更新
type UpdateUserReq struct {
	Name     *string           `json:"name"`
	Email    *string           `json:"email"`
	Avatar   *string           `json:"avatar"`
	Role     *model.Role       `json:"role"`
	Status   *model.UserStatus `json:"status"`
	Password *string           `json:"password"` // 缺省或空串时保留原密码
}

// UpdateUser 处理更新用户请求
// ID 不可变；角色与状态变更复用编辑删除同一套判定
func UpdateUser(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var req UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定更新用户请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	// 查询目标用户
	var target model.User
	err = database.DB.First(&target, uint(id)).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("用户不存在", "target_id", id)
		response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "target_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// 权限判定先于任何写入
	actor := actorFromPayload(payload)
	if !policy.CanEditOrDeleteUser(actor, &target) {
		log.Warn("无权编辑用户",
			"user_id", payload.UserID,
			"actor_role", payload.Role,
			"target_id", target.ID,
			"target_role", target.Role)
		response.Fail(c, response.ErrForbidden)
		return
	}

	if req.Name != nil {
		target.Name = *req.Name
	}
	if req.Email != nil {
		target.Email = *req.Email
	}
	if req.Avatar != nil {
		target.Avatar = *req.Avatar
	}
	if req.Role != nil && *req.Role != target.Role {
		// 改角色走角色变更判定，且新角色必须可分配
		if !policy.CanChangeRole(actor, &target) || !req.Role.Valid() || !policy.RoleAssignable(payload.Role, *req.Role) {
			response.Fail(c, response.ErrValidation.WithTips("角色不可分配"))
			return
		}
		target.Role = *req.Role
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			response.Fail(c, response.ErrValidation.WithTips("状态取值非法"))
			return
		}
		target.Status = *req.Status
	}
	// 空密码表示保留原密码，不会清空
	if req.Password != nil && *req.Password != "" {
		target.Password = tools.PasswordEncrypt(*req.Password)
	}

	if err := database.DB.Save(&target).Error; err != nil {
		log.Error("更新用户失败", "error", err, "target_id", target.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	notify.CollectionChanged(c.Request.Context(), database.CollectionUsers)

	log.Info("用户更新成功",
		"target_id", target.ID,
		"updated_by", payload.UserID)

	response.Success(c, target)
}

// DeleteUser 处理删除用户请求
func DeleteUser(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	// 查询目标用户，不存在时必须显式报错而不是静默成功
	var target model.User
	err = database.DB.First(&target, uint(id)).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("用户不存在", "target_id", id)
		response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "target_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !policy.CanEditOrDeleteUser(actorFromPayload(payload), &target) {
		log.Warn("无权删除用户",
			"user_id", payload.UserID,
			"actor_role", payload.Role,
			"target_id", target.ID,
			"target_role", target.Role)
		response.Fail(c, response.ErrForbidden)
		return
	}

	if err := database.DB.Delete(&target).Error; err != nil {
		log.Error("删除用户失败", "error", err, "target_id", target.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	notify.CollectionChanged(c.Request.Context(), database.CollectionUsers)

	log.Info("用户删除成功",
		"target_id", target.ID,
		"deleted_by", payload.UserID)

	response.Success(c)
}
