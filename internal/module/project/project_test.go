package project

import (
	"fmt"
	"os"
	"testing"

	"ngo-admin-system/internal/global/database"
	"ngo-admin-system/internal/global/response"
	"ngo-admin-system/internal/model"
	"ngo-admin-system/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	(&ModuleProject{}).Init()
	os.Exit(m.Run())
}

func TestCreateProject(t *testing.T) {
	database.InitTest()

	resp := test.DoRequest(t, CreateProject, ProjectCreateReq{
		Name:       "Clean Water Initiative",
		Initiative: model.InitiativeSustainability,
		Budget:     10000,
	})
	test.NoError(t, resp)

	var created model.Project
	test.DecodeData(t, resp, &created)
	// 状态与封面按缺省补齐
	require.Equal(t, model.ProjectPlanning, created.Status)
	require.NotEmpty(t, created.ImageURL)

	// 同名项目拒绝
	resp = test.DoRequest(t, CreateProject, ProjectCreateReq{
		Name:       "Clean Water Initiative",
		Initiative: model.InitiativeSustainability,
	})
	test.ErrorEqual(t, response.ErrAlreadyExists, resp)
}

func TestCreateProjectWhitespaceName(t *testing.T) {
	database.InitTest()

	// 全空白名称能过 required 校验，封面种子回退到固定值而不是崩掉
	resp := test.DoRequest(t, CreateProject, ProjectCreateReq{Name: "   ", Initiative: model.InitiativeRelief})
	test.NoError(t, resp)

	var created model.Project
	test.DecodeData(t, resp, &created)
	require.Equal(t, "https://picsum.photos/seed/project/600/400", created.ImageURL)
}

func TestCreateProjectValidation(t *testing.T) {
	database.InitTest()

	resp := test.DoRequest(t, CreateProject, ProjectCreateReq{Name: "X", Initiative: "NotAnInitiative"})
	test.ErrorEqual(t, response.ErrValidation, resp)

	resp = test.DoRequest(t, CreateProject, ProjectCreateReq{Name: "X", Initiative: model.InitiativeRelief, Progress: 120})
	test.ErrorEqual(t, response.ErrValidation, resp)

	resp = test.DoRequest(t, CreateProject, ProjectCreateReq{Name: "X", Initiative: model.InitiativeRelief, Budget: -1})
	test.ErrorEqual(t, response.ErrValidation, resp)

	var count int64
	require.NoError(t, database.DB.Model(&model.Project{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestUpdateProject(t *testing.T) {
	database.InitTest()
	p := model.Project{Name: "Education for All", Initiative: model.InitiativeEducational, Status: model.ProjectPlanning, Budget: 20000}
	require.NoError(t, database.DB.Create(&p).Error)

	status := model.ProjectOngoing
	progress := 40
	resp := test.DoAuthedRequest(t, UpdateProject, ProjectUpdateReq{Status: &status, Progress: &progress}, nil, "id", fmt.Sprint(p.ID))
	test.NoError(t, resp)

	var updated model.Project
	require.NoError(t, database.DB.First(&updated, p.ID).Error)
	require.Equal(t, model.ProjectOngoing, updated.Status)
	require.Equal(t, 40, updated.Progress)
	// 未提交的字段保持原值
	require.Equal(t, float64(20000), updated.Budget)

	bad := model.ProjectStatus("Paused")
	resp = test.DoAuthedRequest(t, UpdateProject, ProjectUpdateReq{Status: &bad}, nil, "id", fmt.Sprint(p.ID))
	test.ErrorEqual(t, response.ErrValidation, resp)

	resp = test.DoAuthedRequest(t, UpdateProject, ProjectUpdateReq{Status: &status}, nil, "id", "9999")
	test.ErrorEqual(t, response.ErrNotFound, resp)
}

func TestDeleteProjectKeepsDonations(t *testing.T) {
	database.InitTest()
	p := model.Project{Name: "Healthcare Access", Initiative: model.InitiativeHealthcare}
	require.NoError(t, database.DB.Create(&p).Error)
	require.NoError(t, database.DB.Create(&model.Donation{
		DonorName: "John Doe", DonorEmail: "j@example.com",
		Amount: 100, Currency: model.CurrencyUSD, Date: "2023-10-20",
		ProjectName: "Healthcare Access",
	}).Error)

	resp := test.DoAuthedRequest(t, DeleteProject, nil, nil, "id", fmt.Sprint(p.ID))
	test.NoError(t, resp)

	var projectCount, donationCount int64
	require.NoError(t, database.DB.Model(&model.Project{}).Count(&projectCount).Error)
	require.NoError(t, database.DB.Model(&model.Donation{}).Count(&donationCount).Error)
	require.Zero(t, projectCount)
	// 捐赠记录保留，只是失去关联
	require.Equal(t, int64(1), donationCount)
}
