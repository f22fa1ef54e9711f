package upload

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
	(&ModuleUpload{}).Init()
	os.Exit(m.Run())
}

func TestCreateUpload(t *testing.T) {
	database.InitTest()

	resp := test.DoRequest(t, CreateUpload, UploadCreateReq{
		Name:       "Community Meeting",
		URL:        "https://cdn.example.com/media1.jpg",
		Initiative: model.InitiativeRelief,
	})
	test.NoError(t, resp)

	var created model.Upload
	test.DecodeData(t, resp, &created)
	require.NotEmpty(t, created.UploadedAt)

	// 公益方向必须是已知取值
	resp = test.DoRequest(t, CreateUpload, UploadCreateReq{
		Name:       "Bad",
		URL:        "https://cdn.example.com/bad.jpg",
		Initiative: "NotAnInitiative",
	})
	test.ErrorEqual(t, response.ErrValidation, resp)
}

func TestListUploadsFilter(t *testing.T) {
	database.InitTest()
	uploads := []*model.Upload{
		{Name: "School Opening", URL: "u1", UploadedAt: "2023-09-20", Initiative: model.InitiativeEducational},
		{Name: "Clinic Inauguration", URL: "u2", UploadedAt: "2023-08-15", Initiative: model.InitiativeHealthcare},
		{Name: "Health Camp", URL: "u3", UploadedAt: "2023-10-01", Initiative: model.InitiativeRelief, Initiative2: model.InitiativeHealthcare},
	}
	require.NoError(t, database.DB.Create(&uploads).Error)

	// 第二方向也参与筛选
	resp := test.DoQueryRequest(t, ListUploads, "initiative=Healthcare+Initiatives", nil)
	test.NoError(t, resp)

	var data struct {
		Total   int64          `json:"total"`
		Uploads []model.Upload `json:"uploads"`
	}
	test.DecodeData(t, resp, &data)
	require.Equal(t, int64(2), data.Total)
}

func TestUpdateAndDeleteUpload(t *testing.T) {
	database.InitTest()
	upload := model.Upload{Name: "Workshop", URL: "u1", UploadedAt: "2023-11-10", Initiative: model.InitiativeGenderEquality}
	require.NoError(t, database.DB.Create(&upload).Error)

	name := "Workshop Session"
	resp := test.DoAuthedRequest(t, UpdateUpload, UploadUpdateReq{Name: &name}, nil, "id", fmt.Sprint(upload.ID))
	test.NoError(t, resp)
	var stored model.Upload
	require.NoError(t, database.DB.First(&stored, upload.ID).Error)
	require.Equal(t, "Workshop Session", stored.Name)
	// 未提交的字段保持原值
	require.Equal(t, model.InitiativeGenderEquality, stored.Initiative)

	resp = test.DoAuthedRequest(t, DeleteUpload, nil, nil, "id", fmt.Sprint(upload.ID))
	test.NoError(t, resp)
	var count int64
	require.NoError(t, database.DB.Model(&model.Upload{}).Count(&count).Error)
	require.Zero(t, count)

	resp = test.DoAuthedRequest(t, DeleteUpload, nil, nil, "id", fmt.Sprint(upload.ID))
	test.ErrorEqual(t, response.ErrNotFound, resp)
}
