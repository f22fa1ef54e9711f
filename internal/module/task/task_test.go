package task

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
	(&ModuleTask{}).Init()
	os.Exit(m.Run())
}

func TestToggleTask(t *testing.T) {
	database.InitTest()
	task := model.Task{Title: "Distribute water filters", ProjectID: 1, Completed: false}
	require.NoError(t, database.DB.Create(&task).Error)

	resp := test.DoAuthedRequest(t, ToggleTask, nil, nil, "id", fmt.Sprint(task.ID))
	test.NoError(t, resp)
	var stored model.Task
	require.NoError(t, database.DB.First(&stored, task.ID).Error)
	require.True(t, stored.Completed)

	// 再切一次回到未完成
	resp = test.DoAuthedRequest(t, ToggleTask, nil, nil, "id", fmt.Sprint(task.ID))
	test.NoError(t, resp)
	require.NoError(t, database.DB.First(&stored, task.ID).Error)
	require.False(t, stored.Completed)

	resp = test.DoAuthedRequest(t, ToggleTask, nil, nil, "id", "9999")
	test.ErrorEqual(t, response.ErrNotFound, resp)
}

func TestListTasksByProject(t *testing.T) {
	database.InitTest()
	tasks := []*model.Task{
		{Title: "Survey well location", ProjectID: 1},
		{Title: "Organize book drive", ProjectID: 2},
		{Title: "Weekly report", ProjectID: 2, Completed: true},
	}
	require.NoError(t, database.DB.Create(&tasks).Error)

	resp := test.DoQueryRequest(t, ListTasks, "project_id=2", nil)
	test.NoError(t, resp)
	var listed []model.Task
	test.DecodeData(t, resp, &listed)
	require.Len(t, listed, 2)

	resp = test.DoQueryRequest(t, ListTasks, "", nil)
	test.NoError(t, resp)
	test.DecodeData(t, resp, &listed)
	require.Len(t, listed, 3)
}
