package database

import (
	"testing"

	"ngo-admin-system/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSeedFirstRun(t *testing.T) {
	InitTest()
	require.NoError(t, Seed(DB))

	for _, tc := range []struct {
		collection string
		m          any
		want       int64
	}{
		{CollectionUsers, &model.User{}, 7},
		{CollectionProjects, &model.Project{}, 4},
		{CollectionDonations, &model.Donation{}, 5},
		{CollectionUploads, &model.Upload{}, 4},
		{CollectionTasks, &model.Task{}, 4},
	} {
		var count int64
		require.NoError(t, DB.Model(tc.m).Count(&count).Error)
		require.Equal(t, tc.want, count, tc.collection)

		var marker model.SeedMarker
		require.NoError(t, DB.Where("collection = ?", tc.collection).First(&marker).Error)
	}
}

func TestSeedIdempotent(t *testing.T) {
	InitTest()
	require.NoError(t, Seed(DB))
	require.NoError(t, Seed(DB))

	var count int64
	require.NoError(t, DB.Model(&model.User{}).Count(&count).Error)
	require.Equal(t, int64(7), count)
}

func TestSeedEmptiedCollectionStaysEmpty(t *testing.T) {
	InitTest()
	require.NoError(t, Seed(DB))

	// 管理员清空集合后，重启不会把演示数据灌回来
	require.NoError(t, DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&model.User{}).Error)
	require.NoError(t, Seed(DB))

	var count int64
	require.NoError(t, DB.Model(&model.User{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestSeedSkipsNonEmptyCollection(t *testing.T) {
	InitTest()
	require.NoError(t, DB.Create(&model.User{Name: "Existing", Email: "existing@example.com", Role: model.RoleAdmin, Status: model.StatusActive}).Error)

	// 已有数据的集合只补标记，不覆盖
	require.NoError(t, Seed(DB))

	var count int64
	require.NoError(t, DB.Model(&model.User{}).Count(&count).Error)
	require.Equal(t, int64(1), count)

	var marker model.SeedMarker
	require.NoError(t, DB.Where("collection = ?", CollectionUsers).First(&marker).Error)
}
