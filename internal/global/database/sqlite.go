package database

import (
	"fmt"
	"sync/atomic"

	"ngo-admin-system/tools"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var testDBSeq atomic.Int64

// InitTest 使用内存 sqlite 初始化数据库，仅供测试
// 每次调用都是一个全新的空库，不做演示数据填充
// cache=shared 配合独立库名，保证同一测试内多连接看到同一份数据
func InitTest() {
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		Logger:         logger.Discard,
	})
	tools.PanicOnErr(err)
	DB = db

	tools.PanicOnErr(DB.AutoMigrate(autoMigrateModels...))
}
