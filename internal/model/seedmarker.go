package model

// SeedMarker 记录某个集合是否已做过首次填充
// 有标记的集合即便被清空也不会再次填充（空集合 ≠ 未初始化）
type SeedMarker struct {
	Model
	Collection string `gorm:"type:varchar(50);uniqueIndex;not null" json:"collection"`
}
