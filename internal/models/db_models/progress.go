package db_models

// Progress marks one (user, module) pair as completed or not.
type Progress struct {
	UserID     string `gorm:"primaryKey;column:user_id"`
	ModuleSlug string `gorm:"primaryKey;column:module_slug"`
	Completed  bool
	UpdatedAt  int64 `gorm:"autoUpdateTime"`
}

func (Progress) TableName() string { return "progress" }
