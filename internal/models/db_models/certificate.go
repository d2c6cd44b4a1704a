package db_models

// Certificate stores the validation code issued to a user, with a snapshot
// of the display name at issuance time. The unique index on user_id is
// what closes the concurrent double-issuance race: the second writer gets
// a duplicate-key error and re-reads the winner's code.
type Certificate struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"uniqueIndex;column:user_id"`
	UserName  string `gorm:"column:user_name"`
	Code      string `gorm:"uniqueIndex"`
	CreatedAt int64  `gorm:"autoCreateTime"`
}
