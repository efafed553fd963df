package repository

type Account struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PassHash string `gorm:"type:varchar(255);not null"`
}

type Item struct {
	ID     uint   `gorm:"primaryKey"`
	Text   string `gorm:"type:text;not null"`
	UserID uint   `gorm:"index;not null"`
}
