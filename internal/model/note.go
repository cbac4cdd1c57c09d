package model

// Note 笔记表 — 对应 notes
type Note struct {
	NoteID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"note_id"`
	UserID  string `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Title   string `gorm:"type:varchar(200);not null"                     json:"title"`
	Content string `gorm:"type:text;not null;default:''"                  json:"content"`
	Pinned  bool   `gorm:"not null;default:false"                         json:"pinned"`
	BaseModel
}

// TableName 指定表名
func (Note) TableName() string { return "notes" }
