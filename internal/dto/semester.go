package dto

// ── 学期模块 DTO ──

// CreateSemesterRequest 创建学期请求
// 创建即激活：新学期总是以 活动/未归档 状态写入，并使此前的活动学期失效
type CreateSemesterRequest struct {
	Name      string   `json:"name"       binding:"required,min=1,max=100"`
	StartDate string   `json:"start_date" binding:"required"` // "2026-09-01"
	EndDate   string   `json:"end_date"   binding:"required"` // "2027-01-15"
	Holidays  []string `json:"holidays"`
}

// UpdateSemesterRequest 更新学期请求（白名单字段，指针为 nil 表示不修改）
type UpdateSemesterRequest struct {
	Name      *string   `json:"name"      binding:"omitempty,min=1,max=100"`
	StartDate *string   `json:"start_date"`
	EndDate   *string   `json:"end_date"`
	Holidays  *[]string `json:"holidays"`
	IsActive  *bool     `json:"is_active"`
}

// ArchiveSemesterRequest 归档学期请求（必须显式指定目标学期）
type ArchiveSemesterRequest struct {
	SemesterID string `json:"semester_id" binding:"required,uuid"`
}

// SemesterResponse 学期信息响应
type SemesterResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	Holidays   []string `json:"holidays"`
	IsActive   bool     `json:"is_active"`
	IsArchived bool     `json:"is_archived"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

// ExpirationCheckResponse 按需过期检查响应
type ExpirationCheckResponse struct {
	Expired  bool              `json:"expired"`
	Semester *SemesterResponse `json:"semester,omitempty"` // expired=true 时为被归档的学期
}
