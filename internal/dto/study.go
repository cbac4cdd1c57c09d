package dto

// ── 学期作用域资源 DTO（课程表/作业/考试/学期事件）──
//
// semester_id 可省略：省略时由服务层解析为当前活动学期

// CreateSemesterEventRequest 创建学期事件请求
type CreateSemesterEventRequest struct {
	SemesterID string `json:"semester_id" binding:"omitempty,uuid"`
	Title      string `json:"title"       binding:"required,min=1,max=200"`
	EventDate  string `json:"event_date"  binding:"required"`
	EventType  string `json:"event_type"  binding:"omitempty,oneof=class exam assignment holiday other"`
}

// CreateTimetableEntryRequest 创建课程表条目请求
type CreateTimetableEntryRequest struct {
	SemesterID string `json:"semester_id" binding:"omitempty,uuid"`
	Subject    string `json:"subject"     binding:"required,min=1,max=100"`
	DayOfWeek  int    `json:"day_of_week" binding:"required,min=1,max=7"`
	StartTime  string `json:"start_time"  binding:"required,len=5"`
	EndTime    string `json:"end_time"    binding:"required,len=5"`
	Location   string `json:"location"    binding:"omitempty,max=100"`
	Color      string `json:"color"       binding:"omitempty,max=20"`
}

// UpdateTimetableEntryRequest 更新课程表条目请求
type UpdateTimetableEntryRequest struct {
	Subject   *string `json:"subject"     binding:"omitempty,min=1,max=100"`
	DayOfWeek *int    `json:"day_of_week" binding:"omitempty,min=1,max=7"`
	StartTime *string `json:"start_time"  binding:"omitempty,len=5"`
	EndTime   *string `json:"end_time"    binding:"omitempty,len=5"`
	Location  *string `json:"location"    binding:"omitempty,max=100"`
	Color     *string `json:"color"       binding:"omitempty,max=20"`
}

// CreateAssignmentRequest 创建作业请求
type CreateAssignmentRequest struct {
	SemesterID string `json:"semester_id" binding:"omitempty,uuid"`
	Title      string `json:"title"       binding:"required,min=1,max=200"`
	Subject    string `json:"subject"     binding:"omitempty,max=100"`
	DueDate    string `json:"due_date"    binding:"required"`
	Status     string `json:"status"      binding:"omitempty,oneof=pending in_progress completed"`
	Priority   string `json:"priority"    binding:"omitempty,oneof=low medium high"`
}

// UpdateAssignmentRequest 更新作业请求
type UpdateAssignmentRequest struct {
	Title    *string `json:"title"    binding:"omitempty,min=1,max=200"`
	Subject  *string `json:"subject"  binding:"omitempty,max=100"`
	DueDate  *string `json:"due_date"`
	Status   *string `json:"status"   binding:"omitempty,oneof=pending in_progress completed"`
	Priority *string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

// CreateExamRequest 创建考试请求
type CreateExamRequest struct {
	SemesterID string `json:"semester_id" binding:"omitempty,uuid"`
	Subject    string `json:"subject"     binding:"required,min=1,max=100"`
	ExamDate   string `json:"exam_date"   binding:"required"`
	StartTime  string `json:"start_time"  binding:"omitempty,len=5"`
	Location   string `json:"location"    binding:"omitempty,max=100"`
	Notes      string `json:"notes"`
}

// UpdateExamRequest 更新考试请求
type UpdateExamRequest struct {
	Subject   *string `json:"subject"    binding:"omitempty,min=1,max=100"`
	ExamDate  *string `json:"exam_date"`
	StartTime *string `json:"start_time" binding:"omitempty,len=5"`
	Location  *string `json:"location"   binding:"omitempty,max=100"`
	Notes     *string `json:"notes"`
}
