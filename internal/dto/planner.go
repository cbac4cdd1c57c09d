package dto

// ── 独立个人资源 DTO（待办/笔记/习惯/日程）──

// CreateTaskRequest 创建待办请求
type CreateTaskRequest struct {
	Title       string `json:"title"       binding:"required,min=1,max=200"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"` // 可空
	Priority    string `json:"priority"    binding:"omitempty,oneof=low medium high"`
}

// UpdateTaskRequest 更新待办请求
type UpdateTaskRequest struct {
	Title       *string `json:"title"       binding:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Priority    *string `json:"priority"    binding:"omitempty,oneof=low medium high"`
	Completed   *bool   `json:"completed"`
}

// CreateNoteRequest 创建笔记请求
type CreateNoteRequest struct {
	Title   string `json:"title"   binding:"required,min=1,max=200"`
	Content string `json:"content"`
	Pinned  bool   `json:"pinned"`
}

// UpdateNoteRequest 更新笔记请求
type UpdateNoteRequest struct {
	Title   *string `json:"title"   binding:"omitempty,min=1,max=200"`
	Content *string `json:"content"`
	Pinned  *bool   `json:"pinned"`
}

// CreateHabitRequest 创建习惯请求
type CreateHabitRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Icon string `json:"icon" binding:"omitempty,max=50"`
}

// UpdateHabitRequest 更新习惯请求
type UpdateHabitRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=100"`
	Icon *string `json:"icon" binding:"omitempty,max=50"`
}

// CreateEventRequest 创建日程请求
type CreateEventRequest struct {
	Title       string `json:"title"      binding:"required,min=1,max=200"`
	EventDate   string `json:"event_date" binding:"required"`
	Location    string `json:"location"   binding:"omitempty,max=100"`
	Description string `json:"description"`
}

// UpdateEventRequest 更新日程请求
type UpdateEventRequest struct {
	Title       *string `json:"title"      binding:"omitempty,min=1,max=200"`
	EventDate   *string `json:"event_date"`
	Location    *string `json:"location"   binding:"omitempty,max=100"`
	Description *string `json:"description"`
}
