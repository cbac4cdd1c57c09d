package errors

import "errors"

// ErrActiveConflict 活动学期唯一约束冲突：并发写入的失败方收到此错误，调用方应重试
var ErrActiveConflict = errors.New("当前学期状态已被其他操作修改，请重试")
