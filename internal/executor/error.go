package executor

import (
	"fmt"
	"strings"
)

// ExecutionErrorType 执行器错误类型
type ExecutionErrorType int

const (
	ExecutionErrorTypeSyntax   ExecutionErrorType = iota // 参数个数不对
	ExecutionErrorTypeResource                           // 文件系统操作失败
	ExecutionErrorTypeSpawn                              // 外部命令无法启动
)

// String 返回错误类型名
func (t ExecutionErrorType) String() string {
	switch t {
	case ExecutionErrorTypeSyntax:
		return "syntax"
	case ExecutionErrorTypeResource:
		return "resource"
	case ExecutionErrorTypeSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// ExecutionError 表示执行器错误
type ExecutionError struct {
	Type        ExecutionErrorType
	Message     string
	Command     string   // 命令名
	Args        []string // 命令参数
	OriginalErr error    // 原始错误（如果可用）
}

// Error 实现 error 接口
func (e *ExecutionError) Error() string {
	cmdStr := e.Command
	if len(e.Args) > 0 {
		cmdStr += " " + strings.Join(e.Args, " ")
	}

	var msg string
	switch e.Type {
	case ExecutionErrorTypeSyntax:
		msg = fmt.Sprintf("语法错误: %s", cmdStr)
		if e.Message != "" {
			msg = fmt.Sprintf("%s: %s", msg, e.Message)
		}
	case ExecutionErrorTypeResource:
		msg = fmt.Sprintf("%s 失败", e.Command)
	case ExecutionErrorTypeSpawn:
		msg = fmt.Sprintf("无法启动命令 '%s'", cmdStr)
	default:
		msg = e.Message
	}

	// 添加原始错误信息
	if e.OriginalErr != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.OriginalErr)
	}

	return msg
}

// Unwrap 返回原始错误，便于 errors.Is / errors.As
func (e *ExecutionError) Unwrap() error {
	return e.OriginalErr
}

// String 返回错误的字符串表示
func (e *ExecutionError) String() string {
	return e.Error()
}

// newExecutionError 创建新的执行器错误
func newExecutionError(errType ExecutionErrorType, message string, command string, args []string, originalErr error) *ExecutionError {
	return &ExecutionError{
		Type:        errType,
		Message:     message,
		Command:     command,
		Args:        args,
		OriginalErr: originalErr,
	}
}
