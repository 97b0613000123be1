package shell

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"gocmd/internal/executor"
)

// ErrorReporter 错误报告器
type ErrorReporter struct {
	out           io.Writer
	scriptPath    string // 脚本文件路径（如果是在执行脚本）
	lineNum       int    // 当前行号
	isInteractive bool   // 是否是交互式模式
	prefixColor   *color.Color
	detailColor   *color.Color
}

// NewErrorReporter 创建新的错误报告器
func NewErrorReporter(out io.Writer, scriptPath string, isInteractive bool) *ErrorReporter {
	if out == nil {
		out = os.Stderr
	}
	return &ErrorReporter{
		out:           out,
		scriptPath:    scriptPath,
		isInteractive: isInteractive,
		prefixColor:   color.New(color.FgRed, color.Bold),
		detailColor:   color.New(color.FgYellow),
	}
}

// SetColor 开启或关闭颜色
// 开启时仍然遵循 fatih/color 的终端检测，输出不是终端时不会着色
func (er *ErrorReporter) SetColor(enabled bool) {
	if enabled {
		return
	}
	er.prefixColor.DisableColor()
	er.detailColor.DisableColor()
}

// SetLineNum 设置当前行号
func (er *ErrorReporter) SetLineNum(lineNum int) {
	er.lineNum = lineNum
}

// SetScript 设置当前执行的脚本路径，为空表示不在执行脚本
func (er *ErrorReporter) SetScript(scriptPath string) {
	er.scriptPath = scriptPath
}

// ReportError 报告错误
func (er *ErrorReporter) ReportError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(er.out, er.Format(err))
}

// Format 根据错误类型格式化错误消息
// 格式：gocmd: [脚本: ][第N行: ]错误消息
func (er *ErrorReporter) Format(err error) string {
	prefix := er.prefixColor.Sprint(er.prefix())

	var execErr *executor.ExecutionError
	if errors.As(err, &execErr) {
		return fmt.Sprintf("%s: %s", prefix, er.formatExecutionError(execErr))
	}
	return fmt.Sprintf("%s: %v", prefix, err)
}

// prefix 错误消息前缀
func (er *ErrorReporter) prefix() string {
	if er.scriptPath != "" {
		if er.lineNum > 0 {
			return fmt.Sprintf("gocmd: %s: 第%d行", er.scriptPath, er.lineNum)
		}
		return fmt.Sprintf("gocmd: %s", er.scriptPath)
	}
	if !er.isInteractive && er.lineNum > 0 {
		// 非交互式模式：gocmd: 第N行: 错误消息
		return fmt.Sprintf("gocmd: 第%d行", er.lineNum)
	}
	return "gocmd"
}

// formatExecutionError 格式化执行器错误，系统给出的原因单独着色
func (er *ErrorReporter) formatExecutionError(e *executor.ExecutionError) string {
	if e.OriginalErr == nil {
		return e.Error()
	}
	head := *e
	head.OriginalErr = nil
	return fmt.Sprintf("%s: %s", head.Error(), er.detailColor.Sprint(e.OriginalErr.Error()))
}
