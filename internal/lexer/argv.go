package lexer

import "strings"

// ArgumentVector 一条命令的参数序列
// 第一个元素是命令名，其余为操作数。构造后不可修改。
type ArgumentVector struct {
	tokens []string
}

// NewArgumentVector 由给定的参数创建参数序列（会复制一份）
func NewArgumentVector(tokens ...string) ArgumentVector {
	if len(tokens) == 0 {
		return ArgumentVector{}
	}
	cp := make([]string, len(tokens))
	copy(cp, tokens)
	return ArgumentVector{tokens: cp}
}

// Len 返回参数个数
func (v ArgumentVector) Len() int {
	return len(v.tokens)
}

// IsEmpty 是否没有任何参数
func (v ArgumentVector) IsEmpty() bool {
	return len(v.tokens) == 0
}

// Name 返回命令名，空序列返回 ""
func (v ArgumentVector) Name() string {
	return v.Arg(0)
}

// Arg 返回第i个参数，越界时返回 ""
func (v ArgumentVector) Arg(i int) string {
	if i < 0 || i >= len(v.tokens) {
		return ""
	}
	return v.tokens[i]
}

// Args 返回所有参数的副本
func (v ArgumentVector) Args() []string {
	cp := make([]string, len(v.tokens))
	copy(cp, v.tokens)
	return cp
}

// String 用空格连接所有参数
func (v ArgumentVector) String() string {
	return strings.Join(v.tokens, " ")
}
