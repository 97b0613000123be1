// Package lexer 提供词法分析功能，将一条命令字符串分解为参数序列
package lexer

import (
	"strings"
)

// Lexer 词法分析器
// 按空格切分参数，双引号内的空格不切分。引号本身保留在参数中。
type Lexer struct {
	input        string
	position     int  // 当前位置
	readPosition int  // 读取位置
	ch           byte // 当前字符
	inQuotes     bool // 是否在双引号内
}

// New 创建新的词法分析器
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar 读取下一个字符
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

// atEnd 是否已读完输入
// 输入中可能包含 0 字节，所以不能只看 l.ch
func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

// NextToken 读取下一个token
func (l *Lexer) NextToken() Token {
	l.skipSpaces()

	if l.atEnd() {
		return Token{Type: EOF, Pos: l.position}
	}

	return l.readWord()
}

// skipSpaces 跳过引号外的连续空格
// 只有空格是分隔符，制表符等按普通字符处理
func (l *Lexer) skipSpaces() {
	for !l.atEnd() && l.ch == ' ' && !l.inQuotes {
		l.readChar()
	}
}

// readWord 读取一个参数，直到遇到引号外的空格或输入结束
func (l *Lexer) readWord() Token {
	start := l.position
	var b strings.Builder

	for !l.atEnd() {
		if l.ch == '"' {
			l.inQuotes = !l.inQuotes
		} else if l.ch == ' ' && !l.inQuotes {
			break
		}
		b.WriteByte(l.ch)
		l.readChar()
	}

	return Token{Type: WORD, Literal: b.String(), Pos: start}
}

// InQuotes 报告当前是否处于未闭合的双引号中
// 读到 EOF 后仍为 true 说明输入中有未闭合的引号，此时剩余部分被当作一个参数
func (l *Lexer) InQuotes() bool {
	return l.inQuotes
}

// Tokenize 将命令字符串切分为参数序列
// 空字符串或全是空格的输入返回空序列
func Tokenize(command string) ArgumentVector {
	args, _ := TokenizeWithState(command)
	return args
}

// TokenizeWithState 与 Tokenize 相同，另外返回输入结束时是否仍有未闭合的引号
func TokenizeWithState(command string) (ArgumentVector, bool) {
	l := New(command)
	var tokens []string
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			break
		}
		tokens = append(tokens, tok.Literal)
	}
	return ArgumentVector{tokens: tokens}, l.InQuotes()
}
