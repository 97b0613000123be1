package lexer

// TokenType 表示token的类型
type TokenType int

const (
	EOF TokenType = iota
	WORD // 一个参数（可能包含引号）
)

// Token 表示一个词法单元
type Token struct {
	Type    TokenType
	Literal string
	Pos     int // 在输入中的起始字节偏移
}

// String 返回token的字符串表示
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case WORD:
		return "WORD"
	default:
		return "UNKNOWN"
	}
}
