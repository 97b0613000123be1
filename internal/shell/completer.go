package shell

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gocmd/internal/builtin"
)

// Completer 实现readline的自动补全接口
type Completer struct {
	commands []string
}

// NewCompleter 创建新的补全器
func NewCompleter() *Completer {
	commands := builtin.Names()
	sort.Strings(commands)
	return &Completer{commands: commands}
}

// Do 执行自动补全
// 返回候选项中除去已输入部分之后的后缀，以及已输入部分的长度
func (c *Completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	lineStr := string(line[:pos])

	// 分割命令行，末尾是空格时表示开始输入新的参数
	parts := strings.Fields(lineStr)
	current := ""
	if len(parts) > 0 && !strings.HasSuffix(lineStr, " ") {
		current = parts[len(parts)-1]
		parts = parts[:len(parts)-1]
	}

	switch {
	case len(parts) == 0:
		return c.completeCommands(current)
	case len(parts) == 1 && parts[0] == "rm":
		return completeWords([]string{"-rf"}, current)
	default:
		return completeFiles(current)
	}
}

// completeCommands 补全命令名
func (c *Completer) completeCommands(prefix string) ([][]rune, int) {
	return completeWords(c.commands, prefix)
}

// completeWords 从固定的候选词中补全，补全后追加一个空格
func completeWords(words []string, prefix string) ([][]rune, int) {
	var matches [][]rune
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			matches = append(matches, []rune(w[len(prefix):]+" "))
		}
	}
	return matches, len([]rune(prefix))
}

// completeFiles 补全文件名，目录追加 /
func completeFiles(prefix string) ([][]rune, int) {
	var matches [][]rune

	dir := "."
	pattern := prefix
	if strings.Contains(prefix, "/") {
		dir = filepath.Dir(prefix)
		pattern = prefix[strings.LastIndex(prefix, "/")+1:]
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, len([]rune(pattern))
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, pattern) {
			continue
		}
		// 不以 . 开头时不补全隐藏文件
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(pattern, ".") {
			continue
		}
		suffix := name[len(pattern):]
		if entry.IsDir() {
			suffix += "/"
		} else {
			suffix += " "
		}
		matches = append(matches, []rune(suffix))
	}

	return matches, len([]rune(pattern))
}
