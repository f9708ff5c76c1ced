package slug

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// MaxAttempts slug 后缀重试上限，防止 exists 恒为真时死循环
const MaxAttempts = 10000

// ErrExhausted 超过重试上限仍找不到可用 slug
var ErrExhausted = errors.New("slug 候选已耗尽")

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	separators   = regexp.MustCompile(`[\s-]+`)
)

// ExistsFunc 检查 slug 在所属内容类型命名空间内是否已被占用
type ExistsFunc func(slug string) (bool, error)

// Generate 将标题转换为 URL 安全的 slug
// 全部小写，去掉非字母数字字符，空白与连字符折叠为单个连字符
// 纯函数，空输入或纯符号输入返回空串，由调用方兜底
func Generate(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = invalidChars.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// MakeUnique 在 base 基础上解析出未被占用的 slug
// 占用时依次尝试 base-1、base-2……
// 仅是降低冲突概率的预检，最终一致性靠存储层唯一索引保证
func MakeUnique(base string, exists ExistsFunc) (string, error) {
	used, err := exists(base)
	if err != nil {
		return "", err
	}
	if !used {
		return base, nil
	}

	for i := 1; i <= MaxAttempts; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		used, err = exists(candidate)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}
	}

	return "", ErrExhausted
}
