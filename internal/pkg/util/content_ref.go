package util

import (
	"errors"
	"strconv"
	"strings"
)

// FormatContentRef 组装 "kind:id" 形式的内容标识
func FormatContentRef(kind string, contentID uint64) string {
	return kind + ":" + strconv.FormatUint(contentID, 10)
}

// ParseContentRef 解析 "kind:id" 形式的内容标识
func ParseContentRef(ref string) (string, uint64, error) {
	idx := strings.LastIndex(ref, ":")
	if idx <= 0 || idx == len(ref)-1 {
		return "", 0, errors.New("内容标识格式不正确: " + ref)
	}
	id, err := strconv.ParseUint(ref[idx+1:], 10, 64)
	if err != nil {
		return "", 0, errors.New("内容标识格式不正确: " + ref)
	}
	return ref[:idx], id, nil
}
