package seo

import "strings"

// WordsPerMinute 按成年人平均阅读速度估算
const WordsPerMinute = 200

// ReadingTime 根据正文长度估算阅读分钟数，向下取整，最少 1 分钟
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := words / WordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
