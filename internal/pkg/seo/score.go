package seo

import (
	"math"
	"strings"
)

// 各子项在总分中的固定权重
const (
	WeightTitle       = 0.25
	WeightDescription = 0.25
	WeightKeywords    = 0.15
	WeightContent     = 0.20
	WeightLinks       = 0.15
)

// ScoreInput 参与打分的元数据快照
type ScoreInput struct {
	Title         string
	Description   string
	Keywords      []string
	Content       string
	InternalLinks int
	BrandName     string
}

// Breakdown 各子项得分，均为 0-100
type Breakdown struct {
	Title       int `json:"title"`
	Description int `json:"description"`
	Keywords    int `json:"keywords"`
	Content     int `json:"content"`
	Links       int `json:"links"`
}

// Result 打分结果，仅用于建议展示，不作为发布门槛
type Result struct {
	Overall         int       `json:"overall"`
	Breakdown       Breakdown `json:"breakdown"`
	Recommendations []string  `json:"recommendations"`
}

// Score 对元数据完整度做启发式加权打分
func Score(in ScoreInput) Result {
	focus := ""
	if len(in.Keywords) > 0 {
		focus = strings.ToLower(strings.TrimSpace(in.Keywords[0]))
	}

	var recs []string

	title := scoreTitle(in.Title, focus, in.BrandName, &recs)
	desc := scoreDescription(in.Description, focus, &recs)
	keywords := scoreKeywords(in.Keywords, &recs)
	content := scoreContent(in.Content, focus, &recs)
	links := scoreLinks(in.InternalLinks, &recs)

	overall := int(math.Round(
		float64(title)*WeightTitle +
			float64(desc)*WeightDescription +
			float64(keywords)*WeightKeywords +
			float64(content)*WeightContent +
			float64(links)*WeightLinks))

	return Result{
		Overall: clamp(overall),
		Breakdown: Breakdown{
			Title:       title,
			Description: desc,
			Keywords:    keywords,
			Content:     content,
			Links:       links,
		},
		Recommendations: recs,
	}
}

// scoreTitle 标题长度 40-60 字符为满档，含关键词和品牌名加分
func scoreTitle(title, focus, brand string, recs *[]string) int {
	if title == "" {
		*recs = append(*recs, "填写 SEO 标题，建议 40-60 个字符")
		return 0
	}

	score := 0
	length := len(title)
	switch {
	case length >= 40 && length <= 60:
		score += 60
	case (length >= 20 && length < 40) || (length > 60 && length <= 70):
		score += 40
		*recs = append(*recs, "SEO 标题长度建议控制在 40-60 个字符")
	default:
		score += 20
		*recs = append(*recs, "SEO 标题过短或过长，建议 40-60 个字符")
	}

	lower := strings.ToLower(title)
	if focus != "" && strings.Contains(lower, focus) {
		score += 30
	} else if focus != "" {
		*recs = append(*recs, "在 SEO 标题中加入核心关键词")
	}
	if brand != "" && strings.Contains(lower, strings.ToLower(brand)) {
		score += 10
	}

	return clamp(score)
}

// scoreDescription 描述 120-160 字符为满档
func scoreDescription(desc, focus string, recs *[]string) int {
	if desc == "" {
		*recs = append(*recs, "填写 SEO 描述，建议 120-160 个字符")
		return 0
	}

	score := 0
	length := len(desc)
	switch {
	case length >= 120 && length <= 160:
		score += 70
	case (length >= 80 && length < 120) || (length > 160 && length <= 200):
		score += 45
		*recs = append(*recs, "SEO 描述长度建议控制在 120-160 个字符")
	default:
		score += 20
		*recs = append(*recs, "SEO 描述过短或过长，建议 120-160 个字符")
	}

	if focus != "" && strings.Contains(strings.ToLower(desc), focus) {
		score += 30
	}

	return clamp(score)
}

// scoreKeywords 关键词 3-8 个为满档
func scoreKeywords(keywords []string, recs *[]string) int {
	count := 0
	for _, k := range keywords {
		if strings.TrimSpace(k) != "" {
			count++
		}
	}

	switch {
	case count == 0:
		*recs = append(*recs, "设置 3-8 个 SEO 关键词")
		return 0
	case count >= 3 && count <= 8:
		return 100
	case count < 3:
		*recs = append(*recs, "SEO 关键词太少，建议 3-8 个")
		return 50
	default:
		*recs = append(*recs, "SEO 关键词太多，建议 3-8 个")
		return 40
	}
}

// scoreContent 正文字数分档，正文出现核心关键词加分
func scoreContent(content, focus string, recs *[]string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		*recs = append(*recs, "补充正文内容")
		return 0
	}

	score := 0
	switch {
	case words >= 1500:
		score += 80
	case words >= 800:
		score += 65
	case words >= 300:
		score += 45
		*recs = append(*recs, "正文建议扩充到 800 字以上")
	default:
		score += 20
		*recs = append(*recs, "正文过短，建议至少 300 字")
	}

	if focus != "" && strings.Contains(strings.ToLower(content), focus) {
		score += 20
	}

	return clamp(score)
}

// scoreLinks 站内链接分档
func scoreLinks(links int, recs *[]string) int {
	switch {
	case links >= 5:
		return 100
	case links >= 3:
		return 80
	case links >= 1:
		return 50
	default:
		*recs = append(*recs, "添加站内链接，提高内容关联度")
		return 0
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
