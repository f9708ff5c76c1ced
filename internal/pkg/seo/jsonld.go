package seo

import (
	"time"

	"github.com/goccy/go-json"
)

// ArticleLD schema.org Article 结构化数据
type ArticleLD struct {
	Context       string   `json:"@context"`
	Type          string   `json:"@type"`
	Headline      string   `json:"headline"`
	Description   string   `json:"description,omitempty"`
	Keywords      []string `json:"keywords,omitempty"`
	Author        PersonLD `json:"author"`
	DatePublished string   `json:"datePublished,omitempty"`
	DateModified  string   `json:"dateModified,omitempty"`
}

// SoftwareApplicationLD schema.org SoftwareApplication 结构化数据，用于工具页
type SoftwareApplicationLD struct {
	Context         string       `json:"@context"`
	Type            string       `json:"@type"`
	Name            string       `json:"name"`
	Description     string       `json:"description,omitempty"`
	URL             string       `json:"url,omitempty"`
	ApplicationType string       `json:"applicationCategory,omitempty"`
	Rating          *AggregateLD `json:"aggregateRating,omitempty"`
}

type PersonLD struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// AggregateLD 评分聚合
type AggregateLD struct {
	Type        string  `json:"@type"`
	RatingValue float64 `json:"ratingValue"`
	ReviewCount int64   `json:"reviewCount"`
}

// BuildArticleLD 为博客生成 JSON-LD 文本
func BuildArticleLD(headline, description, author string, keywords []string, publishedAt, updatedAt *time.Time) (string, error) {
	ld := ArticleLD{
		Context:     "https://schema.org",
		Type:        "Article",
		Headline:    headline,
		Description: description,
		Keywords:    keywords,
		Author:      PersonLD{Type: "Person", Name: author},
	}
	if publishedAt != nil {
		ld.DatePublished = publishedAt.Format(time.RFC3339)
	}
	if updatedAt != nil {
		ld.DateModified = updatedAt.Format(time.RFC3339)
	}

	out, err := json.Marshal(ld)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// BuildSoftwareApplicationLD 为工具生成 JSON-LD 文本
// 无评价时省略 aggregateRating，避免输出 0 分误导爬虫
func BuildSoftwareApplicationLD(name, description, url, category string, rating float64, reviewCount int64) (string, error) {
	ld := SoftwareApplicationLD{
		Context:         "https://schema.org",
		Type:            "SoftwareApplication",
		Name:            name,
		Description:     description,
		URL:             url,
		ApplicationType: category,
	}
	if reviewCount > 0 {
		ld.Rating = &AggregateLD{
			Type:        "AggregateRating",
			RatingValue: rating,
			ReviewCount: reviewCount,
		}
	}

	out, err := json.Marshal(ld)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
