package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrUserBan           = errors.New("用户已被封禁")
	ErrUserBanSelf       = errors.New("不能封禁自己")
	ErrUserExist         = errors.New("用户名或邮箱已存在")
	ErrPasswordIncorrect = errors.New("密码错误")
	ErrBlogNotFound      = errors.New("博客不存在")
	ErrToolNotFound      = errors.New("工具不存在")
	ErrCategoryNotFound  = errors.New("分类不存在")
	ErrCommentNotFound   = errors.New("评论不存在")
	ErrCategoryInUse     = errors.New("分类下仍有内容，不能删除")
	ErrRatingOutOfRange  = errors.New("评分必须在 1-5 之间")
	ErrEngagementKind    = errors.New("该内容类型不支持此互动")
	ErrSlugConflict      = errors.New("slug 冲突，请稍后重试")
	ErrSlugExhausted     = errors.New("slug 生成失败")
	ErrStatusTransition  = errors.New("当前状态不允许此操作")
	UnauthorizedError    = errors.New("权限不足")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrUserNotFound:      NotFound,
	ErrUserBan:           Unauthorized,
	ErrUserBanSelf:       BadRequest,
	ErrUserExist:         BadRequest,
	ErrPasswordIncorrect: Unauthorized,
	ErrBlogNotFound:      NotFound,
	ErrToolNotFound:      NotFound,
	ErrCategoryNotFound:  NotFound,
	ErrCommentNotFound:   NotFound,
	ErrCategoryInUse:     BadRequest,
	ErrRatingOutOfRange:  BadRequest,
	ErrEngagementKind:    BadRequest,
	ErrSlugConflict:      Conflict,
	ErrSlugExhausted:     InternalServerError,
	ErrStatusTransition:  BadRequest,
	UnauthorizedError:    Unauthorized,
	UnExpectedError:      InternalServerError,
}
