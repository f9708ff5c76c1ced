package service

import (
	"MarketMind/internal/pkg/consts"
	"MarketMind/internal/pkg/slug"
	"errors"

	"github.com/go-sql-driver/mysql"
)

// resolveSlug 由名称生成唯一 slug，空结果回退到默认前缀
func resolveSlug(name string, exists slug.ExistsFunc) (string, error) {
	base := slug.Generate(name)
	if base == "" {
		base = consts.DefaultSlugBase
	}
	unique, err := slug.MakeUnique(base, exists)
	if err != nil {
		if errors.Is(err, slug.ErrExhausted) {
			return "", ErrSlugExhausted
		}
		return "", err
	}
	return unique, nil
}

// isDuplicateError MySQL 1062 唯一键冲突
func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// createWithSlugRetry 先按唯一 slug 插入，并发撞到唯一键时重新取号再试一次
func createWithSlugRetry(name string, exists slug.ExistsFunc, create func(slugVal string) error) error {
	slugVal, err := resolveSlug(name, exists)
	if err != nil {
		return err
	}
	err = create(slugVal)
	if err == nil {
		return nil
	}
	if !isDuplicateError(err) {
		return err
	}
	slugVal, err = resolveSlug(name, exists)
	if err != nil {
		return err
	}
	if err = create(slugVal); err != nil {
		if isDuplicateError(err) {
			return ErrSlugConflict
		}
		return err
	}
	return nil
}
