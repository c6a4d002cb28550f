// 文件路径: internal/service/errors.go
// 模块说明: 服务层的哨兵错误。
package service

import "errors"

var (
	// ErrInvalidFilter indicates a selector value outside its allowed set.
	ErrInvalidFilter = errors.New("service: invalid filter / 筛选条件无效")
	// ErrNotFound indicates requested record does not exist.
	ErrNotFound = errors.New("service: not found / 未找到资源")
)
