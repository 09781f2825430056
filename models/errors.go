package models

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("name already taken")
)

// 唯一索引冲突留给存储引擎裁决，这里只负责识别
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	if me, ok := err.(*mysql.MySQLError); ok {
		return me.Number == 1062
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
