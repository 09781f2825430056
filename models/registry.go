package models

import (
	"github.com/jinzhu/gorm"

	"hermes/utils"
)

// Registry 服务器与凭据的注册表，持有显式注入的存储句柄与散列器
type Registry struct {
	db     *gorm.DB
	hasher utils.Hasher
}

func NewRegistry(db *gorm.DB, hasher utils.Hasher) *Registry {
	return &Registry{db: db, hasher: hasher}
}

func (r *Registry) AutoMigrate() error {
	return r.db.AutoMigrate(&Server{}, &Credential{}, &VMConfig{}).Error
}

func (r *Registry) Close() error {
	return r.db.Close()
}
