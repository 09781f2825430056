package models

import (
	"strings"

	"github.com/jinzhu/gorm"
)

const (
	// MasterSentinel is_master字段的保留值，表示该记录本身即为master
	MasterSentinel = "master"
	// DefaultProvider 未指定基础设施后端时的兜底值
	DefaultProvider = "proxmox"
)

type Server struct {
	gorm.Model
	Name          string `gorm:"column:new_vm_name; type:varchar(128); not null; unique_index" json:"new_vm_name"`
	Memory        int    `gorm:"column:vm_memory; not null" json:"vm_memory"`
	Cores         int    `gorm:"column:vm_cores; not null" json:"vm_cores"`
	CiUser        string `gorm:"column:ci_user; type:varchar(64); not null" json:"ci_user"`
	CiPassword    string `gorm:"column:ci_password; type:varchar(255); not null" json:"-"`
	MysqlPassword string `gorm:"column:mysql_password; type:varchar(255); not null" json:"-"`
	IPConfig      string `gorm:"column:ipconfig0; type:varchar(255); not null" json:"ipconfig0"`
	IsMaster      string `gorm:"column:is_master; type:varchar(128); not null" json:"is_master"`
	Provider      string `gorm:"type:varchar(128); not null; default:'proxmox'" json:"provider"`
}

type Servers []*Server

func (*Server) TableName() string {
	return "servers"
}

// EffectiveMasterName 解析记录的有效master名称：
// is_master为保留值或为空时记录自身即为master，否则is_master即为master名称。
// 副本链最多展开一层，不构成多级树
func (s *Server) EffectiveMasterName() string {
	if len(s.IsMaster) > 0 && !strings.EqualFold(s.IsMaster, MasterSentinel) {
		return s.IsMaster
	}
	return s.Name
}

// AddServer 散列明文口令后落库，名称冲突返回ErrConflict
func (r *Registry) AddServer(s *Server, ciPassword, mysqlPassword string) error {
	var err error
	if s.CiPassword, err = r.hasher.Hash(ciPassword); err != nil {
		return err
	}
	if s.MysqlPassword, err = r.hasher.Hash(mysqlPassword); err != nil {
		return err
	}
	if len(s.Provider) == 0 {
		s.Provider = DefaultProvider
	}
	if err := r.db.Create(s).Error; err != nil {
		if isDuplicateErr(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (r *Registry) FetchServers() (Servers, error) {
	var ss Servers
	if err := r.db.Find(&ss).Error; err != nil {
		return nil, err
	}
	return ss, nil
}

func (r *Registry) GetServer(id uint) (*Server, error) {
	var s Server
	if err := r.db.First(&s, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// AddReplica 在父记录下创建副本：副本的is_master取父记录的有效master名称
// （副本的副本被拍平为同一master的兄弟副本），provider按
// 提交值、父记录值、兜底值的顺序取第一个非空者
func (r *Registry) AddReplica(parentID uint, s *Server, ciPassword, mysqlPassword string) error {
	parent, err := r.GetServer(parentID)
	if err != nil {
		return err
	}
	s.IsMaster = parent.EffectiveMasterName()
	if len(s.Provider) == 0 {
		s.Provider = parent.Provider
	}
	return r.AddServer(s, ciPassword, mysqlPassword)
}

// FetchReplicas 列出父记录所在副本组的所有副本，master自身除外
func (r *Registry) FetchReplicas(parentID uint) (Servers, error) {
	parent, err := r.GetServer(parentID)
	if err != nil {
		return nil, err
	}
	master := parent.EffectiveMasterName()
	var ss Servers
	if err := r.db.Where("is_master = ? AND new_vm_name <> ?", master, master).Find(&ss).Error; err != nil {
		return nil, err
	}
	return ss, nil
}
