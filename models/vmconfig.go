package models

import "github.com/jinzhu/gorm"

// VMConfig 独立VM配置记录（无主从拓扑的旧表面）
type VMConfig struct {
	gorm.Model
	Name        string `gorm:"column:vm_name; type:varchar(255); not null; unique_index" json:"vm_name"`
	Memory      int    `gorm:"column:vm_memory; not null" json:"vm_memory"`
	Cores       int    `gorm:"column:vm_cores; not null" json:"vm_cores"`
	CiUser      string `gorm:"column:cloud_init_user; type:varchar(50); not null" json:"cloud_init_user"`
	CiPassword  string `gorm:"column:cloud_init_password; type:varchar(255); not null" json:"-"`
	IPConfig    string `gorm:"column:cloud_init_ipconfig; type:varchar(100); not null" json:"cloud_init_ipconfig"`
	Nameservers string `gorm:"column:cloud_init_nameservers; type:varchar(100); not null" json:"cloud_init_nameservers"`
}

type VMConfigs []*VMConfig

func (*VMConfig) TableName() string {
	return "proxmox_vm_configurations"
}

func (r *Registry) AddVMConfig(v *VMConfig, ciPassword string) error {
	var err error
	if v.CiPassword, err = r.hasher.Hash(ciPassword); err != nil {
		return err
	}
	if err := r.db.Create(v).Error; err != nil {
		if isDuplicateErr(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (r *Registry) FetchVMConfigs() (VMConfigs, error) {
	var vcs VMConfigs
	if err := r.db.Find(&vcs).Error; err != nil {
		return nil, err
	}
	return vcs, nil
}
