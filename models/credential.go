package models

import "github.com/jinzhu/gorm"

// Credential 第三方API访问凭据，api_token按提交原样存储但永不出现在响应中
type Credential struct {
	gorm.Model
	Name       string `gorm:"column:credential_name; type:varchar(255); not null; unique_index" json:"credential_name"`
	ApiUser    string `gorm:"column:api_user; type:varchar(255); not null" json:"api_user"`
	ApiToken   string `gorm:"column:api_token; type:varchar(255)" json:"-"`
	ApiUrl     string `gorm:"column:api_url; type:varchar(255); not null" json:"api_url"`
	ApiTokenID string `gorm:"column:api_token_id; type:varchar(255); not null" json:"api_token_id"`
}

type Credentials []*Credential

func (*Credential) TableName() string {
	return "proxmox_creds"
}

func (r *Registry) AddCredential(c *Credential) error {
	if err := r.db.Create(c).Error; err != nil {
		if isDuplicateErr(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (r *Registry) FetchCredentials() (Credentials, error) {
	var cs Credentials
	if err := r.db.Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}
