package model

// Company maps the empresa table.
type Company struct {
	ID      int64  `gorm:"primaryKey"                             json:"id"`
	Name    string `gorm:"column:nombre;type:varchar(150);not null" json:"name"`
	RUT     string `gorm:"column:rut;type:varchar(20);not null"     json:"rut"`
	Address string `gorm:"column:direccion;type:varchar(255)"       json:"address"`
}

func (Company) TableName() string { return "empresa" }

// Branch maps the sucursal table.
type Branch struct {
	ID        int64  `gorm:"primaryKey"                               json:"id"`
	Name      string `gorm:"column:nombre;type:varchar(150);not null" json:"name"`
	Address   string `gorm:"column:direccion;type:varchar(255)"       json:"address"`
	CompanyID int64  `gorm:"column:empresa_id;not null"               json:"company_id"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

func (Branch) TableName() string { return "sucursal" }

// WorkArea maps the areatrabajo table.
type WorkArea struct {
	ID       int64  `gorm:"primaryKey"                               json:"id"`
	Name     string `gorm:"column:nombre;type:varchar(150);not null" json:"name"`
	BranchID int64  `gorm:"column:sucursal_id;not null"              json:"branch_id"`

	Branch *Branch `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
}

func (WorkArea) TableName() string { return "areatrabajo" }
