package model

// Worker maps the trabajador table. Identity keys: numeric id, unique
// email, unique RUT (national id).
type Worker struct {
	ID           int64  `gorm:"primaryKey"                                json:"id"`
	FirstName    string `gorm:"column:nombre;type:varchar(100);not null"  json:"first_name"`
	LastName     string `gorm:"column:apellido;type:varchar(100);not null" json:"last_name"`
	RUT          string `gorm:"column:rut;type:varchar(20);not null;uniqueIndex" json:"rut"`
	Email        string `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"column:contrasena;type:varchar(255);not null" json:"-"`
	IsAdmin      bool   `gorm:"column:es_admin;not null;default:false"    json:"is_admin"`
	BranchID     *int64 `gorm:"column:sucursal_id"                        json:"branch_id,omitempty"`

	Branch *Branch `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
}

func (Worker) TableName() string { return "trabajador" }

// FullName joins first and last name the way listings display workers.
func (w *Worker) FullName() string {
	if w.LastName == "" {
		return w.FirstName
	}
	return w.FirstName + " " + w.LastName
}
