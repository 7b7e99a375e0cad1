package dto

// ── Company ──

type CreateCompanyRequest struct {
	Name    string `json:"name"    binding:"required,min=1,max=150"`
	RUT     string `json:"rut"     binding:"required,max=20"`
	Address string `json:"address" binding:"max=255"`
}

type UpdateCompanyRequest struct {
	Name    *string `json:"name"    binding:"omitempty,min=1,max=150"`
	RUT     *string `json:"rut"     binding:"omitempty,max=20"`
	Address *string `json:"address" binding:"omitempty,max=255"`
}

type CompanyResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	RUT     string `json:"rut"`
	Address string `json:"address"`
}

// ── Branch ──

type CreateBranchRequest struct {
	Name      string `json:"name"       binding:"required,min=1,max=150"`
	Address   string `json:"address"    binding:"max=255"`
	CompanyID int64  `json:"company_id" binding:"required"`
}

type UpdateBranchRequest struct {
	Name      *string `json:"name"       binding:"omitempty,min=1,max=150"`
	Address   *string `json:"address"    binding:"omitempty,max=255"`
	CompanyID *int64  `json:"company_id"`
}

type BranchResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	CompanyID   int64  `json:"company_id"`
	CompanyName string `json:"company_name,omitempty"`
}

// ── Work area ──

type CreateWorkAreaRequest struct {
	Name     string `json:"name"      binding:"required,min=1,max=150"`
	BranchID int64  `json:"branch_id" binding:"required"`
}

type UpdateWorkAreaRequest struct {
	Name     *string `json:"name"      binding:"omitempty,min=1,max=150"`
	BranchID *int64  `json:"branch_id"`
}

type WorkAreaResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	BranchID   int64  `json:"branch_id"`
	BranchName string `json:"branch_name,omitempty"`
}
