package dto

// CreateWorkerRequest registers a new worker.
type CreateWorkerRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name"  binding:"required,min=1,max=100"`
	RUT       string `json:"rut"        binding:"required,max=20"`
	Email     string `json:"email"      binding:"required,email"`
	Password  string `json:"password"   binding:"required,min=8,max=72"`
	IsAdmin   bool   `json:"is_admin"`
	BranchID  *int64 `json:"branch_id"`
}

// UpdateWorkerRequest patches a worker; nil fields are left untouched.
type UpdateWorkerRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name"  binding:"omitempty,min=1,max=100"`
	RUT       *string `json:"rut"        binding:"omitempty,max=20"`
	Email     *string `json:"email"      binding:"omitempty,email"`
	Password  *string `json:"password"   binding:"omitempty,min=8,max=72"`
	IsAdmin   *bool   `json:"is_admin"`
	BranchID  *int64  `json:"branch_id"`
}

// WorkerResponse is the worker as exposed over the API. The password
// hash never leaves the service layer.
type WorkerResponse struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	RUT        string `json:"rut"`
	Email      string `json:"email"`
	IsAdmin    bool   `json:"is_admin"`
	BranchID   *int64 `json:"branch_id,omitempty"`
	BranchName string `json:"branch_name,omitempty"`
}
