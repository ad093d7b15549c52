package employee

type EmployeeResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Matricule string `json:"matricule"`
	FullName  string `json:"full_name"`
	Email     string `json:"email,omitempty"`
	Poste     string `json:"poste,omitempty"`
	Role      string `json:"role"`
}
