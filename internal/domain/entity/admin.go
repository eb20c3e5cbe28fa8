package entity

// ManagedUser is a row in the admin user-management tables. Activation state
// derives from a warnings counter maintained by the API.
type ManagedUser struct {
	ID          string `json:"_id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role"`
	Warnings    int    `json:"warnings"`
	IsActive    bool   `json:"isActive"`
}

func (u *ManagedUser) FullName() string {
	return u.FirstName + " " + u.LastName
}

// AdminAccount is a super-admin managed administrator record.
type AdminAccount struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"isActive"`
	CreatedBy string `json:"createdBy,omitempty"`
}

func (a *AdminAccount) FullName() string {
	return a.FirstName + " " + a.LastName
}

type DashboardStats struct {
	TotalAdmins   int `json:"totalAdmins"`
	TotalUsers    int `json:"totalUsers"`
	ActiveUsers   int `json:"activeUsers"`
	InactiveUsers int `json:"inactiveUsers"`
}

// AnalysisReport is the AI-generated product assessment returned by the
// admin report endpoint. Its content is opaque to the gateway.
type AnalysisReport struct {
	Summary     string   `json:"summary"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
}
