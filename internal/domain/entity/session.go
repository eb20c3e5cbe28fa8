package entity

import "strings"

const (
	RoleBuyer      = "BUYER"
	RoleSeller     = "SELLER"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPERADMIN"
)

// Session is the cached identity of the signed-in user for one browser
// context. The profile photo is carried as a server-confirmed URL only;
// raw upload bytes never enter the session.
type Session struct {
	UserID          string `json:"userId"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phoneNumber,omitempty"`
	Gender          string `json:"gender,omitempty"`
	Role            string `json:"role"`
	ProfilePhotoURL string `json:"profilePhoto,omitempty"`
	Token           string `json:"-"`
	Remember        bool   `json:"-"`
}

// NormalizeRole maps a stored role value onto the uppercase token used for
// dashboard gating. An absent role normalizes to the empty string.
func NormalizeRole(role string) string {
	return strings.ToUpper(strings.TrimSpace(role))
}

// NormalizedRole returns the gating token for this session.
func (s *Session) NormalizedRole() string {
	if s == nil {
		return ""
	}
	return NormalizeRole(s.Role)
}

func (s *Session) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// LandingPath is where a fresh login gets sent, by role.
func (s *Session) LandingPath() string {
	switch s.NormalizedRole() {
	case RoleSuperAdmin:
		return "/superadmin"
	case RoleAdmin:
		return "/admin"
	default:
		return "/"
	}
}
