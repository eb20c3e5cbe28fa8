package upstream

import (
	"context"
	"net/http"

	"gebeya/internal/domain/entity"
)

type adminProductsPayload struct {
	Products []entity.Product `json:"products"`
}

// AdminProducts lists every product for moderation.
func (c *Client) AdminProducts(ctx context.Context, token string) ([]entity.Product, error) {
	var payload adminProductsPayload
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/products", token, nil, &payload); err != nil {
		return nil, err
	}
	c.absolutizeProducts(payload.Products)
	return payload.Products, nil
}

func (c *Client) DeleteProduct(ctx context.Context, token, productID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/admin/products/"+productID, token, nil, nil)
}

type reportPayload struct {
	Report struct {
		AIAnalysis entity.AnalysisReport `json:"aiAnalysis"`
	} `json:"report"`
}

// ProductReport triggers and reads the AI-generated product analysis.
func (c *Client) ProductReport(ctx context.Context, token, productID string) (*entity.AnalysisReport, error) {
	var payload reportPayload
	if err := c.doJSON(ctx, http.MethodPost, "/api/admin/products/"+productID+"/report", token, nil, &payload); err != nil {
		return nil, err
	}
	report := payload.Report.AIAnalysis
	return &report, nil
}

type adminUsersPayload struct {
	Users []entity.ManagedUser `json:"users"`
}

// AdminUsers lists the deactivated accounts awaiting reinstatement.
func (c *Client) AdminUsers(ctx context.Context, token string) ([]entity.ManagedUser, error) {
	var payload adminUsersPayload
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/users", token, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Users, nil
}

func (c *Client) ActivateUser(ctx context.Context, token, userID string) error {
	return c.doJSON(ctx, http.MethodPut, "/api/admin/users/"+userID+"/activate", token, nil, nil)
}

// WarningResult is the server-maintained counter the row patch follows:
// activation state is derived from it upstream.
type WarningResult struct {
	Warnings int  `json:"warnings"`
	IsActive bool `json:"isActive"`
}

func (c *Client) IncreaseWarning(ctx context.Context, token, userID string) (*WarningResult, error) {
	var result WarningResult
	if err := c.doJSON(ctx, http.MethodPatch, "/api/admin/users/"+userID+"/warnings", token, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type DashboardPayload struct {
	Stats  entity.DashboardStats `json:"stats"`
	Admins []entity.AdminAccount `json:"admins"`
}

// Dashboard fetches the super-admin overview: counters plus the admin table.
func (c *Client) Dashboard(ctx context.Context, token string) (*DashboardPayload, error) {
	var payload DashboardPayload
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/dashboard", token, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

type CreateAdminInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type createAdminPayload struct {
	Admin entity.AdminAccount `json:"admin"`
}

func (c *Client) CreateAdmin(ctx context.Context, token string, input CreateAdminInput) (*entity.AdminAccount, error) {
	var payload createAdminPayload
	if err := c.doJSON(ctx, http.MethodPost, "/api/admin/create-admin", token, input, &payload); err != nil {
		return nil, err
	}
	admin := payload.Admin
	return &admin, nil
}

func (c *Client) DeleteAdmin(ctx context.Context, token, adminID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/admin/delete-admin/"+adminID, token, nil, nil)
}
