package usecase

import (
	"context"

	"gebeya/internal/domain/entity"
	"gebeya/internal/listview"
	"gebeya/internal/upstream"
	"gebeya/pkg/errors"
)

const (
	adminProductsScreen = "admin:products"
	adminUsersScreen    = "admin:users"
	adminTablePerPage   = 5

	// Upstream deactivates an account at this warning count; the local
	// patch after a warnings increment follows the same rule.
	deactivationThreshold = 5
)

type AdminUseCase struct {
	api     *upstream.Client
	screens *listview.Registry
}

func NewAdminUseCase(api *upstream.Client, screens *listview.Registry) *AdminUseCase {
	return &AdminUseCase{
		api:     api,
		screens: screens,
	}
}

// MountProducts opens the moderation table over a fresh fetch. Search
// matches product titles.
func (uc *AdminUseCase) MountProducts(ctx context.Context, contextID string, sess *entity.Session) (*listview.Screen[entity.Product], error) {
	products, err := uc.api.AdminProducts(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []entity.Product{}
	}

	screen := listview.NewScreen(products, adminTablePerPage,
		func(p entity.Product) string { return p.ID },
		func(p entity.Product) []string { return []string{p.Title} })
	uc.screens.Put(contextID, adminProductsScreen, screen)
	return screen, nil
}

func (uc *AdminUseCase) Products(contextID string) (*listview.Screen[entity.Product], bool) {
	return listview.Lookup[entity.Product](uc.screens, contextID, adminProductsScreen)
}

// DeleteProduct removes a listing upstream and patches the mounted table.
// The row's action control stays disabled while its request is in flight,
// and local state is untouched when the request fails.
func (uc *AdminUseCase) DeleteProduct(ctx context.Context, contextID string, sess *entity.Session, productID string) error {
	screen, ok := uc.Products(contextID)
	if !ok {
		return errors.BadRequest("The product list is not open.", nil)
	}
	if !screen.BeginAction(productID) {
		return errors.Conflict("A request for this product is already in progress")
	}
	defer screen.EndAction(productID)

	if err := uc.api.DeleteProduct(ctx, sess.Token, productID); err != nil {
		return err
	}

	screen.Remove(productID)
	return nil
}

// ProductReport triggers the AI analysis for one listing.
func (uc *AdminUseCase) ProductReport(ctx context.Context, sess *entity.Session, productID string) (*entity.AnalysisReport, error) {
	return uc.api.ProductReport(ctx, sess.Token, productID)
}

// WarnSeller bumps the warnings counter of a product's owner and patches
// every row owned by that seller with the server-confirmed count.
func (uc *AdminUseCase) WarnSeller(ctx context.Context, contextID string, sess *entity.Session, ownerID string) (*upstream.WarningResult, error) {
	screen, ok := uc.Products(contextID)
	if !ok {
		return nil, errors.BadRequest("The product list is not open.", nil)
	}
	if !screen.BeginAction(ownerID) {
		return nil, errors.Conflict("A request for this seller is already in progress")
	}
	defer screen.EndAction(ownerID)

	result, err := uc.api.IncreaseWarning(ctx, sess.Token, ownerID)
	if err != nil {
		return nil, err
	}

	screen.PatchAll(func(p *entity.Product) bool {
		if p.Owner == nil || p.Owner.ID != ownerID {
			return false
		}
		p.IsActive = result.Warnings < deactivationThreshold
		return true
	})
	return result, nil
}

// MountUsers opens the deactivated-accounts table. Search matches the full
// name.
func (uc *AdminUseCase) MountUsers(ctx context.Context, contextID string, sess *entity.Session) (*listview.Screen[entity.ManagedUser], error) {
	users, err := uc.api.AdminUsers(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []entity.ManagedUser{}
	}

	screen := listview.NewScreen(users, adminTablePerPage,
		func(u entity.ManagedUser) string { return u.ID },
		func(u entity.ManagedUser) []string { return []string{u.FullName()} })
	uc.screens.Put(contextID, adminUsersScreen, screen)
	return screen, nil
}

func (uc *AdminUseCase) Users(contextID string) (*listview.Screen[entity.ManagedUser], bool) {
	return listview.Lookup[entity.ManagedUser](uc.screens, contextID, adminUsersScreen)
}

// ActivateUser reinstates an account and patches the row in place: active,
// warnings reset.
func (uc *AdminUseCase) ActivateUser(ctx context.Context, contextID string, sess *entity.Session, userID string) error {
	screen, ok := uc.Users(contextID)
	if !ok {
		return errors.BadRequest("The user list is not open.", nil)
	}
	if !screen.BeginAction(userID) {
		return errors.Conflict("A request for this user is already in progress")
	}
	defer screen.EndAction(userID)

	if err := uc.api.ActivateUser(ctx, sess.Token, userID); err != nil {
		return err
	}

	screen.Patch(userID, func(u *entity.ManagedUser) {
		u.IsActive = true
		u.Warnings = 0
	})
	return nil
}

// IncreaseUserWarning bumps a user's warnings from the users table and
// patches the row with the server's counter and derived activation state.
func (uc *AdminUseCase) IncreaseUserWarning(ctx context.Context, contextID string, sess *entity.Session, userID string) (*upstream.WarningResult, error) {
	screen, ok := uc.Users(contextID)
	if !ok {
		return nil, errors.BadRequest("The user list is not open.", nil)
	}
	if !screen.BeginAction(userID) {
		return nil, errors.Conflict("A request for this user is already in progress")
	}
	defer screen.EndAction(userID)

	result, err := uc.api.IncreaseWarning(ctx, sess.Token, userID)
	if err != nil {
		return nil, err
	}

	screen.Patch(userID, func(u *entity.ManagedUser) {
		u.Warnings = result.Warnings
		u.IsActive = result.IsActive
	})
	return result, nil
}
