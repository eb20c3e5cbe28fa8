package usecase

import (
	"context"

	"gebeya/internal/domain/entity"
	"gebeya/internal/listview"
	"gebeya/internal/upstream"
	"gebeya/pkg/errors"
)

const superAdminAdminsScreen = "superadmin:admins"

type SuperAdminUseCase struct {
	api     *upstream.Client
	screens *listview.Registry
}

func NewSuperAdminUseCase(api *upstream.Client, screens *listview.Registry) *SuperAdminUseCase {
	return &SuperAdminUseCase{
		api:     api,
		screens: screens,
	}
}

// Overview is the super-admin landing screen: the counters plus the admin
// table mounted as a live screen.
type Overview struct {
	Stats  entity.DashboardStats
	Admins *listview.Screen[entity.AdminAccount]
}

// MountDashboard fetches the overview and opens the admin table over it.
// Search matches the admin's full name.
func (uc *SuperAdminUseCase) MountDashboard(ctx context.Context, contextID string, sess *entity.Session) (*Overview, error) {
	payload, err := uc.api.Dashboard(ctx, sess.Token)
	if err != nil {
		return nil, err
	}

	admins := payload.Admins
	if admins == nil {
		admins = []entity.AdminAccount{}
	}

	screen := listview.NewScreen(admins, adminTablePerPage,
		func(a entity.AdminAccount) string { return a.ID },
		func(a entity.AdminAccount) []string { return []string{a.FullName()} })
	uc.screens.Put(contextID, superAdminAdminsScreen, screen)

	return &Overview{
		Stats:  payload.Stats,
		Admins: screen,
	}, nil
}

func (uc *SuperAdminUseCase) Admins(contextID string) (*listview.Screen[entity.AdminAccount], bool) {
	return listview.Lookup[entity.AdminAccount](uc.screens, contextID, superAdminAdminsScreen)
}

type CreateAdminInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// CreateAdmin provisions a new administrator and adds it to the mounted
// table without a re-fetch.
func (uc *SuperAdminUseCase) CreateAdmin(ctx context.Context, contextID string, sess *entity.Session, input CreateAdminInput) (*entity.AdminAccount, error) {
	created, err := uc.api.CreateAdmin(ctx, sess.Token, upstream.CreateAdminInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
	})
	if err != nil {
		return nil, err
	}

	if screen, ok := uc.Admins(contextID); ok && created.ID != "" {
		screen.Append(*created)
	}
	return created, nil
}

// DeleteAdmin removes an administrator and patches the mounted table,
// stepping pagination back when the removal empties the current page.
func (uc *SuperAdminUseCase) DeleteAdmin(ctx context.Context, contextID string, sess *entity.Session, adminID string) error {
	screen, ok := uc.Admins(contextID)
	if !ok {
		return errors.BadRequest("The admin list is not open.", nil)
	}
	if !screen.BeginAction(adminID) {
		return errors.Conflict("A request for this admin is already in progress")
	}
	defer screen.EndAction(adminID)

	if err := uc.api.DeleteAdmin(ctx, sess.Token, adminID); err != nil {
		return err
	}

	screen.Remove(adminID)
	return nil
}
