package handler

import (
	"github.com/labstack/echo/v4"

	"gebeya/internal/adapter/api/middleware"
	"gebeya/internal/usecase"
	"gebeya/pkg/errors"
	"gebeya/pkg/response"
)

var (
	authHandler       *AuthHandler
	catalogHandler    *CatalogHandler
	listingHandler    *ListingHandler
	sellerHandler     *SellerHandler
	profileHandler    *ProfileHandler
	adminHandler      *AdminHandler
	superAdminHandler *SuperAdminHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	listingUseCase *usecase.ListingUseCase,
	sellerUseCase *usecase.SellerUseCase,
	profileUseCase *usecase.ProfileUseCase,
	adminUseCase *usecase.AdminUseCase,
	superAdminUseCase *usecase.SuperAdminUseCase,
	contexts *middleware.ContextMiddleware,
) {
	authHandler = NewAuthHandler(authUseCase, contexts)
	catalogHandler = NewCatalogHandler(catalogUseCase)
	listingHandler = NewListingHandler(listingUseCase, authUseCase, contexts)
	sellerHandler = NewSellerHandler(sellerUseCase, authUseCase, contexts)
	profileHandler = NewProfileHandler(profileUseCase, authUseCase, contexts)
	adminHandler = NewAdminHandler(adminUseCase, authUseCase, contexts)
	superAdminHandler = NewSuperAdminHandler(superAdminUseCase, authUseCase, contexts)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetSellerHandler() *SellerHandler {
	return sellerHandler
}

func GetProfileHandler() *ProfileHandler {
	return profileHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetSuperAdminHandler() *SuperAdminHandler {
	return superAdminHandler
}

// respondProtected reports an error on a signed-in surface. A 401 from the
// marketplace API means the cached token is no longer honored: the session
// is cleared from both scopes and the caller is sent to login instead of
// being shown a generic failure.
func respondProtected(c echo.Context, auth *usecase.AuthUseCase, contexts *middleware.ContextMiddleware, err error) error {
	if errors.Is(err, "UNAUTHORIZED") {
		auth.Logout(middleware.ContextID(c))
		contexts.Forget(c)
		return response.RedirectToLogin(c)
	}
	return response.Error(c, err)
}
