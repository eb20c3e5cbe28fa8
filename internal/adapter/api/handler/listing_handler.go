package handler

import (
	"io"

	"github.com/labstack/echo/v4"

	"gebeya/internal/adapter/api/middleware"
	"gebeya/internal/usecase"
	"gebeya/internal/wizard"
	"gebeya/pkg/errors"
	"gebeya/pkg/response"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
	authUseCase    *usecase.AuthUseCase
	contexts       *middleware.ContextMiddleware
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase, authUseCase *usecase.AuthUseCase, contexts *middleware.ContextMiddleware) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
		authUseCase:    authUseCase,
		contexts:       contexts,
	}
}

// wizardState is what the submission flow renders on every transition.
type wizardState struct {
	Step    wizard.Step    `json:"step"`
	Details wizard.Details `json:"details"`
	Images  []wizardImage  `json:"images"`
}

type wizardImage struct {
	PreviewID string `json:"previewId"`
	Name      string `json:"name"`
}

func stateOf(w *wizard.Wizard) wizardState {
	images := w.Images()
	previews := make([]wizardImage, 0, len(images))
	for _, img := range images {
		previews = append(previews, wizardImage{PreviewID: img.PreviewID, Name: img.Name})
	}
	return wizardState{
		Step:    w.Step(),
		Details: w.Details(),
		Images:  previews,
	}
}

func (h *ListingHandler) State(c echo.Context) error {
	w := h.listingUseCase.Wizard(middleware.ContextID(c))
	return response.Success(c, stateOf(w))
}

type detailsRequest struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// Details records step 1 and advances; the gate error leaves the wizard
// where it was with the input preserved.
func (h *ListingHandler) Details(c echo.Context) error {
	var req detailsRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	w := h.listingUseCase.Wizard(middleware.ContextID(c))
	w.SetDetails(wizard.Details{
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	})
	if err := w.Next(); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, stateOf(w))
}

// Media replaces the image selection from a multipart form and advances.
func (h *ListingHandler) Media(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid upload.", err))
	}

	files := form.File["images"]
	images := make([]wizard.Image, 0, len(files))
	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			return response.Error(c, errors.BadRequest("Invalid upload.", err))
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return response.Error(c, errors.BadRequest("Invalid upload.", err))
		}
		images = append(images, wizard.Image{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	w := h.listingUseCase.Wizard(middleware.ContextID(c))
	w.SelectImages(images)
	if err := w.Next(); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, stateOf(w))
}

func (h *ListingHandler) Previous(c echo.Context) error {
	w := h.listingUseCase.Wizard(middleware.ContextID(c))
	w.Previous()
	return response.Success(c, stateOf(w))
}

// Submit posts the reviewed listing upstream. On failure the wizard stays
// on the review step so nothing the seller entered is lost.
func (h *ListingHandler) Submit(c echo.Context) error {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		return response.RedirectToLogin(c)
	}

	contextID := middleware.ContextID(c)
	created, err := h.listingUseCase.Submit(c.Request().Context(), contextID, sess)
	if err != nil {
		return respondProtected(c, h.authUseCase, h.contexts, err)
	}

	w := h.listingUseCase.Wizard(contextID)
	return response.Created(c, map[string]interface{}{
		"product": created,
		"state":   stateOf(w),
	})
}

// Reset clears the flow for "list another item" or closing the wizard.
func (h *ListingHandler) Reset(c echo.Context) error {
	w := h.listingUseCase.Wizard(middleware.ContextID(c))
	w.Reset()
	return response.Success(c, stateOf(w))
}
