package wizard

import (
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"gebeya/internal/domain/entity"
	"gebeya/pkg/errors"
)

type Step int

const (
	StepDetails Step = 1
	StepMedia   Step = 2
	StepReview  Step = 3
	StepDone    Step = 4
)

const (
	MinImages = 2
	MaxImages = 3
)

// Image is a selected upload held in memory until submission. PreviewID
// stands in for the browser object URL; releasing an image invalidates it.
type Image struct {
	PreviewID   string
	Name        string
	ContentType string
	Data        []byte
}

// Details are the step 1 fields. Price stays a string until validation, the
// way it arrives from the form.
type Details struct {
	Category    string
	Title       string
	Description string
	Price       string
}

// Wizard is the linear listing-submission flow:
// Details(1) -> Media(2) -> Review(3) -> Done(4). Forward movement passes
// the current step's gate; Done is terminal. Previous from step 3 returns
// to step 1, preserved from the storefront it replaces.
type Wizard struct {
	mu      sync.Mutex
	step    Step
	details Details
	images  []Image
}

func New() *Wizard {
	return &Wizard{step: StepDetails}
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// SetDetails records step 1 input without validating; the gate runs on Next.
func (w *Wizard) SetDetails(d Details) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.details = d
}

func (w *Wizard) Details() Details {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.details
}

// SelectImages replaces the current selection, keeping at most MaxImages,
// and releases the superseded previews. The minimum-count gate runs on Next.
func (w *Wizard) SelectImages(images []Image) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.releaseImages()
	if len(images) > MaxImages {
		images = images[:MaxImages]
	}
	w.images = make([]Image, len(images))
	copy(w.images, images)
	for i := range w.images {
		w.images[i].PreviewID = uuid.New().String()
	}
}

func (w *Wizard) Images() []Image {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]Image, len(w.images))
	copy(out, w.images)
	return out
}

// Next advances one step after the current step's validation gate passes.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.step {
	case StepDetails:
		if err := w.validateDetails(); err != nil {
			return err
		}
		w.step = StepMedia
	case StepMedia:
		if len(w.images) < MinImages {
			return errors.BadRequest("Please upload at least 2 photos.", nil)
		}
		w.step = StepReview
	case StepReview:
		return errors.BadRequest("Submit the listing to continue.", nil)
	case StepDone:
		return errors.BadRequest("The listing flow is already complete.", nil)
	}
	return nil
}

// Previous steps backward. From step 3 it returns to step 1, not 2; there
// is no backward move out of Done.
func (w *Wizard) Previous() {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.step {
	case StepMedia:
		w.step = StepDetails
	case StepReview:
		w.step = StepDetails
	}
}

func (w *Wizard) validateDetails() error {
	d := w.details
	if d.Category == "" || strings.TrimSpace(d.Title) == "" || strings.TrimSpace(d.Price) == "" {
		return errors.BadRequest("Please fill in all required fields (Category, Title, and Price).", nil)
	}
	if !entity.ValidCategory(d.Category) {
		return errors.BadRequest("Please select a valid category.", nil)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(d.Price), 64)
	if err != nil || price <= 0 {
		return errors.BadRequest("Please enter a valid price.", nil)
	}
	return nil
}

// Submission is the multipart payload built from steps 1 and 2.
type Submission struct {
	Title       string
	Description string
	Category    string
	Price       string
	Images      []Image
}

// Submission gates the final submit from step 3 and returns the payload.
// The description defaults when left empty.
func (w *Wizard) Submission() (Submission, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepReview {
		return Submission{}, errors.BadRequest("The listing is not ready to submit.", nil)
	}
	if err := w.validateDetails(); err != nil {
		return Submission{}, err
	}
	if len(w.images) < MinImages {
		return Submission{}, errors.BadRequest("Please upload at least 2 photos.", nil)
	}

	description := strings.TrimSpace(w.details.Description)
	if description == "" {
		description = "No description"
	}

	images := make([]Image, len(w.images))
	copy(images, w.images)

	return Submission{
		Title:       strings.TrimSpace(w.details.Title),
		Description: description,
		Category:    w.details.Category,
		Price:       strings.TrimSpace(w.details.Price),
		Images:      images,
	}, nil
}

// Complete moves to the terminal confirmation step after a successful
// submission. A failed submission leaves the wizard on step 3 with all
// entered data intact.
func (w *Wizard) Complete() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step == StepReview {
		w.step = StepDone
	}
}

// Reset returns to step 1 with cleared fields and no stale previews.
// It backs both "list another" and closing the wizard.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.releaseImages()
	w.details = Details{}
	w.images = nil
	w.step = StepDetails
}

func (w *Wizard) releaseImages() {
	for i := range w.images {
		w.images[i].Data = nil
		w.images[i].PreviewID = ""
	}
}
