package entity

import "strings"

// Category values are a closed set owned by the marketplace API.
const (
	CategoryBags      = "Bags"
	CategoryClothes   = "Clothes"
	CategoryShoes     = "Shoes"
	CategoryJewelries = "Jewelries"
	CategoryArts      = "Arts"
	CategoryBeauty    = "Beauty"
)

var Categories = []string{
	CategoryBags,
	CategoryClothes,
	CategoryShoes,
	CategoryJewelries,
	CategoryArts,
	CategoryBeauty,
}

// categoryBySlug maps storefront URL segments onto API category values.
var categoryBySlug = map[string]string{
	"bags-purses":         CategoryBags,
	"clothes":             CategoryClothes,
	"shoes":               CategoryShoes,
	"accessories-jewelry": CategoryJewelries,
	"art-wall-decor":      CategoryArts,
	"bath-beauty":         CategoryBeauty,
}

// CategoryFromSlug resolves a URL slug to its category. Unknown slugs are a
// not-found domain state, not an error.
func CategoryFromSlug(slug string) (string, bool) {
	category, ok := categoryBySlug[slug]
	return category, ok
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type ProductImage struct {
	URL string `json:"url"`
}

// ProductOwner is the populated seller reference embedded in product payloads.
type ProductOwner struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Product mirrors the marketplace API wire shape.
type Product struct {
	ID          string         `json:"_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Category    string         `json:"category"`
	ContactInfo string         `json:"contactInfo,omitempty"`
	Images      []ProductImage `json:"images"`
	Ratings     []Rating       `json:"ratings"`
	Owner       *ProductOwner  `json:"userId,omitempty"`
	IsActive    bool           `json:"isActive"`
	CreatedAt   string         `json:"createdAt,omitempty"`
}

// AverageRating is the mean score across ratings, 0 when there are none.
func (p *Product) AverageRating() float64 {
	if len(p.Ratings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range p.Ratings {
		sum += float64(r.Score)
	}
	return sum / float64(len(p.Ratings))
}

// SellerName falls back to the mailbox part of the owner email, then a
// generic label, matching the storefront display rule.
func (p *Product) SellerName() string {
	if p.Owner != nil {
		if p.Owner.Name != "" {
			return p.Owner.Name
		}
		if p.Owner.Email != "" {
			if at := strings.IndexByte(p.Owner.Email, '@'); at > 0 {
				return p.Owner.Email[:at]
			}
			return p.Owner.Email
		}
	}
	return "Seller"
}
