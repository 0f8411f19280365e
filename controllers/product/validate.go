package productcontroller

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/Jlcht/Aurelian-Timeworks/models"
	"github.com/Jlcht/Aurelian-Timeworks/web"
)

// ProductInput carries a create or update request body. Pointer fields
// distinguish "absent" from "zero" so updates can be partial. Images binds
// loosely so a wrong shape surfaces as a field error instead of failing the
// whole bind.
type ProductInput struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Price       *float64        `json:"price"`
	Stock       *int            `json:"stock"`
	Category    *string         `json:"category"`
	Images      json.RawMessage `json:"images"`
}

// imageList decodes the images field. ok is false when the field is absent
// (or JSON null, which counts as absent).
func (in ProductInput) imageList() (imgs []string, ok bool, err error) {
	if in.Images == nil || string(in.Images) == "null" {
		return nil, false, nil
	}
	if err := json.Unmarshal(in.Images, &imgs); err != nil {
		return nil, false, err
	}
	return imgs, true, nil
}

// validateProduct checks every supplied field. With partial set, absent
// required fields are allowed; otherwise they are reported. Validation runs
// in full before any store mutation.
func validateProduct(in ProductInput, partial bool) []web.FieldError {
	var errs []web.FieldError

	if in.Name == nil {
		if !partial {
			errs = append(errs, web.FieldError{Field: "name", Message: "Product name is required"})
		}
	} else if n := utf8.RuneCountInString(strings.TrimSpace(*in.Name)); n < 3 || n > 100 {
		errs = append(errs, web.FieldError{Field: "name", Message: "Product name must be between 3 and 100 characters"})
	}

	if in.Description == nil {
		if !partial {
			errs = append(errs, web.FieldError{Field: "description", Message: "Product description is required"})
		}
	} else if utf8.RuneCountInString(strings.TrimSpace(*in.Description)) < 10 {
		errs = append(errs, web.FieldError{Field: "description", Message: "Product description must be at least 10 characters"})
	}

	if in.Price == nil {
		if !partial {
			errs = append(errs, web.FieldError{Field: "price", Message: "Price is required"})
		}
	} else if *in.Price <= 0 {
		errs = append(errs, web.FieldError{Field: "price", Message: "Price must be a positive number"})
	}

	if in.Stock == nil {
		if !partial {
			errs = append(errs, web.FieldError{Field: "stock", Message: "Stock is required"})
		}
	} else if *in.Stock < 0 {
		errs = append(errs, web.FieldError{Field: "stock", Message: "Stock must be a non-negative integer"})
	}

	if in.Category != nil && strings.TrimSpace(*in.Category) == "" {
		errs = append(errs, web.FieldError{Field: "category", Message: "Category cannot be empty if provided"})
	}

	if _, _, err := in.imageList(); err != nil {
		errs = append(errs, web.FieldError{Field: "images", Message: "Images must be an array of URLs"})
	}

	return errs
}

// applyInput copies the supplied fields onto the product, leaving absent
// fields untouched.
func applyInput(in ProductInput, p *models.Product) {
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.Category != nil {
		p.Category = strings.TrimSpace(*in.Category)
	}
	if imgs, ok, err := in.imageList(); err == nil && ok {
		p.Images = models.StringList(imgs)
	}
}
