package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Draft is the single in-progress product record backing the create, edit
// and delete flows. Prices are kept as text while editing and only coerced
// when the payload is built.
//
// Every mutation returns a new Draft value; the previous value is never
// modified in place. Observers can therefore detect change by comparing
// values instead of deep-inspecting fields.
type Draft struct {
	ID          string
	Title       string
	Category    string
	OriginPrice string
	Price       string
	Unit        string
	Description string
	Content     string
	Enabled     bool
	ImageURL    string
	ImagesURL   []string
}

// EmptyDraft returns the blank template used when creating a new product.
func EmptyDraft() Draft {
	return Draft{ImagesURL: []string{}}
}

// DraftOf seeds a draft from an existing product. The images slice is
// copied so later edits never show through to the source record.
func DraftOf(p Product) Draft {
	images := make([]string, len(p.ImagesURL))
	copy(images, p.ImagesURL)

	return Draft{
		ID:          p.ID,
		Title:       p.Title,
		Category:    p.Category,
		OriginPrice: formatPrice(p.OriginPrice),
		Price:       formatPrice(p.Price),
		Unit:        p.Unit,
		Description: p.Description,
		Content:     p.Content,
		Enabled:     bool(p.Enabled),
		ImageURL:    p.ImageURL,
		ImagesURL:   images,
	}
}

// SetField sets one named text field. Unknown names leave the draft
// unchanged.
func (d Draft) SetField(name, value string) Draft {
	switch name {
	case "title":
		d.Title = value
	case "category":
		d.Category = value
	case "origin_price":
		d.OriginPrice = value
	case "price":
		d.Price = value
	case "unit":
		d.Unit = value
	case "description":
		d.Description = value
	case "content":
		d.Content = value
	case "imageUrl":
		d.ImageURL = value
	}

	return d
}

// Field returns one named text field; unknown names yield "".
func (d Draft) Field(name string) string {
	switch name {
	case "title":
		return d.Title
	case "category":
		return d.Category
	case "origin_price":
		return d.OriginPrice
	case "price":
		return d.Price
	case "unit":
		return d.Unit
	case "description":
		return d.Description
	case "content":
		return d.Content
	case "imageUrl":
		return d.ImageURL
	}

	return ""
}

// SetEnabled sets the published flag.
func (d Draft) SetEnabled(v bool) Draft {
	d.Enabled = v

	return d
}

// SetImageAt replaces one secondary image slot. Indexes outside the
// current bounds leave the draft unchanged; slots never grow implicitly.
func (d Draft) SetImageAt(index int, value string) Draft {
	if index < 0 || index >= len(d.ImagesURL) {
		return d
	}

	images := make([]string, len(d.ImagesURL))
	copy(images, d.ImagesURL)
	images[index] = value
	d.ImagesURL = images

	return d
}

// AppendImageSlot adds one empty secondary image slot.
func (d Draft) AppendImageSlot() Draft {
	images := make([]string, len(d.ImagesURL), len(d.ImagesURL)+1)
	copy(images, d.ImagesURL)
	d.ImagesURL = append(images, "")

	return d
}

// RemoveLastImageSlot drops the last secondary image slot. Removing from
// an empty list is a no-op.
func (d Draft) RemoveLastImageSlot() Draft {
	if len(d.ImagesURL) == 0 {
		return d
	}

	images := make([]string, len(d.ImagesURL)-1)
	copy(images, d.ImagesURL[:len(d.ImagesURL)-1])
	d.ImagesURL = images

	return d
}

// Payload builds the normalized mutation payload: prices coerced to
// numbers, the enabled flag to 0/1, and empty image slots dropped with the
// remaining order preserved.
func (d Draft) Payload() (ProductPayload, error) {
	originPrice, err := parsePrice(d.OriginPrice)
	if err != nil {
		return ProductPayload{}, fmt.Errorf("origin_price: %w", err)
	}

	price, err := parsePrice(d.Price)
	if err != nil {
		return ProductPayload{}, fmt.Errorf("price: %w", err)
	}

	enabled := 0
	if d.Enabled {
		enabled = 1
	}

	images := make([]string, 0, len(d.ImagesURL))

	for _, u := range d.ImagesURL {
		if u != "" {
			images = append(images, u)
		}
	}

	return ProductPayload{
		Title:       d.Title,
		Category:    d.Category,
		OriginPrice: originPrice,
		Price:       price,
		Unit:        d.Unit,
		Description: d.Description,
		Content:     d.Content,
		IsEnabled:   enabled,
		ImageURL:    d.ImageURL,
		ImagesURL:   images,
	}, nil
}

func parsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}

	if v < 0 {
		return 0, fmt.Errorf("negative price: %q", s)
	}

	return v, nil
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
