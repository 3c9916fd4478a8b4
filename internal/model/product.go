package model

import (
	"encoding/json"
	"fmt"
)

// Product is a single sellable record as the remote catalog API returns it.
type Product struct {
	// ID is assigned by the server; empty for records not yet created
	ID string `json:"id,omitempty"`

	// Title is the display name of the product
	Title string `json:"title"`

	// Category groups products in the listing
	Category string `json:"category"`

	// OriginPrice is the pre-discount price
	OriginPrice float64 `json:"origin_price"`

	// Price is the selling price
	Price float64 `json:"price"`

	// Unit is the sales unit (e.g. "piece")
	Unit string `json:"unit"`

	// Description is the short product description
	Description string `json:"description"`

	// Content is the long-form product copy
	Content string `json:"content"`

	// Enabled reports whether the product is published
	Enabled BoolBit `json:"is_enabled"`

	// ImageURL is the primary image reference, possibly empty
	ImageURL string `json:"imageUrl"`

	// ImagesURL is the ordered list of secondary image references
	ImagesURL []string `json:"imagesUrl"`
}

// ProductPayload is the normalized form sent to the mutation endpoints.
// Prices are numeric, the enabled flag is 0/1 and ImagesURL carries no
// empty entries.
type ProductPayload struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	OriginPrice float64  `json:"origin_price"`
	Price       float64  `json:"price"`
	Unit        string   `json:"unit"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	IsEnabled   int      `json:"is_enabled"`
	ImageURL    string   `json:"imageUrl"`
	ImagesURL   []string `json:"imagesUrl"`
}

// BoolBit is a boolean the wire encodes as 0/1. The API also answers with
// plain true/false on some records, so decoding accepts both spellings.
type BoolBit bool

func (b BoolBit) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("1"), nil
	}

	return []byte("0"), nil
}

func (b *BoolBit) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "1", "true":
		*b = true
	case "0", "false", "null":
		*b = false
	default:
		// Some responses quote the flag
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("is_enabled: unsupported value %s", data)
		}

		*b = s == "1" || s == "true"
	}

	return nil
}
