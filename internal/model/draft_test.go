package model

import (
	"reflect"
	"testing"
)

func TestDraftOf_CopiesEveryField(t *testing.T) {
	p := Product{
		ID:          "42",
		Title:       "Mug",
		Category:    "kitchen",
		OriginPrice: 10,
		Price:       8,
		Unit:        "piece",
		Description: "a mug",
		Content:     "ceramic",
		Enabled:     true,
		ImageURL:    "https://img/main.png",
		ImagesURL:   []string{"a", "b"},
	}

	d := DraftOf(p)

	if d.ID != "42" || d.Title != "Mug" || d.Category != "kitchen" || d.Unit != "piece" {
		t.Errorf("draft fields = %+v, want copies of product", d)
	}

	if d.OriginPrice != "10" || d.Price != "8" {
		t.Errorf("prices = %q/%q, want \"10\"/\"8\"", d.OriginPrice, d.Price)
	}

	if !d.Enabled {
		t.Error("enabled flag not carried over")
	}

	if !reflect.DeepEqual(d.ImagesURL, []string{"a", "b"}) {
		t.Errorf("imagesUrl = %v, want [a b]", d.ImagesURL)
	}
}

func TestDraftOf_DoesNotAliasImages(t *testing.T) {
	p := Product{ID: "1", ImagesURL: []string{"a", "b"}}

	d := DraftOf(p).SetImageAt(0, "changed")

	if p.ImagesURL[0] != "a" {
		t.Errorf("source product mutated: %v", p.ImagesURL)
	}

	if d.ImagesURL[0] != "changed" {
		t.Errorf("draft image = %q, want %q", d.ImagesURL[0], "changed")
	}
}

func TestSetImageAt_OutOfBounds(t *testing.T) {
	d := EmptyDraft()

	if got := d.SetImageAt(0, "x"); len(got.ImagesURL) != 0 {
		t.Errorf("out-of-bounds set grew the slice: %v", got.ImagesURL)
	}

	d = d.AppendImageSlot()
	if got := d.SetImageAt(3, "x"); !reflect.DeepEqual(got.ImagesURL, []string{""}) {
		t.Errorf("out-of-bounds set changed the slice: %v", got.ImagesURL)
	}
}

func TestAppendImageSlot_TwiceOnEmpty(t *testing.T) {
	d := EmptyDraft().AppendImageSlot().AppendImageSlot()

	if !reflect.DeepEqual(d.ImagesURL, []string{"", ""}) {
		t.Errorf("imagesUrl = %v, want two empty slots", d.ImagesURL)
	}
}

func TestRemoveLastImageSlot_EmptyIsNoop(t *testing.T) {
	d := EmptyDraft()

	got := d.RemoveLastImageSlot()
	if len(got.ImagesURL) != 0 {
		t.Errorf("imagesUrl = %v, want empty", got.ImagesURL)
	}
}

func TestRemoveLastImageSlot_DropsLast(t *testing.T) {
	d := EmptyDraft().AppendImageSlot().AppendImageSlot().SetImageAt(0, "keep")

	d = d.RemoveLastImageSlot()
	if !reflect.DeepEqual(d.ImagesURL, []string{"keep"}) {
		t.Errorf("imagesUrl = %v, want [keep]", d.ImagesURL)
	}
}

func TestMutations_LeaveOriginalUntouched(t *testing.T) {
	before := EmptyDraft().AppendImageSlot()

	_ = before.SetField("title", "changed")
	_ = before.SetImageAt(0, "changed")
	_ = before.AppendImageSlot()
	_ = before.RemoveLastImageSlot()
	_ = before.SetEnabled(true)

	if before.Title != "" || before.Enabled {
		t.Errorf("draft mutated in place: %+v", before)
	}

	if !reflect.DeepEqual(before.ImagesURL, []string{""}) {
		t.Errorf("images mutated in place: %v", before.ImagesURL)
	}
}

func TestPayload_Normalization(t *testing.T) {
	d := Draft{
		Title:       "Mug",
		OriginPrice: "10",
		Price:       "8",
		Enabled:     true,
		ImagesURL:   []string{"a", "", "b"},
	}

	payload, err := d.Payload()
	if err != nil {
		t.Fatalf("Payload() error = %v", err)
	}

	if payload.Title != "Mug" {
		t.Errorf("title = %q, want Mug", payload.Title)
	}

	if payload.OriginPrice != 10 || payload.Price != 8 {
		t.Errorf("prices = %v/%v, want 10/8", payload.OriginPrice, payload.Price)
	}

	if payload.IsEnabled != 1 {
		t.Errorf("is_enabled = %d, want 1", payload.IsEnabled)
	}

	if !reflect.DeepEqual(payload.ImagesURL, []string{"a", "b"}) {
		t.Errorf("imagesUrl = %v, want [a b] with order preserved", payload.ImagesURL)
	}
}

func TestPayload_DisabledIsZero(t *testing.T) {
	payload, err := Draft{Price: "5"}.Payload()
	if err != nil {
		t.Fatalf("Payload() error = %v", err)
	}

	if payload.IsEnabled != 0 {
		t.Errorf("is_enabled = %d, want 0", payload.IsEnabled)
	}
}

func TestPayload_EmptyPricesCoerceToZero(t *testing.T) {
	payload, err := EmptyDraft().Payload()
	if err != nil {
		t.Fatalf("Payload() error = %v", err)
	}

	if payload.OriginPrice != 0 || payload.Price != 0 {
		t.Errorf("prices = %v/%v, want 0/0", payload.OriginPrice, payload.Price)
	}
}

func TestPayload_RejectsBadPrices(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
	}{
		{name: "non-numeric origin price", draft: Draft{OriginPrice: "abc"}},
		{name: "non-numeric price", draft: Draft{Price: "1,000"}},
		{name: "negative price", draft: Draft{Price: "-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.draft.Payload(); err == nil {
				t.Error("Payload() should fail instead of transmitting a bad number")
			}
		})
	}
}

func TestSetField_UnknownNameIgnored(t *testing.T) {
	d := EmptyDraft().SetField("bogus", "value")

	if !reflect.DeepEqual(d, EmptyDraft()) {
		t.Errorf("unknown field changed the draft: %+v", d)
	}
}

func TestField_RoundTrips(t *testing.T) {
	names := []string{"title", "category", "origin_price", "price", "unit", "description", "content", "imageUrl"}

	d := EmptyDraft()
	for i, name := range names {
		d = d.SetField(name, name+"-value")

		if got := d.Field(name); got != name+"-value" {
			t.Errorf("Field(%q) = %q after SetField #%d", name, got, i)
		}
	}
}
