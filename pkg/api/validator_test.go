package api

import (
	"errors"
	"testing"
)

func TestDirectionPayload_Validate(t *testing.T) {
	tests := []struct {
		name    string
		p       DirectionPayload
		wantErr error
	}{
		{"step right", DirectionPayload{Dx: 1}, nil},
		{"diagonal", DirectionPayload{Dx: -1, Dy: 1}, nil},
		{"zero", DirectionPayload{}, ErrZeroDirection},
		{"too far", DirectionPayload{Dx: 2}, ErrStepTooLarge},
		{"too far vertically", DirectionPayload{Dy: -3}, ErrStepTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.p.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEntityPayload_Validate(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		wantErr error
	}{
		{"empty", "", ErrMissingTarget},
		{"decimal id", "42", nil},
		{"nil id", "0", ErrInvalidEntity},
		{"not a number", "orc", ErrInvalidEntity},
		{"negative", "-5", ErrInvalidEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := (EntityPayload{TargetID: tt.target}).Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate(%q) error = %v, want %v", tt.target, err, tt.wantErr)
			}
		})
	}
}

func TestItemPayload_Validate(t *testing.T) {
	if err := (ItemPayload{}).Validate(); err != nil {
		t.Errorf("empty ItemID is allowed, got %v", err)
	}
	if err := (ItemPayload{ItemID: "7"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (ItemPayload{ItemID: "x7"}).Validate(); !errors.Is(err, ErrInvalidEntity) {
		t.Errorf("err = %v, want ErrInvalidEntity", err)
	}
}
