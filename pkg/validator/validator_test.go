package validator

import (
	"errors"
	"testing"

	"github.com/nradhesh/Outbreak-blockchain/pkg/e"
)

type locationReq struct {
	Location string `validate:"required,location"`
	Positive *bool  `validate:"required"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	yes := true
	cases := []struct {
		name    string
		in      locationReq
		wantErr bool
	}{
		{"ok", locationReq{Location: "10.5,-20.25", Positive: &yes}, false},
		{"missing location", locationReq{Positive: &yes}, true},
		{"missing positive", locationReq{Location: "1,2"}, true},
		{"malformed", locationReq{Location: "1;2", Positive: &yes}, true},
		{"out of range", locationReq{Location: "91,0", Positive: &yes}, true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateStruct(tc.in)
			if tc.wantErr {
				if !errors.Is(err, e.ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestVar(t *testing.T) {
	t.Parallel()

	if err := Var("-33.8688,151.2093", "required,location"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Var("abc", "required,location"); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
