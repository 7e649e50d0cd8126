package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/nradhesh/Outbreak-blockchain/internal/domain"
	"github.com/nradhesh/Outbreak-blockchain/internal/service"
	mock_service "github.com/nradhesh/Outbreak-blockchain/internal/service/mocks"
	"github.com/nradhesh/Outbreak-blockchain/pkg/e"
)

func TestAdmin_SetOutbreakRadius_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reg := mock_service.NewMockOutbreakRegistry(ctrl)
	cache := mock_service.NewMockSnapshotCache(ctrl)
	svc := service.NewAdminOutbreakService(reg, service.NewSnapshotPublisher(reg, cache, newTestLogger()), newTestLogger())

	reg.EXPECT().SetOutbreakRadius(gomock.Any(), domain.Identity("root"), uint64(500)).Return(nil).Times(1)
	expectSnapshotReads(reg, domain.OutbreakLocations{})
	cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	if err := svc.SetOutbreakRadius(context.Background(), "root", domain.SetRadiusRequest{RadiusMeters: ptr(uint64(500))}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAdmin_SetOutbreakRadius_Unauthorized(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reg := mock_service.NewMockOutbreakRegistry(ctrl)
	cache := mock_service.NewMockSnapshotCache(ctrl)
	svc := service.NewAdminOutbreakService(reg, service.NewSnapshotPublisher(reg, cache, newTestLogger()), newTestLogger())

	reg.EXPECT().
		SetOutbreakRadius(gomock.Any(), domain.Identity("mallory"), uint64(500)).
		Return(e.ErrUnauthorized).
		Times(1)

	err := svc.SetOutbreakRadius(context.Background(), "mallory", domain.SetRadiusRequest{RadiusMeters: ptr(uint64(500))})
	if !errors.Is(err, e.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestAdmin_SetOutbreakRadius_BadInput(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewAdminOutbreakService(mock_service.NewMockOutbreakRegistry(ctrl), nil, newTestLogger())

	if err := svc.SetOutbreakRadius(context.Background(), "", domain.SetRadiusRequest{RadiusMeters: ptr(uint64(1))}); !errors.Is(err, e.ErrMissingIdentity) {
		t.Fatalf("expected missing identity, got %v", err)
	}
	if err := svc.SetOutbreakRadius(context.Background(), "root", domain.SetRadiusRequest{}); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestAdmin_OutbreakRadius(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reg := mock_service.NewMockOutbreakRegistry(ctrl)
	svc := service.NewAdminOutbreakService(reg, nil, newTestLogger())

	reg.EXPECT().OutbreakRadius().Return(uint64(750))

	if got := svc.OutbreakRadius(context.Background()); got != 750 {
		t.Fatalf("got %d want 750", got)
	}
}
