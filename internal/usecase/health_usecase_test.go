package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/marianela-miguel3/yellow-bear-store-api/internal/domain/entities"
	mock_interfaces "github.com/marianela-miguel3/yellow-bear-store-api/internal/usecase/interfaces/mocks"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func TestHealthUseCase_Check(t *testing.T) {
	t.Run("healthy store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHealthRepository(ctrl)
		uc := NewHealthUseCase(repo, "test", zerolog.Nop())

		repo.EXPECT().Ping(gomock.Any()).Return(nil)
		repo.EXPECT().SaveHealthCheck(gomock.Any(), gomock.AssignableToTypeOf(entities.HealthRecord{})).Return(entities.HealthRecord{}, nil)

		record, err := uc.Check(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.Status != "OK" {
			t.Fatalf("expected OK status, got %q", record.Status)
		}
		if record.Services.Database != entities.ServiceStateOK || record.Services.Cache != entities.ServiceStateOK {
			t.Fatalf("unexpected services: %+v", record.Services)
		}
		if record.Environment != "test" {
			t.Fatalf("unexpected environment: %q", record.Environment)
		}
		if record.Timestamp.IsZero() || record.Uptime < 0 {
			t.Fatalf("unexpected snapshot: %+v", record)
		}
		if record.Memory.Total <= 0 || record.Memory.Used <= 0 {
			t.Fatalf("expected memory figures, got %+v", record.Memory)
		}
	})

	t.Run("probe failure degrades database status only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHealthRepository(ctrl)
		uc := NewHealthUseCase(repo, "test", zerolog.Nop())

		repo.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
		repo.EXPECT().SaveHealthCheck(gomock.Any(), gomock.Any()).Return(entities.HealthRecord{}, nil)

		record, err := uc.Check(context.Background())
		if err != nil {
			t.Fatalf("expected nil error on degraded store, got %v", err)
		}
		if record.Status != "OK" {
			t.Fatalf("expected OK status, got %q", record.Status)
		}
		if record.Services.Database != entities.ServiceStateError {
			t.Fatalf("expected database ERROR, got %q", record.Services.Database)
		}
	})

	t.Run("save failure is tolerated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHealthRepository(ctrl)
		uc := NewHealthUseCase(repo, "test", zerolog.Nop())

		repo.EXPECT().Ping(gomock.Any()).Return(nil)
		repo.EXPECT().SaveHealthCheck(gomock.Any(), gomock.Any()).Return(entities.HealthRecord{}, errors.New("write throttled"))

		record, err := uc.Check(context.Background())
		if err != nil {
			t.Fatalf("expected nil error when save fails, got %v", err)
		}
		if record.Services.Database != entities.ServiceStateOK {
			t.Fatalf("unexpected database status: %q", record.Services.Database)
		}
	})
}

func TestRoundMB(t *testing.T) {
	if got := roundMB(1024 * 1024); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
	if got := roundMB(1572864); got != 1.5 {
		t.Fatalf("expected 1.5, got %v", got)
	}
}
