package grpc

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-medcare/internal/logger"
	"github.com/MKhiriev/go-medcare/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type stubPrediction struct {
	service.PredictionService
	loaded bool
}

func (s stubPrediction) ModelLoaded() bool { return s.loaded }

func check(t *testing.T, h *Handler, name string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := h.HealthServer().Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHandler_Statuses(t *testing.T) {
	tests := []struct {
		name      string
		services  *service.Services
		wantModel healthpb.HealthCheckResponse_ServingStatus
	}{
		{
			name:      "model loaded",
			services:  &service.Services{PredictionService: stubPrediction{loaded: true}},
			wantModel: healthpb.HealthCheckResponse_SERVING,
		},
		{
			name:      "model absent",
			services:  &service.Services{PredictionService: stubPrediction{}},
			wantModel: healthpb.HealthCheckResponse_NOT_SERVING,
		},
		{
			name:      "no services",
			wantModel: healthpb.HealthCheckResponse_NOT_SERVING,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(tt.services, logger.Nop())
			h.Register(grpc.NewServer())

			assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, h, ""))
			assert.Equal(t, tt.wantModel, check(t, h, ModelService))
		})
	}
}

func TestHandler_Shutdown(t *testing.T) {
	h := NewHandler(&service.Services{PredictionService: stubPrediction{loaded: true}}, logger.Nop())
	h.Register(grpc.NewServer())

	h.Shutdown()

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, ModelService))
}

