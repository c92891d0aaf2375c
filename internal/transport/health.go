package transport

import (
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Readiness reports the follower's state through the gRPC health service.
// The overall server status and the named service move together.
type Readiness struct {
	server  *health.Server
	service string
}

// NewReadiness returns a Readiness that starts as NOT_SERVING.
func NewReadiness(server *health.Server, service string) *Readiness {
	r := &Readiness{server: server, service: service}
	r.SetReady(false)
	return r
}

// SetReady switches between SERVING and NOT_SERVING.
func (r *Readiness) SetReady(ready bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if ready {
		status = healthpb.HealthCheckResponse_SERVING
	}
	r.server.SetServingStatus("", status)
	if r.service != "" {
		r.server.SetServingStatus(r.service, status)
	}
}
