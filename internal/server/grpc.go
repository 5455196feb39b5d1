package server

import (
	gaugev1 "GaugeLedger/gen/go/gaugeledger/v1"
	"GaugeLedger/internal/observability"
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// GRPCServer wraps the gRPC server and the HTTP/JSON gateway in front of it.
type GRPCServer struct {
	grpcServer    *grpc.Server
	httpServer    *http.Server
	health        *health.Server
	grpcAddr      string
	httpAddr      string
	healthChecker *observability.HealthChecker
}

// NewGRPCServer registers svc, the standard health service and server
// reflection.
func NewGRPCServer(
	grpcAddr, httpAddr string,
	svc gaugev1.GaugeServiceServer,
	metrics *observability.Metrics,
	healthChecker *observability.HealthChecker,
	logger zerolog.Logger,
) *GRPCServer {
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(observeUnary(metrics, logger)))
	gaugev1.RegisterGaugeServiceServer(grpcServer, svc)
	reflection.Register(grpcServer)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(gaugev1.GaugeService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &GRPCServer{
		grpcServer:    grpcServer,
		health:        healthServer,
		grpcAddr:      grpcAddr,
		httpAddr:      httpAddr,
		healthChecker: healthChecker,
	}
}

// SetServing flips the gRPC health status of the gauge service.
func (s *GRPCServer) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(gaugev1.GaugeService_ServiceDesc.ServiceName, st)
}

// StartGRPC listens on the configured address and serves until ctx is done.
func (s *GRPCServer) StartGRPC(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.grpcAddr)
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}
	log.Printf("INFO: gRPC server listening on %s", s.grpcAddr)
	return s.Serve(ctx, lis)
}

// Serve serves on lis until ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	go func() {
		<-ctx.Done()
		log.Println("INFO: gRPC server shutting down...")
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
	}()
	return s.grpcServer.Serve(lis)
}

// Stop ends the gRPC server immediately.
func (s *GRPCServer) Stop() {
	s.grpcServer.Stop()
}

// StartHTTPGateway serves the HTTP/JSON gateway, proxying to the gRPC
// address, plus the health endpoints.
func (s *GRPCServer) StartHTTPGateway(ctx context.Context) error {
	target := s.grpcAddr
	if strings.HasPrefix(target, ":") {
		target = "localhost" + target
	}
	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("gateway dial: %w", err)
	}
	defer conn.Close()

	mux, err := NewGatewayMux(gaugev1.NewGaugeServiceClient(conn))
	if err != nil {
		return fmt.Errorf("register gateway: %w", err)
	}

	httpMux := http.NewServeMux()
	if s.healthChecker != nil {
		httpMux.HandleFunc("/healthz", s.healthChecker.LivenessHandler)
		httpMux.HandleFunc("/readyz", s.healthChecker.ReadinessHandler)
	}
	httpMux.Handle("/", mux)

	s.httpServer = &http.Server{
		Addr:              s.httpAddr,
		Handler:           httpMux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Println("INFO: HTTP gateway shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(shutdownCtx)
	}()

	log.Printf("INFO: HTTP gateway listening on %s (proxying to gRPC %s)", s.httpAddr, s.grpcAddr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// observeUnary records request metrics and logs server-side failures.
func observeUnary(metrics *observability.Metrics, logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		method := path.Base(info.FullMethod)

		resp, err := handler(ctx, req)

		code := status.Code(err)
		if metrics != nil {
			metrics.QueryRequests.WithLabelValues(method, code.String()).Inc()
			metrics.QueryDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
			if err != nil {
				metrics.QueryErrors.WithLabelValues(method, code.String()).Inc()
			}
		}
		switch code {
		case codes.OK:
		case codes.Internal, codes.Aborted, codes.Unknown:
			logger.Error().Err(err).Str("method", method).Msg("rpc failed")
		default:
			logger.Debug().Err(err).Str("method", method).Str("code", code.String()).Msg("rpc rejected")
		}
		return resp, err
	}
}
