package transport

import (
	"fmt"
	"net/http"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// NewGRPCServer builds the gRPC server with the standard interceptor chain and registers the
// health service.
func NewGRPCServer(healthServer *health.Server, logger *zap.Logger) *grpc.Server {
	unary := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	stream := []grpc.StreamServerInterceptor{
		grpcRecovery.StreamServerInterceptor(),
		grpcCtxTags.StreamServerInterceptor(),
		grpcPrometheus.StreamServerInterceptor,
		grpcZap.StreamServerInterceptor(logger),
	}
	server := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(unary...)),
		grpc.StreamInterceptor(grpcMiddleware.ChainStreamServer(stream...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()
	healthpb.RegisterHealthServer(server, healthServer)
	reflection.Register(server)
	grpcPrometheus.Register(server)
	return server
}

// NewHealthGateway returns a gateway mux answering /healthz from the gRPC health service at
// grpcAddr. The returned close func releases the client connection.
func NewHealthGateway(grpcAddr string) (http.Handler, func() error, error) {
	conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("dial grpc health at %s: %w", grpcAddr, err)
	}
	gw := gwruntime.NewServeMux(gwruntime.WithHealthzEndpoint(healthpb.NewHealthClient(conn)))
	return gw, conn.Close, nil
}

// Gate wraps a handler with admission control.
type Gate func(http.Handler) http.Handler

// HTTPRoutes collects the handlers mounted on the public HTTP server.
type HTTPRoutes struct {
	WebSocket http.Handler
	REST      *RESTHandler
	Health    http.Handler
	Gate      Gate
}

// NewHTTPHandler mounts every route. Only /ws and /api/ pass the admission gate.
func NewHTTPHandler(routes HTTPRoutes) http.Handler {
	api := http.NewServeMux()
	if routes.REST != nil {
		routes.REST.Register(api)
	}
	if routes.WebSocket != nil {
		api.Handle("GET /ws", routes.WebSocket)
	}

	gated := http.Handler(api)
	if routes.Gate != nil {
		gated = routes.Gate(api)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if routes.Health != nil {
		mux.Handle("/healthz", routes.Health)
	}
	mux.Handle("/", gated)

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Retry-After", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
	}).Handler(mux)
}
