package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	v1 "st29.ru/authcore/api/gen/go/api/proto/authcore/v1"

	"st29.ru/authcore/internal/auth"
	"st29.ru/authcore/internal/config"
	"st29.ru/authcore/internal/httpapi"
	"st29.ru/authcore/internal/obs"
	"st29.ru/authcore/internal/store/pg"
)

var (
	version = "0.3.1"
	commit  = "dev"
)

func main() {
	obs.Init()
	obs.InitBuildInfo(version, commit)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.PGDSN == "" {
		log.Fatal("missing AUTHCORE_PG_DSN")
	}

	store, err := pg.Open(cfg.PGDSN)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer store.Close()

	sessions := auth.NewSessionManager(store, auth.WithSessionTTL(cfg.SessionTTL))
	resolver, err := auth.NewResolver(store, store)
	if err != nil {
		log.Fatalf("resolver: %v", err)
	}
	gateway := auth.NewGateway(sessions, resolver, cfg.ServiceName)
	login, err := auth.NewAuthenticator(store, sessions)
	if err != nil {
		log.Fatalf("authenticator: %v", err)
	}
	catalog, err := auth.NewCatalog(store)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	api := httpapi.New(httpapi.ReadyProbe{DB: store.DB()}, version, httpapi.Deps{
		Gateway:      gateway,
		Login:        login,
		Sessions:     sessions,
		Catalog:      catalog,
		Resolver:     resolver,
		CookieDomain: cfg.CookieDomain,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	grpcSrv := grpc.NewServer()
	gs := httpapi.NewGRPCServer(gateway, catalog)
	v1.RegisterPermissionServiceServer(grpcSrv, gs)
	v1.RegisterUserServiceServer(grpcSrv, gs)

	grpcLis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("listen grpc: %v", err)
	}

	log.Printf("Starting authcore-api %s: http %s, grpc %s", version, cfg.HTTPAddr, cfg.GRPCAddr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen http: %v", err)
		}
	}()
	go func() {
		if err := grpcSrv.Serve(grpcLis); err != nil {
			log.Fatalf("serve grpc: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(ctx)
	grpcSrv.GracefulStop()
	log.Println("Stopped")
}
