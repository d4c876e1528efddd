package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"PipeFlow/internal/auth"
	"PipeFlow/internal/calc/fittings"
	"PipeFlow/internal/calc/fluid"
	"PipeFlow/internal/calc/pump"
	"PipeFlow/internal/calc/report"
	"PipeFlow/internal/calc/route"
	"PipeFlow/internal/calc/segment"
	"PipeFlow/internal/calc/sizing"
	"PipeFlow/internal/calc/system"
	"PipeFlow/internal/catalog"
	"PipeFlow/internal/project"
	"PipeFlow/internal/repo"
	"PipeFlow/pkg/conf"
	"PipeFlow/pkg/logger"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", conf.Conf.GetString("frontend.host"))
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	dbRepo := repo.NewPostgresDB(db)
	if err := godotenv.Load(); err != nil {
		logger.Logger.Infof("no .env file, relying on the environment")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		logger.Logger.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: dbRepo}
	projectH := &project.Handler{Repo: dbRepo}

	limiter := auth.NewIPRateLimiter(
		rate.Limit(conf.Conf.GetFloat64("auth.rate_limit_rps")),
		conf.Conf.GetInt("auth.rate_limit_burst"),
	)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/projects", projectH.Save).Methods("POST")
	secureApi.HandleFunc("/projects", projectH.List).Methods("GET")
	secureApi.HandleFunc("/projects/{id:[0-9]+}", projectH.Get).Methods("GET")
	secureApi.HandleFunc("/projects/{id:[0-9]+}", projectH.Delete).Methods("DELETE")

	fluidH := &fluid.Handler{Lookup: catalog.FluidMethod, IDs: catalog.FluidIDs}
	fittingsH := &fittings.Handler{Env: catalog.Env, PipeSpec: catalog.PipeSpec}
	segmentH := &segment.Handler{}
	systemH := &system.Handler{}
	routeH := &route.Handler{}
	pumpH := &pump.Handler{}
	sizingH := &sizing.Handler{}
	reportH := &report.Handler{}

	secureApi.HandleFunc("/tools/fluid/list", fluidH.List).Methods("GET")
	secureApi.HandleFunc("/tools/fluid/properties", fluidH.Properties).Methods("POST")
	secureApi.HandleFunc("/tools/fittings/k", fittingsH.Resolve).Methods("POST")
	secureApi.HandleFunc("/tools/segment/calc", segmentH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/system/calc", systemH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/route/analyze", routeH.AnalyzeRoute).Methods("POST")
	secureApi.HandleFunc("/tools/route/calc", routeH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/pump/calc", pumpH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/sizing/recommend", sizingH.Recommend).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.GeneratePDF).Methods("POST")
	secureApi.HandleFunc("/tools/report/xlsx", reportH.GenerateXLSX).Methods("POST")
	secureApi.HandleFunc("/tools/report/import", reportH.Import).Methods("POST")
}

func main() {
	conf.InitConf("./pipeflow.yaml")
	logger.InitLogger("pipeflow")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	router := mux.NewRouter()
	addr := conf.Conf.GetString("server.addr")
	logger.Logger.Infof("starting server on %s", addr)
	HandleList(router, db)
	handler := CORS(router)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		cert := conf.Conf.GetString("server.cert_file")
		key := conf.Conf.GetString("server.key_file")
		var err error
		if cert != "" && key != "" {
			err = server.ListenAndServeTLS(cert, key)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Logger.Errorf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Logger.Info("shutdown signal received")

	timeout := time.Duration(conf.Conf.GetInt("server.shutdown_timeout_s")) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Fatalf("server shutdown: %v", err)
	}
	logger.Logger.Info("server stopped")

	wg.Wait()
}
