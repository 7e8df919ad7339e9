package main

import (
	assessment "Arbor/internal/assessment"
	auth "Arbor/internal/auth"
	defect "Arbor/internal/calc/defect"
	autodesign "Arbor/internal/calc/premium/autodesign"
	batch "Arbor/internal/calc/premium/batch"
	importer "Arbor/internal/calc/premium/importer"
	recommend "Arbor/internal/calc/premium/recommend"
	report "Arbor/internal/calc/report"
	rootplate "Arbor/internal/calc/rootplate"
	scenario "Arbor/internal/calc/scenario"
	section "Arbor/internal/calc/section"
	threshold "Arbor/internal/calc/threshold"
	catalog "Arbor/internal/catalog"
	repo "Arbor/internal/repo"
	"context"
	"database/sql"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
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
	userRepo := repo.NewPostgresDB(db)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, relying on environment")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	catalogH := &catalog.Handler{}
	mux.HandleFunc("/catalog/species", catalogH.Species).Methods("GET")
	mux.HandleFunc("/catalog/wind", catalogH.Winds).Methods("GET")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/verify", authEnv.VerifyHandler).Methods("POST")

	sectionH := &section.Handler{}
	defectH := &defect.Handler{}
	rootplateH := &rootplate.Handler{}
	thresholdH := &threshold.Handler{}
	scenarioH := &scenario.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	recommendH := &recommend.Handler{}
	autodesignH := &autodesign.Handler{}
	reportH := &report.Handler{}
	assessmentH := &assessment.Handler{Repo: userRepo}

	secureApi.HandleFunc("/tools/tree/calc", sectionH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/defect/calc", defectH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/rootplate/calc", rootplateH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/threshold/calc", thresholdH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/scenario/pruning", scenarioH.Pruning).Methods("POST")
	secureApi.HandleFunc("/tools/scenario/sweep", scenarioH.Sweep).Methods("POST")

	secureApi.HandleFunc("/tools/batch/calc", batchH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/import/xlsx", importerH.Trees).Methods("POST")
	secureApi.HandleFunc("/tools/recommend/reduction", recommendH.Reduction).Methods("POST")
	secureApi.HandleFunc("/tools/autodesign/stem", autodesignH.Stem).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/assessments", assessmentH.Save).Methods("POST")
	secureApi.HandleFunc("/assessments", assessmentH.List).Methods("GET")
	secureApi.HandleFunc("/assessments/{id:[0-9]+}", assessmentH.Get).Methods("GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":443"
	}
	log.Println("Starting server on", addr)
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
