package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/talentosplus/talentos-backend-go/internal/config"
	appHTTP "github.com/talentosplus/talentos-backend-go/internal/handler/http"
	"github.com/talentosplus/talentos-backend-go/internal/pkg/database"
	"github.com/talentosplus/talentos-backend-go/internal/pkg/email"
	"github.com/talentosplus/talentos-backend-go/internal/pkg/jwt"
	"github.com/talentosplus/talentos-backend-go/internal/pkg/pdf"
	"github.com/talentosplus/talentos-backend-go/internal/repository/postgresql"
	assistantService "github.com/talentosplus/talentos-backend-go/internal/service/assistant"
	authService "github.com/talentosplus/talentos-backend-go/internal/service/auth"
	dashboardService "github.com/talentosplus/talentos-backend-go/internal/service/dashboard"
	employeeService "github.com/talentosplus/talentos-backend-go/internal/service/employee"
	"github.com/talentosplus/talentos-backend-go/internal/service/master"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	educationLevelRepo := postgresql.NewEducationLevelRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	masterSvc := master.NewMasterService(departmentRepo, positionRepo, educationLevelRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, masterSvc, emailService, txManager)
	authSvc := authService.NewAuthService(employeeSvc, jwtService)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)
	assistantSvc := assistantService.NewAssistantService(cfg.AI, dashboardSvc, employeeSvc)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, pdf.NewGenerator())
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc, assistantSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		masterHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
