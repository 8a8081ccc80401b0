package main

import (
	"fmt"
	"net/http"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/config"
	appHTTP "github.com/hexaline-bpo/agentpay-backend-go/internal/handler/http"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/database"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/jwt"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/repository/postgresql"
	agentService "github.com/hexaline-bpo/agentpay-backend-go/internal/service/agent"
	attendanceService "github.com/hexaline-bpo/agentpay-backend-go/internal/service/attendance"
	authService "github.com/hexaline-bpo/agentpay-backend-go/internal/service/auth"
	importerService "github.com/hexaline-bpo/agentpay-backend-go/internal/service/importer"
	payrollService "github.com/hexaline-bpo/agentpay-backend-go/internal/service/payroll"
	saleService "github.com/hexaline-bpo/agentpay-backend-go/internal/service/sale"
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

	userRepo := postgresql.NewUserRepository(db)
	agentRepo := postgresql.NewAgentRepository(db)
	saleRepo := postgresql.NewSaleRepository(db)
	fineRepo := postgresql.NewFineRepository(db)
	bonusRepo := postgresql.NewBonusRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	hrRepo := postgresql.NewHRRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, agentRepo, jwtService)
	agentSvc := agentService.NewAgentService(agentRepo, cfg.Payroll.DefaultAgentPassword)
	saleSvc := saleService.NewSaleService(db, saleRepo, agentRepo, fineRepo, cfg.Payroll.DockPenalty)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, agentRepo, cfg.Payroll.LateThreshold)
	payrollSvc := payrollService.NewPayrollService(db, agentRepo, saleRepo, fineRepo, bonusRepo)
	importSvc := importerService.NewImportService(db, agentRepo, saleRepo, hrRepo, cfg.Payroll.DefaultAgentPassword)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Agent:      appHTTP.NewAgentHandler(agentSvc),
		Sale:       appHTTP.NewSaleHandler(saleSvc),
		Fine:       appHTTP.NewFineHandler(fineRepo, agentRepo),
		Bonus:      appHTTP.NewBonusHandler(bonusRepo, agentRepo),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		HR:         appHTTP.NewHRHandler(hrRepo, agentRepo),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Import:     appHTTP.NewImportHandler(importSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
