package main

import (
	"fmt"
	"net/http"

	"github.com/pacificpay/pacificpay-backend-go/internal/config"
	appHTTP "github.com/pacificpay/pacificpay-backend-go/internal/handler/http"
	"github.com/pacificpay/pacificpay-backend-go/internal/pkg/cron"
	"github.com/pacificpay/pacificpay-backend-go/internal/pkg/database"
	"github.com/pacificpay/pacificpay-backend-go/internal/pkg/jwt"
	"github.com/pacificpay/pacificpay-backend-go/internal/repository/postgresql"
	attendanceService "github.com/pacificpay/pacificpay-backend-go/internal/service/attendance"
	holidayService "github.com/pacificpay/pacificpay-backend-go/internal/service/holiday"
	"github.com/pacificpay/pacificpay-backend-go/internal/service/paycalc"
	payrollService "github.com/pacificpay/pacificpay-backend-go/internal/service/payroll"
	scheduleService "github.com/pacificpay/pacificpay-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	scheduleAssignmentRepo := postgresql.NewScheduleAssignmentRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	policy := paycalc.NewPolicy(cfg.Policy)

	entitlementCalc := payrollService.NewEntitlementCalculator(
		policy,
		attendanceRepo,
		employeeRepo,
		workScheduleRepo,
		holidayRepo,
		leaveRepo,
	)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		policy,
		attendanceRepo,
		employeeRepo,
		workScheduleRepo,
		holidayRepo,
		entitlementCalc,
	)
	scheduleSvc := scheduleService.NewScheduleService(db, workScheduleRepo, scheduleAssignmentRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	payrollSvc := payrollService.NewPayrollService(policy, companyRepo, entitlementCalc)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(
		attendanceRepo,
		employeeRepo,
		workScheduleRepo,
		holidayRepo,
		companyRepo,
		entitlementCalc,
		db,
	)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		scheduleHandler,
		holidayHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
