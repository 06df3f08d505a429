package main

import (
	"fmt"
	"net/http"

	"github.com/MohamedSalah50/hr-backend-go/internal/config"
	appHTTP "github.com/MohamedSalah50/hr-backend-go/internal/handler/http"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/cron"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/database"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/jwt"
	"github.com/MohamedSalah50/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/MohamedSalah50/hr-backend-go/internal/service/attendance"
	authService "github.com/MohamedSalah50/hr-backend-go/internal/service/auth"
	departmentService "github.com/MohamedSalah50/hr-backend-go/internal/service/department"
	employeeService "github.com/MohamedSalah50/hr-backend-go/internal/service/employee"
	holidayService "github.com/MohamedSalah50/hr-backend-go/internal/service/holiday"
	permissionService "github.com/MohamedSalah50/hr-backend-go/internal/service/permission"
	salaryReportService "github.com/MohamedSalah50/hr-backend-go/internal/service/salaryreport"
	settingService "github.com/MohamedSalah50/hr-backend-go/internal/service/setting"
	userService "github.com/MohamedSalah50/hr-backend-go/internal/service/user"
	userGroupService "github.com/MohamedSalah50/hr-backend-go/internal/service/usergroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	permissionRepo := postgresql.NewPermissionRepository(db)
	userGroupRepo := postgresql.NewUserGroupRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)
	salaryReportRepo := postgresql.NewSalaryReportRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, refreshTokenRepo, jwtService)
	userSvc := userService.NewUserService(userRepo, userGroupRepo)
	permissionSvc := permissionService.NewPermissionService(permissionRepo)
	userGroupSvc := userGroupService.NewUserGroupService(userGroupRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo)
	settingSvc := settingService.NewSettingService(settingRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, holidayRepo, settingSvc)
	salaryReportSvc := salaryReportService.NewSalaryReportService(salaryReportRepo, attendanceRepo, employeeRepo, settingSvc, txManager)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		User:         appHTTP.NewUserHandler(userSvc),
		Permission:   appHTTP.NewPermissionHandler(permissionSvc),
		UserGroup:    appHTTP.NewUserGroupHandler(userGroupSvc),
		Department:   appHTTP.NewDepartmentHandler(departmentSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Holiday:      appHTTP.NewHolidayHandler(holidaySvc),
		Setting:      appHTTP.NewSettingHandler(settingSvc),
		SalaryReport: appHTTP.NewSalaryReportHandler(salaryReportSvc),
	})

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(attendanceRepo, employeeRepo, holidayRepo, settingSvc)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
