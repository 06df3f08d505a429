// Command seed wipes nothing and fills an empty database with demo data:
// default settings, departments, employees, the official-holiday calendar,
// accounts with permission groups, and roughly two months of synthetic
// attendance.
package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/MohamedSalah50/hr-backend-go/internal/config"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/attendance"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/department"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/employee"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/holiday"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/permission"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/setting"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/user"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/usergroup"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/database"
	"github.com/MohamedSalah50/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/MohamedSalah50/hr-backend-go/internal/service/attendance"
	departmentService "github.com/MohamedSalah50/hr-backend-go/internal/service/department"
	employeeService "github.com/MohamedSalah50/hr-backend-go/internal/service/employee"
	holidayService "github.com/MohamedSalah50/hr-backend-go/internal/service/holiday"
	permissionService "github.com/MohamedSalah50/hr-backend-go/internal/service/permission"
	settingService "github.com/MohamedSalah50/hr-backend-go/internal/service/setting"
	userGroupService "github.com/MohamedSalah50/hr-backend-go/internal/service/usergroup"
	"github.com/brianvoe/gofakeit"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const employeeCount = 15

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	gofakeit.Seed(time.Now().UnixNano())

	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)

	permissionRepo := postgresql.NewPermissionRepository(db)
	userGroupRepo := postgresql.NewUserGroupRepository(db)

	settingSvc := settingService.NewSettingService(settingRepo)
	permissionSvc := permissionService.NewPermissionService(permissionRepo)
	userGroupSvc := userGroupService.NewUserGroupService(userGroupRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, holidayRepo, settingSvc)

	ctx := context.Background()
	start := time.Now()

	userIDs := seedUsers(ctx, userRepo)
	permissions := seedPermissions(ctx, permissionSvc)
	seedUserGroups(ctx, userGroupSvc, permissions, userIDs)
	seedSettings(ctx, settingSvc)
	departments := seedDepartments(ctx, departmentSvc)
	employees := seedEmployees(ctx, employeeSvc, departments)
	seedHolidays(ctx, holidaySvc)
	seedAttendance(ctx, attendanceSvc, employees)

	fmt.Printf("Seeding complete in %.2fs\n", time.Since(start).Seconds())
	fmt.Println("Login: admin01 / Admin@123")
}

func seedUsers(ctx context.Context, repo user.UserRepository) []string {
	accounts := []struct {
		fullName string
		userName string
		email    string
		password string
		role     user.Role
	}{
		{"System Administrator", "admin01", "admin@company.com", "Admin@123", user.RoleAdmin},
		{"HR Manager", "hrmanager", "hr@company.com", "Hr@123456", user.RoleAdmin},
		{"Accountant", "accountant", "accountant@company.com", "Account@123", user.RoleAdmin},
		{"Viewer", "viewer01", "viewer@company.com", "Viewer@123", user.RoleUser},
	}

	ids := make([]string, 0, len(accounts))
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Failed to hash password: ", err)
		}
		created, err := repo.Create(ctx, user.User{
			FullName:     a.fullName,
			UserName:     a.userName,
			Email:        a.email,
			PasswordHash: string(hash),
			Role:         a.role,
			IsActive:     true,
		})
		if err != nil {
			log.Fatal("Failed to create user: ", err)
		}
		ids = append(ids, created.ID)
	}
	fmt.Printf("Created %d users\n", len(accounts))
	return ids
}

func seedPermissions(ctx context.Context, svc permission.PermissionService) []string {
	resources := []string{"employee", "department", "attendance", "salary-report", "official-holiday", "setting"}
	actions := []string{"read", "write"}

	names := make([]string, 0, len(resources)*len(actions))
	for _, resource := range resources {
		for _, action := range actions {
			name := resource + ":" + action
			if _, err := svc.Create(ctx, permission.CreatePermissionRequest{
				Name:     name,
				Resource: resource,
				Action:   action,
			}); err != nil {
				log.Fatal("Failed to create permission: ", err)
			}
			names = append(names, name)
		}
	}
	fmt.Printf("Created %d permissions\n", len(names))
	return names
}

func seedUserGroups(ctx context.Context, svc usergroup.UserGroupService, permissions, userIDs []string) {
	readOnly := make([]string, 0, len(permissions))
	for _, p := range permissions {
		if strings.HasSuffix(p, ":read") {
			readOnly = append(readOnly, p)
		}
	}

	describe := func(s string) *string { return &s }
	groups := []usergroup.CreateUserGroupRequest{
		{Name: "HR Administrators", Description: describe("Full access to every module"), Permissions: permissions, UserIDs: userIDs[:2]},
		{Name: "Payroll", Description: describe("Salary reports and attendance"), Permissions: []string{"attendance:read", "salary-report:read", "salary-report:write"}, UserIDs: userIDs[2:3]},
		{Name: "Viewers", Description: describe("Read-only dashboard access"), Permissions: readOnly, UserIDs: userIDs[3:]},
	}

	for _, g := range groups {
		if _, err := svc.Create(ctx, g); err != nil {
			log.Fatal("Failed to create user group: ", err)
		}
	}
	fmt.Printf("Created %d user groups\n", len(groups))
}

func seedSettings(ctx context.Context, svc setting.SettingService) {
	describe := func(s string) *string { return &s }

	entries := []setting.UpsertSettingRequest{
		{Key: setting.KeyOvertimeRatePerHour, Value: 50, DataType: string(setting.DataTypeNumber), Description: describe("Overtime pay per hour")},
		{Key: setting.KeyDeductionRatePerHour, Value: 30, DataType: string(setting.DataTypeNumber), Description: describe("Deduction per late hour")},
		{Key: setting.KeyWeekendDays, Value: []string{"Friday", "Saturday"}, DataType: string(setting.DataTypeArray), Description: describe("Weekly rest days")},
		{Key: setting.KeyWorkingHoursPerDay, Value: 8, DataType: string(setting.DataTypeNumber), Description: describe("Standard working hours")},
		{Key: "company_name", Value: "Advanced Technology Co.", DataType: string(setting.DataTypeString), Description: describe("Company display name")},
		{Key: "late_tolerance_minutes", Value: 15, DataType: string(setting.DataTypeNumber), Description: describe("Grace period before counting lateness")},
	}

	for _, e := range entries {
		if _, err := svc.Upsert(ctx, e); err != nil {
			log.Fatal("Failed to upsert setting: ", err)
		}
	}
	fmt.Printf("Created %d settings\n", len(entries))
}

func seedDepartments(ctx context.Context, svc department.DepartmentService) []department.DepartmentResponse {
	describe := func(s string) *string { return &s }

	specs := []department.CreateDepartmentRequest{
		{Name: "Human Resources", Description: describe("Employee affairs and recruitment")},
		{Name: "Information Technology", Description: describe("Systems development and maintenance")},
		{Name: "Accounting & Finance", Description: describe("Bookkeeping and financial control")},
		{Name: "Sales & Marketing", Description: describe("Sales strategy and campaigns")},
		{Name: "Customer Service", Description: describe("Support and client services")},
		{Name: "Executive Management", Description: describe("Senior leadership")},
		{Name: "Operations & Logistics", Description: describe("Operations management")},
	}

	created := make([]department.DepartmentResponse, 0, len(specs))
	for _, s := range specs {
		dept, err := svc.Create(ctx, s)
		if err != nil {
			log.Fatal("Failed to create department: ", err)
		}
		created = append(created, dept)
	}
	fmt.Printf("Created %d departments\n", len(created))
	return created
}

func seedEmployees(ctx context.Context, svc employee.EmployeeService, departments []department.DepartmentResponse) []employee.EmployeeResponse {
	created := make([]employee.EmployeeResponse, 0, employeeCount)

	for i := 0; i < employeeCount; i++ {
		gender := "male"
		name := gofakeit.Name()
		if gofakeit.Number(0, 1) == 1 {
			gender = "female"
		}

		birthYear := gofakeit.Number(1985, 2000)
		birthMonth := gofakeit.Number(1, 12)
		birthDay := gofakeit.Number(1, 28)

		// Operations runs an early shift, everyone else works 09:00-17:00
		checkIn, checkOut := "09:00", "17:00"
		dept := departments[i%len(departments)]
		if dept.Name == "Operations & Logistics" {
			checkIn, checkOut = "08:00", "16:00"
		}

		req := employee.CreateEmployeeRequest{
			FullName:   name,
			NationalID: fmt.Sprintf("2%02d%02d%02d%07d", birthYear%100, birthMonth, birthDay, gofakeit.Number(0, 9999999)),
			Phone:      fmt.Sprintf("01%09d", gofakeit.Number(0, 999999999)),
			Address:    fmt.Sprintf("%s, %s", gofakeit.Address().City, gofakeit.Address().Street),
			BirthDate:  fmt.Sprintf("%04d-%02d-%02d", birthYear, birthMonth, birthDay),
			Gender:     gender,
			Nationality: "Egyptian",
			ContractDate: fmt.Sprintf("%04d-%02d-%02d",
				gofakeit.Number(2016, 2024), gofakeit.Number(1, 12), gofakeit.Number(1, 28)),
			BaseSalary:   decimal.NewFromInt(int64(gofakeit.Number(14, 36) * 500)),
			CheckInTime:  checkIn,
			CheckOutTime: checkOut,
			DepartmentID: dept.ID,
		}

		emp, err := svc.Create(ctx, req)
		if err != nil {
			log.Fatal("Failed to create employee: ", err)
		}
		created = append(created, emp)
	}
	fmt.Printf("Created %d employees\n", len(created))
	return created
}

func seedHolidays(ctx context.Context, svc holiday.HolidayService) {
	year := time.Now().Year()
	recurring := true
	once := false

	specs := []holiday.CreateHolidayRequest{
		{Name: "New Year's Day", Date: fmt.Sprintf("%d-01-01", year), IsRecurring: &recurring},
		{Name: "Revolution Day (January 25)", Date: fmt.Sprintf("%d-01-25", year), IsRecurring: &recurring},
		{Name: "Sinai Liberation Day", Date: fmt.Sprintf("%d-04-25", year), IsRecurring: &recurring},
		{Name: "Labour Day", Date: fmt.Sprintf("%d-05-01", year), IsRecurring: &recurring},
		{Name: "Revolution Day (July 23)", Date: fmt.Sprintf("%d-07-23", year), IsRecurring: &recurring},
		{Name: "Armed Forces Day", Date: fmt.Sprintf("%d-10-06", year), IsRecurring: &recurring},
		{Name: "Eid al-Fitr", Date: fmt.Sprintf("%d-03-30", year), IsRecurring: &once},
		{Name: "Eid al-Adha", Date: fmt.Sprintf("%d-06-06", year), IsRecurring: &once},
	}

	for _, s := range specs {
		if _, err := svc.Create(ctx, s); err != nil {
			log.Fatal("Failed to create holiday: ", err)
		}
	}
	fmt.Printf("Created %d holidays\n", len(specs))
}

// seedAttendance covers the previous month and the current month up to
// yesterday. Punch times wobble around each employee's schedule so late
// and overtime hours come out non-trivial.
func seedAttendance(ctx context.Context, svc attendance.AttendanceService, employees []employee.EmployeeResponse) {
	now := time.Now()
	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	firstDay := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)

	total := 0
	for _, emp := range employees {
		for day := firstDay; !day.After(yesterday); day = day.AddDate(0, 0, 1) {
			req := attendance.CreateAttendanceRequest{
				EmployeeID: emp.ID,
				Date:       day.Format("2006-01-02"),
			}

			weekend := day.Weekday() == time.Friday || day.Weekday() == time.Saturday
			switch {
			case weekend:
				// No punches; the classifier marks the day as holiday
			case gofakeit.Number(1, 100) <= 5:
				status := string(attendance.StatusAbsent)
				req.Status = &status
			case gofakeit.Number(1, 100) <= 2:
				status := string(attendance.StatusSickLeave)
				req.Status = &status
			default:
				checkIn := wobble(emp.CheckInTime, 45)
				checkOut := wobble(emp.CheckOutTime, 60)
				req.CheckIn = &checkIn
				req.CheckOut = &checkOut
			}

			if _, err := svc.Create(ctx, req); err != nil {
				log.Fatal("Failed to create attendance record: ", err)
			}
			total++
		}
	}
	fmt.Printf("Created %d attendance records\n", total)
}

// wobble shifts an HH:MM time by up to ±spread/2 minutes.
func wobble(hhmm string, spread int) string {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	shifted := t.Add(time.Duration(gofakeit.Number(0, spread)-spread/2) * time.Minute)
	return shifted.Format("15:04")
}
