package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/frahmantamala/payroll-management/internal"
	"github.com/frahmantamala/payroll-management/internal/bank"
	bankPostgres "github.com/frahmantamala/payroll-management/internal/bank/postgres"
	"github.com/frahmantamala/payroll-management/internal/division"
	divisionPostgres "github.com/frahmantamala/payroll-management/internal/division/postgres"
	"github.com/frahmantamala/payroll-management/internal/employee"
	employeePostgres "github.com/frahmantamala/payroll-management/internal/employee/postgres"
	"github.com/frahmantamala/payroll-management/internal/job"
	jobPostgres "github.com/frahmantamala/payroll-management/internal/job/postgres"
	"github.com/frahmantamala/payroll-management/internal/organization"
	organizationPostgres "github.com/frahmantamala/payroll-management/internal/organization/postgres"
	"github.com/frahmantamala/payroll-management/internal/payroll"
	payrollPostgres "github.com/frahmantamala/payroll-management/internal/payroll/postgres"
	"github.com/frahmantamala/payroll-management/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with a sample organization hierarchy for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			// children first, foreign keys point upward
			for _, table := range []string{"employees", "divisions", "jobs", "banks", "payrolls", "organizations"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		logger.Init(os.Getenv("APP_ENV"))
		lg := logger.LoggerWrapper()

		organizationService := organization.NewService(organizationPostgres.NewOrganizationRepository(db), lg)
		payrollService := payroll.NewService(payrollPostgres.NewPayrollRepository(db), organizationService, lg)
		divisionService := division.NewService(divisionPostgres.NewDivisionRepository(db), payrollService, lg)
		jobService := job.NewService(jobPostgres.NewJobRepository(db), payrollService, lg)
		bankService := bank.NewService(bankPostgres.NewBankRepository(db), organizationService, lg)
		employeeService := employee.NewService(
			employeePostgres.NewEmployeeRepository(db),
			divisionService, jobService, bankService, lg,
		)

		org, err := organizationService.Create(organization.CreateParams{Name: "Acme Holdings"})
		if err != nil {
			log.Fatalf("failed to seed organization: %v", err)
		}
		fmt.Println("Seeded organization:", org.Name)

		pay, err := payrollService.Create(org.ID, payroll.CreateParams{
			Name:        "Monthly Payroll 2026",
			Description: "Monthly payroll run for all divisions",
		})
		if err != nil {
			log.Fatalf("failed to seed payroll: %v", err)
		}
		fmt.Println("Seeded payroll:", pay.Name)

		engineering, err := divisionService.Create(org.ID, pay.ID, division.CreateParams{
			Name:        "Engineering",
			Description: "Product engineering",
			BudgetCode:  "ENG-01",
		})
		if err != nil {
			log.Fatalf("failed to seed division: %v", err)
		}

		platform, err := divisionService.Create(org.ID, pay.ID, division.CreateParams{
			Name:             "Platform",
			Description:      "Infrastructure and developer tooling",
			BudgetCode:       "ENG-02",
			ParentDivisionID: &engineering.ID,
		})
		if err != nil {
			log.Fatalf("failed to seed child division: %v", err)
		}
		fmt.Println("Seeded divisions:", engineering.Name, "<-", platform.Name)

		engineerJob, err := jobService.Create(org.ID, pay.ID, job.CreateParams{
			JobTitle: "Software Engineer",
			Salary:   5200,
		})
		if err != nil {
			log.Fatalf("failed to seed job: %v", err)
		}

		acmeBank, err := bankService.Create(org.ID, bank.CreateParams{Name: "First National"})
		if err != nil {
			log.Fatalf("failed to seed bank: %v", err)
		}

		for _, e := range []struct {
			firstName  string
			lastName   string
			divisionID uuid.UUID
		}{
			{"Ana", "Silva", engineering.ID},
			{"Budi", "Santoso", platform.ID},
		} {
			created, err := employeeService.Create(org.ID, pay.ID, e.divisionID, employee.CreateParams{
				IDNumber:       fmt.Sprintf("EMP-%s", uuid.NewString()[:8]),
				LastName:       e.lastName,
				FirstName:      e.firstName,
				Address:        "1 Main Street",
				Phone:          "+62-811-000-000",
				PlaceOfBirth:   "Jakarta",
				DateOfBirth:    internal.NewDate(1990, 6, 15),
				Nationality:    "Indonesian",
				MaritalStatus:  "single",
				Gender:         "female",
				HireDate:       internal.NewDate(2024, 1, 2),
				Classification: "full-time",
				JobID:          engineerJob.ID,
				BankID:         acmeBank.ID,
				BankAccount:    "001-2345-6789",
				Status:         "active",
				Hours:          40,
			})
			if err != nil {
				log.Fatalf("failed to seed employee %s: %v", e.lastName, err)
			}
			fmt.Println("Seeded employee:", created.FirstName, created.LastName)
		}

		fmt.Println("Seeding complete")
	},
}
