package job_test

import (
	"fmt"
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal"
	jobDatamodel "github.com/frahmantamala/payroll-management/internal/core/datamodel/job"
	"github.com/frahmantamala/payroll-management/internal/job"
)

type mockJobRepository struct {
	records map[string]*jobDatamodel.Job
}

func newMockJobRepository() *mockJobRepository {
	return &mockJobRepository{records: make(map[string]*jobDatamodel.Job)}
}

func (m *mockJobRepository) Insert(record *jobDatamodel.Job) error {
	m.records[record.ID] = record
	return nil
}

func (m *mockJobRepository) Fetch(id string) (*jobDatamodel.Job, error) {
	return m.records[id], nil
}

func (m *mockJobRepository) FetchByPayroll(payrollID string) ([]*jobDatamodel.Job, error) {
	matches := make([]*jobDatamodel.Job, 0)
	for _, record := range m.records {
		if record.PayrollID == payrollID {
			matches = append(matches, record)
		}
	}
	return matches, nil
}

func (m *mockJobRepository) Update(id string, fields job.UpdateFields) (*jobDatamodel.Job, error) {
	record, exists := m.records[id]
	if !exists {
		return nil, nil
	}
	if fields.JobTitle != nil {
		record.JobTitle = *fields.JobTitle
	}
	if fields.Salary != nil {
		record.Salary = *fields.Salary
	}
	return record, nil
}

func (m *mockJobRepository) Delete(id string) (bool, error) {
	if _, exists := m.records[id]; !exists {
		return false, nil
	}
	delete(m.records, id)
	return true, nil
}

type mockPayrolls struct {
	pairs map[string]bool
}

func (m *mockPayrolls) allow(organizationID, payrollID uuid.UUID) {
	m.pairs[organizationID.String()+"/"+payrollID.String()] = true
}

func (m *mockPayrolls) EnsureBelongsToOrganization(organizationID, payrollID uuid.UUID) error {
	if m.pairs[organizationID.String()+"/"+payrollID.String()] {
		return nil
	}
	return internal.NewNotFoundError(
		fmt.Sprintf("payroll %s not found for organization %s", payrollID, organizationID),
		internal.ErrCodePayrollNotFound,
	)
}

var _ = Describe("JobService", func() {
	var (
		service   *job.Service
		mockRepo  *mockJobRepository
		payrolls  *mockPayrolls
		orgID     uuid.UUID
		payrollID uuid.UUID
		logger    *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = newMockJobRepository()
		orgID = uuid.New()
		payrollID = uuid.New()
		payrolls = &mockPayrolls{pairs: make(map[string]bool)}
		payrolls.allow(orgID, payrollID)
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = job.NewService(mockRepo, payrolls, logger)
	})

	Describe("Create", func() {
		It("should create a job with a positive salary", func() {
			j, err := service.Create(orgID, payrollID, job.CreateParams{JobTitle: " Engineer ", Salary: 5200})

			Expect(err).ToNot(HaveOccurred())
			Expect(j.JobTitle).To(Equal("Engineer"))
			Expect(j.PayrollID).To(Equal(payrollID))
		})

		It("should reject zero salary", func() {
			_, err := service.Create(orgID, payrollID, job.CreateParams{JobTitle: "Engineer", Salary: 0})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidSalary))
		})

		It("should reject negative salary", func() {
			_, err := service.Create(orgID, payrollID, job.CreateParams{JobTitle: "Engineer", Salary: -1})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidSalary))
		})

		It("should run the payroll ownership check before field validation", func() {
			_, err := service.Create(uuid.New(), payrollID, job.CreateParams{JobTitle: " ", Salary: 0})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodePayrollNotFound))
		})
	})

	Describe("Get", func() {
		It("should hide a job addressed through the wrong payroll", func() {
			j, err := service.Create(orgID, payrollID, job.CreateParams{JobTitle: "Engineer", Salary: 5200})
			Expect(err).ToNot(HaveOccurred())

			otherPayroll := uuid.New()
			payrolls.allow(orgID, otherPayroll)
			fetched, err := service.Get(orgID, otherPayroll, j.ID)

			Expect(err).ToNot(HaveOccurred())
			Expect(fetched).To(BeNil())
		})
	})

	Describe("List", func() {
		It("should sort jobs by title", func() {
			for _, title := range []string{"Technician", "Analyst", "Engineer"} {
				_, err := service.Create(orgID, payrollID, job.CreateParams{JobTitle: title, Salary: 4000})
				Expect(err).ToNot(HaveOccurred())
			}

			jobs, err := service.List(orgID, payrollID)

			Expect(err).ToNot(HaveOccurred())
			titles := make([]string, 0, len(jobs))
			for _, j := range jobs {
				titles = append(titles, j.JobTitle)
			}
			Expect(titles).To(Equal([]string{"Analyst", "Engineer", "Technician"}))
		})
	})

	Describe("Update", func() {
		It("should reject an update with no fields", func() {
			_, err := service.Update(orgID, payrollID, uuid.New(), job.UpdateParams{})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeNoFields))
		})

		It("should re-validate a changed salary", func() {
			j, err := service.Create(orgID, payrollID, job.CreateParams{JobTitle: "Engineer", Salary: 5200})
			Expect(err).ToNot(HaveOccurred())

			invalid := -0.5
			_, err = service.Update(orgID, payrollID, j.ID, job.UpdateParams{Salary: &invalid})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidSalary))
		})

		It("should apply partial updates", func() {
			j, err := service.Create(orgID, payrollID, job.CreateParams{JobTitle: "Engineer", Salary: 5200})
			Expect(err).ToNot(HaveOccurred())

			salary := 6100.0
			updated, err := service.Update(orgID, payrollID, j.ID, job.UpdateParams{Salary: &salary})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.JobTitle).To(Equal("Engineer"))
			Expect(updated.Salary).To(Equal(6100.0))
		})
	})

	Describe("Delete", func() {
		It("should not delete through the wrong payroll", func() {
			j, err := service.Create(orgID, payrollID, job.CreateParams{JobTitle: "Engineer", Salary: 5200})
			Expect(err).ToNot(HaveOccurred())

			otherPayroll := uuid.New()
			payrolls.allow(orgID, otherPayroll)
			removed, err := service.Delete(orgID, otherPayroll, j.ID)

			Expect(err).ToNot(HaveOccurred())
			Expect(removed).To(BeFalse())
		})
	})
})
