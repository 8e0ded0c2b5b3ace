package payroll_test

import (
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal"
	payrollDatamodel "github.com/frahmantamala/payroll-management/internal/core/datamodel/payroll"
	"github.com/frahmantamala/payroll-management/internal/organization"
	"github.com/frahmantamala/payroll-management/internal/payroll"
)

type mockPayrollRepository struct {
	records     map[string]*payrollDatamodel.Payroll
	fetchError  error
	insertError error
}

func newMockPayrollRepository() *mockPayrollRepository {
	return &mockPayrollRepository{records: make(map[string]*payrollDatamodel.Payroll)}
}

func (m *mockPayrollRepository) Insert(record *payrollDatamodel.Payroll) error {
	if m.insertError != nil {
		return m.insertError
	}
	m.records[record.ID] = record
	return nil
}

func (m *mockPayrollRepository) Fetch(id string) (*payrollDatamodel.Payroll, error) {
	if m.fetchError != nil {
		return nil, m.fetchError
	}
	return m.records[id], nil
}

func (m *mockPayrollRepository) FetchByOrganization(organizationID string) ([]*payrollDatamodel.Payroll, error) {
	if m.fetchError != nil {
		return nil, m.fetchError
	}
	matches := make([]*payrollDatamodel.Payroll, 0)
	for _, record := range m.records {
		if record.OrganizationID == organizationID {
			matches = append(matches, record)
		}
	}
	return matches, nil
}

func (m *mockPayrollRepository) Update(id string, fields payroll.UpdateFields) (*payrollDatamodel.Payroll, error) {
	record, exists := m.records[id]
	if !exists {
		return nil, nil
	}
	if fields.Name != nil {
		record.Name = *fields.Name
	}
	if fields.Description != nil {
		record.Description = *fields.Description
	}
	if fields.OrganizationID != nil {
		record.OrganizationID = *fields.OrganizationID
	}
	return record, nil
}

func (m *mockPayrollRepository) Delete(id string) (bool, error) {
	if _, exists := m.records[id]; !exists {
		return false, nil
	}
	delete(m.records, id)
	return true, nil
}

// mockOrganizations resolves only the ids it was told about.
type mockOrganizations struct {
	known map[uuid.UUID]bool
}

func (m *mockOrganizations) Get(id uuid.UUID) (*organization.Organization, error) {
	if !m.known[id] {
		return nil, nil
	}
	return &organization.Organization{ID: id, Name: "Acme"}, nil
}

var _ = Describe("PayrollService", func() {
	var (
		service  *payroll.Service
		mockRepo *mockPayrollRepository
		orgs     *mockOrganizations
		orgID    uuid.UUID
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = newMockPayrollRepository()
		orgID = uuid.New()
		orgs = &mockOrganizations{known: map[uuid.UUID]bool{orgID: true}}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = payroll.NewService(mockRepo, orgs, logger)
	})

	Describe("Create", func() {
		It("should attach the payroll to its organization", func() {
			p, err := service.Create(orgID, payroll.CreateParams{Name: "Monthly", Description: "Monthly run"})

			Expect(err).ToNot(HaveOccurred())
			Expect(p.OrganizationID).To(Equal(orgID))
		})

		It("should reject an unknown organization", func() {
			_, err := service.Create(uuid.New(), payroll.CreateParams{Name: "Monthly", Description: "Monthly run"})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeNotFound))
			Expect(appErr.Code).To(Equal(internal.ErrCodeOrganizationNotFound))
		})

		It("should validate the name before touching the organization", func() {
			_, err := service.Create(uuid.New(), payroll.CreateParams{Name: " ", Description: "d"})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeEmptyField))
		})
	})

	Describe("Get", func() {
		It("should hide a payroll addressed through the wrong organization", func() {
			p, err := service.Create(orgID, payroll.CreateParams{Name: "Monthly", Description: "d"})
			Expect(err).ToNot(HaveOccurred())

			otherOrg := uuid.New()
			fetched, err := service.Get(otherOrg, p.ID)

			Expect(err).ToNot(HaveOccurred())
			Expect(fetched).To(BeNil())
		})

		It("should return a payroll addressed through its owner", func() {
			p, err := service.Create(orgID, payroll.CreateParams{Name: "Monthly", Description: "d"})
			Expect(err).ToNot(HaveOccurred())

			fetched, err := service.Get(orgID, p.ID)

			Expect(err).ToNot(HaveOccurred())
			Expect(fetched.ID).To(Equal(p.ID))
		})
	})

	Describe("List", func() {
		It("should sort payrolls by name", func() {
			for _, name := range []string{"Weekly", "Annual", "Monthly"} {
				_, err := service.Create(orgID, payroll.CreateParams{Name: name, Description: "d"})
				Expect(err).ToNot(HaveOccurred())
			}

			payrolls, err := service.List(orgID)

			Expect(err).ToNot(HaveOccurred())
			names := make([]string, 0, len(payrolls))
			for _, p := range payrolls {
				names = append(names, p.Name)
			}
			Expect(names).To(Equal([]string{"Annual", "Monthly", "Weekly"}))
		})

		It("should reject listing under an unknown organization", func() {
			_, err := service.List(uuid.New())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeOrganizationNotFound))
		})
	})

	Describe("Update", func() {
		It("should reject an update with no fields", func() {
			_, err := service.Update(orgID, uuid.New(), payroll.UpdateParams{})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeNoFields))
		})

		It("should move a payroll to another existing organization", func() {
			p, err := service.Create(orgID, payroll.CreateParams{Name: "Monthly", Description: "d"})
			Expect(err).ToNot(HaveOccurred())

			destination := uuid.New()
			orgs.known[destination] = true

			updated, err := service.Update(orgID, p.ID, payroll.UpdateParams{OrganizationID: &destination})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.OrganizationID).To(Equal(destination))
		})

		It("should refuse to move a payroll to an unknown organization", func() {
			p, err := service.Create(orgID, payroll.CreateParams{Name: "Monthly", Description: "d"})
			Expect(err).ToNot(HaveOccurred())

			destination := uuid.New()
			_, err = service.Update(orgID, p.ID, payroll.UpdateParams{OrganizationID: &destination})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeOrganizationNotFound))
		})

		It("should return nil when the payroll is scoped to another organization", func() {
			p, err := service.Create(orgID, payroll.CreateParams{Name: "Monthly", Description: "d"})
			Expect(err).ToNot(HaveOccurred())

			name := "Renamed"
			otherOrg := uuid.New()
			orgs.known[otherOrg] = true
			updated, err := service.Update(otherOrg, p.ID, payroll.UpdateParams{Name: &name})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated).To(BeNil())
		})
	})

	Describe("Delete", func() {
		It("should not delete through the wrong organization", func() {
			p, err := service.Create(orgID, payroll.CreateParams{Name: "Monthly", Description: "d"})
			Expect(err).ToNot(HaveOccurred())

			removed, err := service.Delete(uuid.New(), p.ID)

			Expect(err).ToNot(HaveOccurred())
			Expect(removed).To(BeFalse())
			Expect(mockRepo.records).To(HaveKey(p.ID.String()))
		})

		It("should delete through the owner", func() {
			p, err := service.Create(orgID, payroll.CreateParams{Name: "Monthly", Description: "d"})
			Expect(err).ToNot(HaveOccurred())

			removed, err := service.Delete(orgID, p.ID)

			Expect(err).ToNot(HaveOccurred())
			Expect(removed).To(BeTrue())
		})
	})

	Describe("EnsureBelongsToOrganization", func() {
		It("should pass for a payroll under its organization", func() {
			p, err := service.Create(orgID, payroll.CreateParams{Name: "Monthly", Description: "d"})
			Expect(err).ToNot(HaveOccurred())

			Expect(service.EnsureBelongsToOrganization(orgID, p.ID)).To(Succeed())
		})

		It("should fail with not found for a foreign payroll", func() {
			p, err := service.Create(orgID, payroll.CreateParams{Name: "Monthly", Description: "d"})
			Expect(err).ToNot(HaveOccurred())

			err = service.EnsureBelongsToOrganization(uuid.New(), p.ID)

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodePayrollNotFound))
		})
	})
})
