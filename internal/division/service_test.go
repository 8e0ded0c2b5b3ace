package division_test

import (
	"fmt"
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal"
	divisionDatamodel "github.com/frahmantamala/payroll-management/internal/core/datamodel/division"
	"github.com/frahmantamala/payroll-management/internal/division"
)

type mockDivisionRepository struct {
	records    map[string]*divisionDatamodel.Division
	fetchError error
}

func newMockDivisionRepository() *mockDivisionRepository {
	return &mockDivisionRepository{records: make(map[string]*divisionDatamodel.Division)}
}

func (m *mockDivisionRepository) Insert(record *divisionDatamodel.Division) error {
	m.records[record.ID] = record
	return nil
}

func (m *mockDivisionRepository) Fetch(id string) (*divisionDatamodel.Division, error) {
	if m.fetchError != nil {
		return nil, m.fetchError
	}
	return m.records[id], nil
}

func (m *mockDivisionRepository) FetchByPayroll(payrollID string) ([]*divisionDatamodel.Division, error) {
	matches := make([]*divisionDatamodel.Division, 0)
	for _, record := range m.records {
		if record.PayrollID == payrollID {
			matches = append(matches, record)
		}
	}
	return matches, nil
}

func (m *mockDivisionRepository) Update(id string, fields division.UpdateFields) (*divisionDatamodel.Division, error) {
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
	if fields.BudgetCode != nil {
		record.BudgetCode = *fields.BudgetCode
	}
	if fields.ParentDivisionID.Present {
		if fields.ParentDivisionID.Null {
			record.ParentDivisionID = nil
		} else {
			parent := fields.ParentDivisionID.Value.String()
			record.ParentDivisionID = &parent
		}
	}
	return record, nil
}

func (m *mockDivisionRepository) Delete(id string) (bool, error) {
	if _, exists := m.records[id]; !exists {
		return false, nil
	}
	delete(m.records, id)
	return true, nil
}

// mockPayrolls accepts only the (organization, payroll) pairs it knows.
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

var _ = Describe("DivisionService", func() {
	var (
		service   *division.Service
		mockRepo  *mockDivisionRepository
		payrolls  *mockPayrolls
		orgID     uuid.UUID
		payrollID uuid.UUID
		logger    *slog.Logger
	)

	newDivision := func(name string) *division.Division {
		d, err := service.Create(orgID, payrollID, division.CreateParams{
			Name:        name,
			Description: name + " division",
			BudgetCode:  "BC-" + name,
		})
		Expect(err).ToNot(HaveOccurred())
		return d
	}

	BeforeEach(func() {
		mockRepo = newMockDivisionRepository()
		orgID = uuid.New()
		payrollID = uuid.New()
		payrolls = &mockPayrolls{pairs: make(map[string]bool)}
		payrolls.allow(orgID, payrollID)
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = division.NewService(mockRepo, payrolls, logger)
	})

	Describe("Create", func() {
		It("should create a root division", func() {
			d := newDivision("Engineering")

			Expect(d.PayrollID).To(Equal(payrollID))
			Expect(d.ParentDivisionID).To(BeNil())
		})

		It("should attach a child to an existing parent in the same payroll", func() {
			parent := newDivision("Engineering")

			child, err := service.Create(orgID, payrollID, division.CreateParams{
				Name:             "Platform",
				Description:      "d",
				BudgetCode:       "BC-2",
				ParentDivisionID: &parent.ID,
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(*child.ParentDivisionID).To(Equal(parent.ID))
		})

		It("should fail with not found for a missing parent", func() {
			missing := uuid.New()
			_, err := service.Create(orgID, payrollID, division.CreateParams{
				Name:             "Platform",
				Description:      "d",
				BudgetCode:       "BC-2",
				ParentDivisionID: &missing,
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeNotFound))
			Expect(appErr.Code).To(Equal(internal.ErrCodeDivisionNotFound))
		})

		It("should fail validation for a parent from another payroll", func() {
			otherPayroll := uuid.New()
			payrolls.allow(orgID, otherPayroll)
			foreignParent, err := service.Create(orgID, otherPayroll, division.CreateParams{
				Name: "Sales", Description: "d", BudgetCode: "BC-3",
			})
			Expect(err).ToNot(HaveOccurred())

			_, err = service.Create(orgID, payrollID, division.CreateParams{
				Name:             "Platform",
				Description:      "d",
				BudgetCode:       "BC-2",
				ParentDivisionID: &foreignParent.ID,
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
			Expect(appErr.Code).To(Equal(internal.ErrCodeParentMismatch))
		})

		It("should fail when the payroll does not belong to the organization", func() {
			_, err := service.Create(uuid.New(), payrollID, division.CreateParams{
				Name: "Engineering", Description: "d", BudgetCode: "BC-1",
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodePayrollNotFound))
		})
	})

	Describe("Get", func() {
		It("should hide a division addressed through the wrong payroll", func() {
			d := newDivision("Engineering")

			otherPayroll := uuid.New()
			payrolls.allow(orgID, otherPayroll)
			fetched, err := service.Get(orgID, otherPayroll, d.ID)

			Expect(err).ToNot(HaveOccurred())
			Expect(fetched).To(BeNil())
		})
	})

	Describe("List", func() {
		It("should sort divisions by name", func() {
			newDivision("Support")
			newDivision("Engineering")
			newDivision("Marketing")

			divisions, err := service.List(orgID, payrollID)

			Expect(err).ToNot(HaveOccurred())
			names := make([]string, 0, len(divisions))
			for _, d := range divisions {
				names = append(names, d.Name)
			}
			Expect(names).To(Equal([]string{"Engineering", "Marketing", "Support"}))
		})
	})

	Describe("Update", func() {
		It("should reject an update with no fields", func() {
			_, err := service.Update(orgID, payrollID, uuid.New(), division.UpdateParams{})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeNoFields))
		})

		It("should keep the parent when the field is absent", func() {
			parent := newDivision("Engineering")
			child, err := service.Create(orgID, payrollID, division.CreateParams{
				Name: "Platform", Description: "d", BudgetCode: "BC-2", ParentDivisionID: &parent.ID,
			})
			Expect(err).ToNot(HaveOccurred())

			name := "Platform Core"
			updated, err := service.Update(orgID, payrollID, child.ID, division.UpdateParams{Name: &name})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Name).To(Equal("Platform Core"))
			Expect(*updated.ParentDivisionID).To(Equal(parent.ID))
		})

		It("should detach the parent on an explicit null", func() {
			parent := newDivision("Engineering")
			child, err := service.Create(orgID, payrollID, division.CreateParams{
				Name: "Platform", Description: "d", BudgetCode: "BC-2", ParentDivisionID: &parent.ID,
			})
			Expect(err).ToNot(HaveOccurred())

			updated, err := service.Update(orgID, payrollID, child.ID, division.UpdateParams{
				ParentDivisionID: internal.PatchNull[uuid.UUID](),
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.ParentDivisionID).To(BeNil())
		})

		It("should reattach the division to a new parent", func() {
			first := newDivision("Engineering")
			second := newDivision("Operations")
			child, err := service.Create(orgID, payrollID, division.CreateParams{
				Name: "Platform", Description: "d", BudgetCode: "BC-2", ParentDivisionID: &first.ID,
			})
			Expect(err).ToNot(HaveOccurred())

			updated, err := service.Update(orgID, payrollID, child.ID, division.UpdateParams{
				ParentDivisionID: internal.PatchValue(second.ID),
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(*updated.ParentDivisionID).To(Equal(second.ID))
		})

		It("should refuse a division as its own parent", func() {
			d := newDivision("Engineering")

			_, err := service.Update(orgID, payrollID, d.ID, division.UpdateParams{
				ParentDivisionID: internal.PatchValue(d.ID),
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeSelfParent))
		})
	})

	Describe("Delete", func() {
		It("should delete through the owning scope only", func() {
			d := newDivision("Engineering")

			removed, err := service.Delete(orgID, payrollID, d.ID)

			Expect(err).ToNot(HaveOccurred())
			Expect(removed).To(BeTrue())
		})

		It("should report false for an already removed division", func() {
			d := newDivision("Engineering")
			_, err := service.Delete(orgID, payrollID, d.ID)
			Expect(err).ToNot(HaveOccurred())

			removed, err := service.Delete(orgID, payrollID, d.ID)

			Expect(err).ToNot(HaveOccurred())
			Expect(removed).To(BeFalse())
		})
	})
})
