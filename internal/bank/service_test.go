package bank_test

import (
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal"
	"github.com/frahmantamala/payroll-management/internal/bank"
	bankDatamodel "github.com/frahmantamala/payroll-management/internal/core/datamodel/bank"
	"github.com/frahmantamala/payroll-management/internal/organization"
)

type mockBankRepository struct {
	records map[string]*bankDatamodel.Bank
}

func newMockBankRepository() *mockBankRepository {
	return &mockBankRepository{records: make(map[string]*bankDatamodel.Bank)}
}

func (m *mockBankRepository) Insert(record *bankDatamodel.Bank) error {
	m.records[record.ID] = record
	return nil
}

func (m *mockBankRepository) Fetch(id string) (*bankDatamodel.Bank, error) {
	return m.records[id], nil
}

func (m *mockBankRepository) FetchByOrganization(organizationID string) ([]*bankDatamodel.Bank, error) {
	matches := make([]*bankDatamodel.Bank, 0)
	for _, record := range m.records {
		if record.OrganizationID == organizationID {
			matches = append(matches, record)
		}
	}
	return matches, nil
}

func (m *mockBankRepository) Update(id string, fields bank.UpdateFields) (*bankDatamodel.Bank, error) {
	record, exists := m.records[id]
	if !exists {
		return nil, nil
	}
	if fields.Name != nil {
		record.Name = *fields.Name
	}
	return record, nil
}

func (m *mockBankRepository) Delete(id string) (bool, error) {
	if _, exists := m.records[id]; !exists {
		return false, nil
	}
	delete(m.records, id)
	return true, nil
}

type mockOrganizations struct {
	known map[uuid.UUID]bool
}

func (m *mockOrganizations) Get(id uuid.UUID) (*organization.Organization, error) {
	if !m.known[id] {
		return nil, nil
	}
	return &organization.Organization{ID: id, Name: "Acme"}, nil
}

var _ = Describe("BankService", func() {
	var (
		service  *bank.Service
		mockRepo *mockBankRepository
		orgs     *mockOrganizations
		orgID    uuid.UUID
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = newMockBankRepository()
		orgID = uuid.New()
		orgs = &mockOrganizations{known: map[uuid.UUID]bool{orgID: true}}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = bank.NewService(mockRepo, orgs, logger)
	})

	Describe("Create", func() {
		It("should create a bank under an existing organization", func() {
			b, err := service.Create(orgID, bank.CreateParams{Name: " First National "})

			Expect(err).ToNot(HaveOccurred())
			Expect(b.Name).To(Equal("First National"))
			Expect(b.OrganizationID).To(Equal(orgID))
		})

		It("should reject an unknown organization", func() {
			_, err := service.Create(uuid.New(), bank.CreateParams{Name: "First National"})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeOrganizationNotFound))
		})

		It("should reject a blank name", func() {
			_, err := service.Create(orgID, bank.CreateParams{Name: "  "})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeEmptyField))
		})
	})

	Describe("Get", func() {
		It("should hide a bank addressed through the wrong organization", func() {
			b, err := service.Create(orgID, bank.CreateParams{Name: "First National"})
			Expect(err).ToNot(HaveOccurred())

			fetched, err := service.Get(uuid.New(), b.ID)

			Expect(err).ToNot(HaveOccurred())
			Expect(fetched).To(BeNil())
		})
	})

	Describe("List", func() {
		It("should sort banks by name", func() {
			for _, name := range []string{"Western Trust", "Atlantic", "Meridian"} {
				_, err := service.Create(orgID, bank.CreateParams{Name: name})
				Expect(err).ToNot(HaveOccurred())
			}

			banks, err := service.List(orgID)

			Expect(err).ToNot(HaveOccurred())
			names := make([]string, 0, len(banks))
			for _, b := range banks {
				names = append(names, b.Name)
			}
			Expect(names).To(Equal([]string{"Atlantic", "Meridian", "Western Trust"}))
		})
	})

	Describe("Update", func() {
		It("should reject an update with no fields", func() {
			_, err := service.Update(orgID, uuid.New(), bank.UpdateParams{})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeNoFields))
		})

		It("should return nil for a bank under another organization", func() {
			b, err := service.Create(orgID, bank.CreateParams{Name: "First National"})
			Expect(err).ToNot(HaveOccurred())

			name := "Renamed"
			updated, err := service.Update(uuid.New(), b.ID, bank.UpdateParams{Name: &name})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated).To(BeNil())
		})
	})

	Describe("Delete", func() {
		It("should delete through the owner only", func() {
			b, err := service.Create(orgID, bank.CreateParams{Name: "First National"})
			Expect(err).ToNot(HaveOccurred())

			removed, err := service.Delete(uuid.New(), b.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(removed).To(BeFalse())

			removed, err = service.Delete(orgID, b.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(removed).To(BeTrue())
		})
	})
})
