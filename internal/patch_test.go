package internal_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal"
)

var _ = Describe("Patch", func() {
	type payload struct {
		Parent internal.Patch[uuid.UUID] `json:"parent"`
	}

	Context("when the field is absent from the body", func() {
		It("should stay not present", func() {
			var p payload
			Expect(json.Unmarshal([]byte(`{}`), &p)).To(Succeed())
			Expect(p.Parent.Present).To(BeFalse())
			Expect(p.Parent.IsNull()).To(BeFalse())
			Expect(p.Parent.Ptr()).To(BeNil())
		})
	})

	Context("when the field is an explicit null", func() {
		It("should be present and null", func() {
			var p payload
			Expect(json.Unmarshal([]byte(`{"parent": null}`), &p)).To(Succeed())
			Expect(p.Parent.Present).To(BeTrue())
			Expect(p.Parent.IsNull()).To(BeTrue())
			Expect(p.Parent.Ptr()).To(BeNil())
		})
	})

	Context("when the field carries a value", func() {
		It("should expose the value", func() {
			id := uuid.New()
			var p payload
			Expect(json.Unmarshal([]byte(`{"parent": "`+id.String()+`"}`), &p)).To(Succeed())
			Expect(p.Parent.IsValue()).To(BeTrue())
			Expect(*p.Parent.Ptr()).To(Equal(id))
		})
	})

	Context("when the value is malformed", func() {
		It("should return an unmarshal error", func() {
			var p payload
			Expect(json.Unmarshal([]byte(`{"parent": "not-a-uuid"}`), &p)).ToNot(Succeed())
		})
	})

	Describe("constructors", func() {
		It("PatchValue should carry the value", func() {
			p := internal.PatchValue(42)
			Expect(p.IsValue()).To(BeTrue())
			Expect(*p.Ptr()).To(Equal(42))
		})

		It("PatchNull should clear", func() {
			p := internal.PatchNull[int]()
			Expect(p.IsNull()).To(BeTrue())
			Expect(p.Ptr()).To(BeNil())
		})
	})
})

var _ = Describe("Date", func() {
	It("should parse and render the calendar form", func() {
		d, err := internal.ParseDate("2024-02-29")
		Expect(err).ToNot(HaveOccurred())
		Expect(d.String()).To(Equal("2024-02-29"))
	})

	It("should reject other layouts", func() {
		_, err := internal.ParseDate("29/02/2024")
		Expect(err).To(HaveOccurred())
	})

	It("should order dates", func() {
		earlier := internal.NewDate(2024, 1, 2)
		later := internal.NewDate(2024, 1, 3)
		Expect(earlier.Before(later)).To(BeTrue())
		Expect(later.Before(earlier)).To(BeFalse())
		Expect(earlier.Equal(earlier)).To(BeTrue())
	})

	It("should round-trip through JSON", func() {
		d := internal.NewDate(2026, 8, 30)
		raw, err := json.Marshal(d)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(raw)).To(Equal(`"2026-08-30"`))

		var parsed internal.Date
		Expect(json.Unmarshal(raw, &parsed)).To(Succeed())
		Expect(parsed.Equal(d)).To(BeTrue())
	})
})
