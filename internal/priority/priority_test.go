package priority_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/grievance-portal/internal/priority"
)

var _ = Describe("Classify", func() {
	Context("high urgency keywords", func() {
		DescribeTable("returns High regardless of category",
			func(description, category string) {
				Expect(priority.Classify(description, category)).To(Equal(priority.High))
			},
			Entry("urgent", "This is URGENT please help", "Other"),
			Entry("emergency", "emergency at the station", "Roads"),
			Entry("critical", "critical failure", "Education"),
			Entry("danger", "Live wire, danger to kids", "Transportation"),
			Entry("life", "risk to life", "Sanitation"),
			Entry("death", "a death occurred", ""),
			Entry("severe", "Severe flooding", "Water Supply"),
			Entry("immediate", "needs immediate attention", "Other"),
			Entry("keyword beats medium keyword", "broken and dangerous", "Other"),
			Entry("substring inside a longer word", "wildlife park fence", "Other"),
		)
	})

	Context("high categories", func() {
		DescribeTable("match the whole category case-insensitively",
			func(category string) {
				Expect(priority.Classify("all fine", category)).To(Equal(priority.High))
			},
			Entry("health", "health"),
			Entry("Health", "Health"),
			Entry("SAFETY", "SAFETY"),
			Entry("water", "water"),
			Entry("Electricity", "Electricity"),
		)

		It("does not treat Water Supply as water", func() {
			Expect(priority.Classify("no issues here", "Water Supply")).NotTo(Equal(priority.High))
		})

		It("does not match a category that only contains a high category", func() {
			Expect(priority.Classify("All fine", "Public Health")).To(Equal(priority.Low))
		})
	})

	Context("medium keywords", func() {
		It("returns Medium for a broken pipe", func() {
			Expect(priority.Classify("There is a broken pipe", "Other")).To(Equal(priority.Medium))
		})

		It("matches the multi-word phrase", func() {
			Expect(priority.Classify("Street light NOT WORKING", "Roads")).To(Equal(priority.Medium))
		})

		It("returns Medium for Water Supply when the description mentions an issue", func() {
			Expect(priority.Classify("no issues here", "Water Supply")).To(Equal(priority.Medium))
		})
	})

	Context("no keywords", func() {
		It("returns Low", func() {
			Expect(priority.Classify("All fine", "Other")).To(Equal(priority.Low))
		})

		It("returns Low for an empty description", func() {
			Expect(priority.Classify("", "Other")).To(Equal(priority.Low))
		})
	})

	It("is deterministic", func() {
		first := priority.Classify("damaged road", "Roads")
		for i := 0; i < 10; i++ {
			Expect(priority.Classify("damaged road", "Roads")).To(Equal(first))
		}
	})
})

var _ = Describe("Priority", func() {
	It("validates known tiers", func() {
		for _, p := range priority.All() {
			Expect(p.Valid()).To(BeTrue())
		}
		Expect(priority.Priority("Urgent").Valid()).To(BeFalse())
	})
})
