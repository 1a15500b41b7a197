package internal_test

import (
	"context"

	"github.com/frahmantamala/grievance-portal/internal"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("request principal", func() {
	It("round trips through the context", func() {
		ctx := internal.ContextWithUser(context.Background(), &internal.User{ID: 7, Email: "a@b.test", Role: internal.RoleAdmin})

		u, ok := internal.UserFromContext(ctx)
		Expect(ok).To(BeTrue())
		Expect(u.ID).To(Equal(int64(7)))
		Expect(u.IsAdmin()).To(BeTrue())
	})

	It("reports absence", func() {
		_, ok := internal.UserFromContext(context.Background())
		Expect(ok).To(BeFalse())

		var nilUser *internal.User
		Expect(nilUser.IsAdmin()).To(BeFalse())
	})
})
