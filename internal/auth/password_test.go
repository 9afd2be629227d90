package auth_test

import (
	"strconv"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hr-management/internal/auth"
)

func TestAuth(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Suite")
}

var _ = Describe("Password hashing", func() {
	It("should be deterministic", func() {
		Expect(auth.HashPassword("admin123")).To(Equal(auth.HashPassword("admin123")))
	})

	It("should produce a decimal digest", func() {
		digest := auth.HashPassword("secret")
		_, err := strconv.ParseUint(digest, 10, 64)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should differ for different inputs", func() {
		Expect(auth.HashPassword("secret")).NotTo(Equal(auth.HashPassword("Secret")))
	})

	Describe("VerifyPassword", func() {
		It("should accept the original plaintext", func() {
			digest := auth.HashPassword("admin123")
			Expect(auth.VerifyPassword("admin123", digest)).To(BeTrue())
		})

		It("should reject a wrong password", func() {
			digest := auth.HashPassword("admin123")
			Expect(auth.VerifyPassword("admin124", digest)).To(BeFalse())
		})
	})
})
