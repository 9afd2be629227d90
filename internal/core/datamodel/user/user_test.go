package user_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hr-management/internal/core/datamodel/user"
)

func TestUserRecords(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Records Suite")
}

var _ = Describe("User records", func() {
	It("should reproduce a user through serialize and parse", func() {
		original := user.User{
			Username:     "ivanov",
			PasswordHash: "12345678901234567890",
			FullName:     "Иванов Иван Иванович",
			Department:   "Разработка",
			Role:         user.RoleEmployee,
		}

		parsed, ok := user.Parse(original.Serialize())
		Expect(ok).To(BeTrue())
		Expect(parsed).To(Equal(original))
	})

	It("should keep the pending tag through a round trip", func() {
		original := user.User{
			Username:     "smirnova",
			PasswordHash: "999",
			FullName:     "Смирнова Ольга",
			Department:   "HR",
			Role:         user.RolePending,
		}

		parsed, ok := user.Parse(original.Serialize())
		Expect(ok).To(BeTrue())
		Expect(parsed.Role).To(Equal(user.RolePending))
	})

	It("should map an unknown role string to employee", func() {
		parsed, ok := user.Parse("x|hash|Имя|Отдел|DIRECTOR")
		Expect(ok).To(BeTrue())
		Expect(parsed.Role).To(Equal(user.RoleEmployee))
	})

	It("should reject a line with too few fields", func() {
		_, ok := user.Parse("x|hash")
		Expect(ok).To(BeFalse())
	})

	It("should read an hr record without a role column", func() {
		parsed, ok := user.ParseHR("smirnova|999|Смирнова Ольга|HR")
		Expect(ok).To(BeTrue())
		Expect(parsed.Role).To(Equal(user.RoleHR))
	})

	It("should validate only the four known roles", func() {
		Expect(user.RoleAdmin.IsValid()).To(BeTrue())
		Expect(user.Role("DIRECTOR").IsValid()).To(BeFalse())
	})
})
