package user_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/auth"
	projectdm "github.com/frahmantamala/hr-management/internal/core/datamodel/project"
	userdm "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
	"github.com/frahmantamala/hr-management/internal/user"
)

func TestUserService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Service Suite")
}

// MockStore implements user.StoreAPI over two role partitions.
type MockStore struct {
	users map[string]userdm.User
}

func NewMockStore() *MockStore {
	return &MockStore{users: make(map[string]userdm.User)}
}

func (m *MockStore) FindByUsername(username string) (userdm.User, bool) {
	u, ok := m.users[username]
	return u, ok
}

func (m *MockStore) AddUser(u userdm.User) bool {
	if _, exists := m.users[u.Username]; exists {
		return false
	}
	m.users[u.Username] = u
	return true
}

func (m *MockStore) RemoveUserByUsername(username string) bool {
	u, ok := m.users[username]
	if !ok || u.Role == userdm.RoleHR || u.Role == userdm.RoleAdmin {
		return false
	}
	delete(m.users, username)
	return true
}

func (m *MockStore) RemoveHRUserByUsername(username string) bool {
	u, ok := m.users[username]
	if !ok || u.Role != userdm.RoleHR {
		return false
	}
	delete(m.users, username)
	return true
}

func (m *MockStore) MoveUserToHR(username string) bool {
	u, ok := m.users[username]
	if !ok || u.Role != userdm.RolePending {
		return false
	}
	u.Role = userdm.RoleHR
	m.users[username] = u
	return true
}

func (m *MockStore) UpdateEmployee(username, fullName, department string) bool {
	u, ok := m.users[username]
	if !ok {
		return false
	}
	u.FullName = fullName
	u.Department = department
	m.users[username] = u
	return true
}

func (m *MockStore) IsPasswordAlreadyUsed(passwordHash string) bool {
	for _, u := range m.users {
		if u.PasswordHash == passwordHash {
			return true
		}
	}
	return false
}

// MockAssignments records cascade deletions.
type MockAssignments struct {
	assignments []projectdm.Assignment
	removed     [][2]string
}

func (m *MockAssignments) AssignmentsForUser(username string) []projectdm.Assignment {
	var out []projectdm.Assignment
	for _, a := range m.assignments {
		if a.Username == username {
			out = append(out, a)
		}
	}
	return out
}

func (m *MockAssignments) RemoveEmployeeFromProject(username, projectName string) bool {
	m.removed = append(m.removed, [2]string{username, projectName})
	return true
}

var _ = Describe("User Service", func() {
	var (
		store       *MockStore
		assignments *MockAssignments
		service     *user.Service
	)

	registerDTO := func(username, password, fullName, department string) user.RegisterDTO {
		return user.RegisterDTO{
			Username:        username,
			Password:        password,
			PasswordConfirm: password,
			FullName:        fullName,
			Department:      department,
		}
	}

	BeforeEach(func() {
		store = NewMockStore()
		assignments = &MockAssignments{}
		security := internal.DefaultConfig().Security
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = user.NewService(store, assignments, security, logger)
	})

	Describe("Register", func() {
		It("should create an employee account with a digested password", func() {
			registered, err := service.Register(registerDTO("ivanov", "secret99", "Иванов Иван", "Разработка"))
			Expect(err).NotTo(HaveOccurred())
			Expect(registered.Role).To(Equal(userdm.RoleEmployee))

			stored, _ := store.FindByUsername("ivanov")
			Expect(stored.PasswordHash).To(Equal(auth.HashPassword("secret99")))
			Expect(stored.PasswordHash).NotTo(Equal("secret99"))
		})

		It("should mark HR-department registrations as pending", func() {
			registered, err := service.Register(registerDTO("candidate", "waiting1", "Кандидат В HR", "HR"))
			Expect(err).NotTo(HaveOccurred())
			Expect(registered.Role).To(Equal(userdm.RolePending))
			Expect(registered.IsPendingApproval()).To(BeTrue())
		})

		It("should reject reserved logins regardless of case", func() {
			for _, login := range []string{"admin", "Administrator", "ROOT"} {
				_, err := service.Register(registerDTO(login, "secret99", "Самозванец", "QA"))
				Expect(err).To(MatchError(internal.ErrUsernameReserved))
			}
		})

		It("should reject a taken username", func() {
			_, err := service.Register(registerDTO("ivanov", "secret99", "Иванов Иван", "Разработка"))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Register(registerDTO("ivanov", "another1", "Самозванец", "QA"))
			Expect(err).To(MatchError(internal.ErrUsernameTaken))
		})

		It("should reject a password already in use", func() {
			_, err := service.Register(registerDTO("ivanov", "secret99", "Иванов Иван", "Разработка"))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Register(registerDTO("petrova", "secret99", "Петрова Анна", "QA"))
			Expect(err).To(MatchError(internal.ErrPasswordInUse))
		})

		It("should reject a password below the minimum length", func() {
			_, err := service.Register(registerDTO("ivanov", "short", "Иванов Иван", "Разработка"))
			Expect(err).To(HaveOccurred())
		})

		It("should reject mismatched password confirmation", func() {
			dto := registerDTO("ivanov", "secret99", "Иванов Иван", "Разработка")
			dto.PasswordConfirm = "secret98"
			_, err := service.Register(dto)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Authenticate", func() {
		BeforeEach(func() {
			_, err := service.Register(registerDTO("ivanov", "secret99", "Иванов Иван", "Разработка"))
			Expect(err).NotTo(HaveOccurred())
		})

		It("should return the domain user for valid credentials", func() {
			authenticated, err := service.Authenticate("ivanov", "secret99")
			Expect(err).NotTo(HaveOccurred())
			Expect(authenticated.FullName).To(Equal("Иванов Иван"))
		})

		It("should fail for a wrong password", func() {
			_, err := service.Authenticate("ivanov", "wrong999")
			Expect(err).To(MatchError(internal.ErrInvalidCredentials))
		})

		It("should fail for an unknown user", func() {
			_, err := service.Authenticate("ghost", "secret99")
			Expect(err).To(MatchError(internal.ErrUserNotFound))
		})
	})

	Describe("RemoveUser", func() {
		BeforeEach(func() {
			_, err := service.Register(registerDTO("ivanov", "secret99", "Иванов Иван", "Разработка"))
			Expect(err).NotTo(HaveOccurred())
			assignments.assignments = []projectdm.Assignment{
				{Username: "ivanov", ProjectName: "Портал", Role: "Участник"},
				{Username: "ivanov", ProjectName: "CRM", Role: "Разработчик"},
				{Username: "petrova", ProjectName: "Портал", Role: "Тестировщик"},
			}
		})

		It("should cascade the user's assignments", func() {
			Expect(service.RemoveUser("ivanov")).To(Succeed())
			Expect(assignments.removed).To(ConsistOf(
				[2]string{"ivanov", "Портал"},
				[2]string{"ivanov", "CRM"},
			))
		})

		It("should fail for an unknown user without touching assignments", func() {
			err := service.RemoveUser("ghost")
			Expect(err).To(MatchError(internal.ErrUserNotFound))
			Expect(assignments.removed).To(BeEmpty())
		})
	})

	Describe("PromoteToHR", func() {
		It("should promote a pending user", func() {
			_, err := service.Register(registerDTO("candidate", "waiting1", "Кандидат В HR", "HR"))
			Expect(err).NotTo(HaveOccurred())

			Expect(service.PromoteToHR("candidate")).To(Succeed())
			promoted, _ := store.FindByUsername("candidate")
			Expect(promoted.Role).To(Equal(userdm.RoleHR))
		})

		It("should refuse a non-pending employee", func() {
			_, err := service.Register(registerDTO("ivanov", "secret99", "Иванов Иван", "Разработка"))
			Expect(err).NotTo(HaveOccurred())

			Expect(service.PromoteToHR("ivanov")).To(MatchError(internal.ErrUserNotPending))
		})

		It("should refuse an unknown user", func() {
			Expect(service.PromoteToHR("ghost")).To(MatchError(internal.ErrUserNotFound))
		})
	})

	Describe("UpdateEmployee", func() {
		It("should apply the update through the store", func() {
			_, err := service.Register(registerDTO("ivanov", "secret99", "Иванов Иван", "Разработка"))
			Expect(err).NotTo(HaveOccurred())

			err = service.UpdateEmployee(user.UpdateEmployeeDTO{
				Username:   "ivanov",
				FullName:   "Иванов Иван Иванович",
				Department: "QA",
			})
			Expect(err).NotTo(HaveOccurred())

			updated, _ := store.FindByUsername("ivanov")
			Expect(updated.Department).To(Equal("QA"))
		})
	})
})
