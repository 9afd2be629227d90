package store_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/auth"
	userdm "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
	"github.com/frahmantamala/hr-management/internal/user/store"
)

func TestUserStore(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Store Suite")
}

// fixedScores implements store.ScoreProvider with a static map.
type fixedScores map[string]float64

func (f fixedScores) GetPerformanceScore(username string) float64 {
	if score, ok := f[username]; ok {
		return score
	}
	return -1.0
}

var _ = Describe("User Store", func() {
	var (
		storage  internal.StorageConfig
		security internal.SecurityConfig
		logger   *slog.Logger
		s        *store.UserStore
	)

	newEmployee := func(username, password, fullName, department string) userdm.User {
		return userdm.User{
			Username:     username,
			PasswordHash: auth.HashPassword(password),
			FullName:     fullName,
			Department:   department,
			Role:         userdm.RoleEmployee,
		}
	}

	BeforeEach(func() {
		dir := GinkgoT().TempDir()
		cfg := internal.DefaultConfig()
		storage = cfg.Storage
		storage.DataDir = dir
		storage.ReportDir = dir
		security = cfg.Security
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		s = store.New(storage, security, logger)
	})

	Describe("Load", func() {
		It("should create the default administrator when the admin file is missing", func() {
			admin, found := s.FindByUsername("admin")
			Expect(found).To(BeTrue())
			Expect(admin.Role).To(Equal(userdm.RoleAdmin))
			Expect(admin.FullName).To(Equal("Системный администратор"))
			Expect(admin.PasswordHash).To(Equal(auth.HashPassword("admin123")))
		})

		It("should persist the default administrator immediately", func() {
			data, err := os.ReadFile(storage.AdminPath())
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring("admin|"))
			Expect(string(data)).To(ContainSubstring("|ADMIN|ADMIN"))
		})

		It("should skip malformed lines in the users file", func() {
			content := "good|123|Хороший Сотрудник|Разработка|EMPLOYEE\nbroken|only-two-fields\n"
			Expect(os.WriteFile(storage.UsersPath(), []byte(content), 0o644)).To(Succeed())

			reloaded := store.New(storage, security, logger)
			Expect(reloaded.GetAllEmployees()).To(HaveLen(1))
			_, found := reloaded.FindByUsername("good")
			Expect(found).To(BeTrue())
		})

		It("should discard users-file records claiming HR or ADMIN roles", func() {
			content := "sneaky|123|Фальшивый Админ|IT|ADMIN\nnormal|456|Обычный Сотрудник|QA|EMPLOYEE\n"
			Expect(os.WriteFile(storage.UsersPath(), []byte(content), 0o644)).To(Succeed())

			reloaded := store.New(storage, security, logger)
			employees := reloaded.GetAllEmployees()
			Expect(employees).To(HaveLen(1))
			Expect(employees[0].Username).To(Equal("normal"))
		})

		It("should load HR records written in the four-field form", func() {
			content := "hrlead|789|Ведущий HR|HR\n"
			Expect(os.WriteFile(storage.HRUsersPath(), []byte(content), 0o644)).To(Succeed())

			reloaded := store.New(storage, security, logger)
			hr, found := reloaded.FindByUsername("hrlead")
			Expect(found).To(BeTrue())
			Expect(hr.Role).To(Equal(userdm.RoleHR))
		})
	})

	Describe("AddUser", func() {
		It("should add an employee and find it by username", func() {
			Expect(s.AddUser(newEmployee("ivanov", "secret99", "Иванов Иван", "Разработка"))).To(BeTrue())

			found, ok := s.FindByUsername("ivanov")
			Expect(ok).To(BeTrue())
			Expect(found.FullName).To(Equal("Иванов Иван"))
			Expect(s.IsPasswordAlreadyUsed(auth.HashPassword("secret99"))).To(BeTrue())
		})

		It("should reject a duplicate username and leave state unchanged", func() {
			Expect(s.AddUser(newEmployee("ivanov", "secret99", "Иванов Иван", "Разработка"))).To(BeTrue())
			Expect(s.AddUser(newEmployee("ivanov", "another1", "Самозванец", "QA"))).To(BeFalse())

			found, _ := s.FindByUsername("ivanov")
			Expect(found.FullName).To(Equal("Иванов Иван"))
			Expect(s.GetAllEmployees()).To(HaveLen(1))
		})

		It("should route HR records into the HR partition", func() {
			hr := newEmployee("hrnew", "hrpass66", "Новый HR", "HR")
			hr.Role = userdm.RoleHR
			Expect(s.AddUser(hr)).To(BeTrue())

			Expect(s.IsHRUser("hrnew")).To(BeTrue())
			Expect(s.GetAllEmployees()).To(BeEmpty())
		})

		It("should keep PENDING records in the employee partition", func() {
			pending := newEmployee("candidate", "waiting1", "Кандидат В HR", "HR")
			pending.Role = userdm.RolePending
			Expect(s.AddUser(pending)).To(BeTrue())

			Expect(s.IsHRUser("candidate")).To(BeFalse())
			Expect(s.GetPendingUsers()).To(HaveLen(1))
		})

		It("should survive a reload", func() {
			Expect(s.AddUser(newEmployee("ivanov", "secret99", "Иванов Иван", "Разработка"))).To(BeTrue())

			reloaded := store.New(storage, security, logger)
			found, ok := reloaded.FindByUsername("ivanov")
			Expect(ok).To(BeTrue())
			Expect(found.Department).To(Equal("Разработка"))
		})
	})

	Describe("MoveUserToHR", func() {
		BeforeEach(func() {
			pending := newEmployee("candidate", "waiting1", "Кандидат В HR", "HR")
			pending.Role = userdm.RolePending
			Expect(s.AddUser(pending)).To(BeTrue())
		})

		It("should promote a pending user into the HR partition", func() {
			Expect(s.MoveUserToHR("candidate")).To(BeTrue())

			Expect(s.IsHRUser("candidate")).To(BeTrue())
			Expect(s.GetPendingUsers()).To(BeEmpty())

			promoted, _ := s.FindByUsername("candidate")
			Expect(promoted.Role).To(Equal(userdm.RoleHR))
			Expect(promoted.PasswordHash).To(Equal(auth.HashPassword("waiting1")))
		})

		It("should fail on a second promotion of the same user", func() {
			Expect(s.MoveUserToHR("candidate")).To(BeTrue())
			Expect(s.MoveUserToHR("candidate")).To(BeFalse())
		})

		It("should fail for a non-pending employee", func() {
			Expect(s.AddUser(newEmployee("regular", "normal12", "Обычный Сотрудник", "QA"))).To(BeTrue())
			Expect(s.MoveUserToHR("regular")).To(BeFalse())
		})
	})

	Describe("RemoveUserByUsername", func() {
		It("should remove only employee-partition records", func() {
			Expect(s.AddUser(newEmployee("ivanov", "secret99", "Иванов Иван", "Разработка"))).To(BeTrue())
			hr := newEmployee("hrlead", "hrpass66", "Ведущий HR", "HR")
			hr.Role = userdm.RoleHR
			Expect(s.AddUser(hr)).To(BeTrue())

			Expect(s.RemoveUserByUsername("ivanov")).To(BeTrue())
			Expect(s.RemoveUserByUsername("hrlead")).To(BeFalse())
			Expect(s.RemoveHRUserByUsername("hrlead")).To(BeTrue())
		})

		It("should not touch the admin record", func() {
			Expect(s.RemoveUserByUsername("admin")).To(BeFalse())
			Expect(s.IsAdminUser("admin")).To(BeTrue())
		})
	})

	Describe("UpdateEmployee", func() {
		It("should change full name and department in place", func() {
			Expect(s.AddUser(newEmployee("ivanov", "secret99", "Иванов Иван", "Разработка"))).To(BeTrue())
			Expect(s.UpdateEmployee("ivanov", "Иванов Иван Иванович", "QA")).To(BeTrue())

			updated, _ := s.FindByUsername("ivanov")
			Expect(updated.FullName).To(Equal("Иванов Иван Иванович"))
			Expect(updated.Department).To(Equal("QA"))
		})

		It("should fail for an unknown username", func() {
			Expect(s.UpdateEmployee("ghost", "Призрак", "QA")).To(BeFalse())
		})
	})

	Describe("SearchByName", func() {
		BeforeEach(func() {
			Expect(s.AddUser(newEmployee("ivanov", "secret99", "Иванов Иван", "Разработка"))).To(BeTrue())
			Expect(s.AddUser(newEmployee("petrova", "qapass77", "Петрова Анна", "QA"))).To(BeTrue())
		})

		It("should match full name case-insensitively", func() {
			Expect(s.SearchByName("иванов")).To(HaveLen(1))
		})

		It("should match username as well", func() {
			Expect(s.SearchByName("PETR")).To(HaveLen(1))
		})

		It("should return nothing for a miss", func() {
			Expect(s.SearchByName("сидоров")).To(BeEmpty())
		})
	})

	Describe("SortedByRating", func() {
		BeforeEach(func() {
			Expect(s.AddUser(newEmployee("low", "lowpass1", "Быков Борис", "QA"))).To(BeTrue())
			Expect(s.AddUser(newEmployee("high", "highpas1", "Яшина Юлия", "Разработка"))).To(BeTrue())
			Expect(s.AddUser(newEmployee("none", "nonepas1", "Андреев Антон", "Дизайн"))).To(BeTrue())
		})

		It("should order rated employees by score descending, unrated last", func() {
			rated := s.SortedByRating(fixedScores{"low": 60, "high": 95})
			Expect(rated).To(HaveLen(3))
			Expect(rated[0].User.Username).To(Equal("high"))
			Expect(rated[1].User.Username).To(Equal("low"))
			Expect(rated[2].User.Username).To(Equal("none"))
			Expect(rated[2].Score).To(BeNumerically("<", 0))
		})

		It("should break score ties by full name", func() {
			rated := s.SortedByRating(fixedScores{"low": 80, "high": 80})
			Expect(rated[0].User.FullName).To(Equal("Быков Борис"))
			Expect(rated[1].User.FullName).To(Equal("Яшина Юлия"))
		})

		It("should report rank as a 1-based position", func() {
			rank, total := s.Rank("low", fixedScores{"low": 60, "high": 95})
			Expect(rank).To(Equal(2))
			Expect(total).To(Equal(3))
		})

		It("should report -1 for an unknown username", func() {
			rank, _ := s.Rank("ghost", fixedScores{})
			Expect(rank).To(Equal(-1))
		})
	})

	Describe("persistence format", func() {
		It("should write employees as five pipe-delimited fields", func() {
			Expect(s.AddUser(newEmployee("ivanov", "secret99", "Иванов Иван", "Разработка"))).To(BeTrue())

			data, err := os.ReadFile(filepath.Join(storage.DataDir, "users.txt"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring("ivanov|" + auth.HashPassword("secret99") + "|Иванов Иван|Разработка|EMPLOYEE"))
		})
	})
})
