package session_test

import (
	"sync"
	"todolist/internal/session"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Manager", func() {
	var manager *session.Manager

	BeforeEach(func() {
		manager = session.NewManager()
	})

	Describe("Create", func() {
		It("should issue a 32 character hex token", func() {
			token, err := manager.Create(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(token).To(HaveLen(32))
			Expect(token).To(MatchRegexp(`^[0-9a-f]{32}$`))
		})

		It("should issue a distinct token per call", func() {
			first, err := manager.Create(1)
			Expect(err).NotTo(HaveOccurred())
			second, err := manager.Create(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(first).NotTo(Equal(second))
		})

		It("should allow multiple live sessions for the same user", func() {
			first, err := manager.Create(1)
			Expect(err).NotTo(HaveOccurred())
			second, err := manager.Create(1)
			Expect(err).NotTo(HaveOccurred())

			userID, ok := manager.Resolve(first)
			Expect(ok).To(BeTrue())
			Expect(userID).To(Equal(uint(1)))

			userID, ok = manager.Resolve(second)
			Expect(ok).To(BeTrue())
			Expect(userID).To(Equal(uint(1)))
		})
	})

	Describe("Resolve", func() {
		When("the token exists", func() {
			var token string

			BeforeEach(func() {
				var err error
				token, err = manager.Create(42)
				Expect(err).NotTo(HaveOccurred())
			})

			It("should return the bound user id", func() {
				userID, ok := manager.Resolve(token)
				Expect(ok).To(BeTrue())
				Expect(userID).To(Equal(uint(42)))
			})

			It("should not consume the token", func() {
				_, ok := manager.Resolve(token)
				Expect(ok).To(BeTrue())
				_, ok = manager.Resolve(token)
				Expect(ok).To(BeTrue())
			})
		})

		When("the token is unknown", func() {
			It("should report a miss", func() {
				userID, ok := manager.Resolve("deadbeefdeadbeefdeadbeefdeadbeef")
				Expect(ok).To(BeFalse())
				Expect(userID).To(Equal(uint(0)))
			})
		})
	})

	Describe("Destroy", func() {
		It("should invalidate the token", func() {
			token, err := manager.Create(42)
			Expect(err).NotTo(HaveOccurred())

			manager.Destroy(token)

			_, ok := manager.Resolve(token)
			Expect(ok).To(BeFalse())
		})

		It("should leave other sessions of the same user alive", func() {
			first, err := manager.Create(42)
			Expect(err).NotTo(HaveOccurred())
			second, err := manager.Create(42)
			Expect(err).NotTo(HaveOccurred())

			manager.Destroy(first)

			_, ok := manager.Resolve(second)
			Expect(ok).To(BeTrue())
		})

		It("should tolerate an unknown token", func() {
			Expect(func() {
				manager.Destroy("deadbeefdeadbeefdeadbeefdeadbeef")
			}).NotTo(Panic())
		})
	})

	Describe("concurrent use", func() {
		It("should keep every session resolvable", func() {
			const workers = 16

			tokens := make([]string, workers)
			var wg sync.WaitGroup
			wg.Add(workers)
			for i := 0; i < workers; i++ {
				go func(i int) {
					defer GinkgoRecover()
					defer wg.Done()
					token, err := manager.Create(uint(i + 1))
					Expect(err).NotTo(HaveOccurred())
					tokens[i] = token
				}(i)
			}
			wg.Wait()

			for i, token := range tokens {
				userID, ok := manager.Resolve(token)
				Expect(ok).To(BeTrue())
				Expect(userID).To(Equal(uint(i + 1)))
			}
		})
	})
})
