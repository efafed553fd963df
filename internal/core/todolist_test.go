package core_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"todolist/internal/core"
	"todolist/internal/core/fake"
	"todolist/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Todolist", func() {
	var (
		fakeRepo     *fake.Repository
		fakeSessions *fake.SessionStore
		fakeHasher   *fake.PasswordHasher
		fakeLogger   *zap.SugaredLogger
		ctx          context.Context

		todo *core.Todolist

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeSessions = new(fake.SessionStore)
		fakeHasher = new(fake.PasswordHasher)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		todo = core.NewTodolist(fakeLogger, fakeRepo, fakeSessions, fakeHasher)

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			msg    core.CredentialsMessage
			userID uint
			err    error
		)

		BeforeEach(func() {
			msg = core.CredentialsMessage{
				Username: "testuser",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			userID, err = todo.Register(ctx, msg)
		})

		When("the username is free", func() {
			BeforeEach(func() {
				fakeHasher.HashReturns("digest", nil)
				fakeRepo.CreateAccountReturns(7, nil)
			})

			It("should create the account with a hashed password", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(userID).To(Equal(uint(7)))

				Expect(fakeHasher.HashCallCount()).To(Equal(1))
				Expect(fakeHasher.HashArgsForCall(0)).To(Equal("testpass"))

				Expect(fakeRepo.CreateAccountCallCount()).To(Equal(1))
				_, argUsername, argHash := fakeRepo.CreateAccountArgsForCall(0)
				Expect(argUsername).To(Equal("testuser"))
				Expect(argHash).To(Equal("digest"))
			})
		})

		When("the username is empty", func() {
			BeforeEach(func() {
				msg.Username = ""
			})

			It("should return invalid input error without touching the store", func() {
				Expect(err).To(MatchError(core.ErrInvalidInput))
				Expect(fakeHasher.HashCallCount()).To(Equal(0))
				Expect(fakeRepo.CreateAccountCallCount()).To(Equal(0))
			})
		})

		When("the password is empty", func() {
			BeforeEach(func() {
				msg.Password = ""
			})

			It("should return invalid input error", func() {
				Expect(err).To(MatchError(core.ErrInvalidInput))
				Expect(fakeRepo.CreateAccountCallCount()).To(Equal(0))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeHasher.HashReturns("digest", nil)
				fakeRepo.CreateAccountReturns(0, repository.ErrDuplicateUsername)
			})

			It("should return duplicate username error", func() {
				Expect(err).To(MatchError(core.ErrDuplicateUsername))
			})
		})

		When("hashing fails", func() {
			BeforeEach(func() {
				fakeHasher.HashReturns("", fakeErr)
			})

			It("should return the hashing error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.CreateAccountCallCount()).To(Equal(0))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeHasher.HashReturns("digest", nil)
				fakeRepo.CreateAccountReturns(0, fakeErr)
			})

			It("should return the store error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("VerifyCredentials", func() {
		var (
			msg     core.CredentialsMessage
			account core.AccountRecord
			err     error
		)

		BeforeEach(func() {
			msg = core.CredentialsMessage{
				Username: "testuser",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			account, err = todo.VerifyCredentials(ctx, msg)
		})

		When("credentials are valid", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByUsernameReturns(repository.Account{
					ID:       3,
					Username: "testuser",
					PassHash: "digest",
				}, nil)
				fakeHasher.VerifyReturns(true)
			})

			It("should return the account without opening a session", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(account).To(Equal(core.AccountRecord{ID: 3, Username: "testuser"}))

				Expect(fakeHasher.VerifyCallCount()).To(Equal(1))
				argPassword, argDigest := fakeHasher.VerifyArgsForCall(0)
				Expect(argPassword).To(Equal("testpass"))
				Expect(argDigest).To(Equal("digest"))

				Expect(fakeSessions.CreateCallCount()).To(Equal(0))
			})
		})

		When("credentials are incomplete", func() {
			BeforeEach(func() {
				msg.Username = ""
			})

			It("should return invalid input error without a lookup", func() {
				Expect(err).To(MatchError(core.ErrInvalidInput))
				Expect(fakeRepo.GetAccountByUsernameCallCount()).To(Equal(0))
			})
		})

		When("the account does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByUsernameReturns(repository.Account{}, repository.ErrAccountNotFound)
			})

			It("should return invalid credentials error", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
			})
		})

		When("the password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByUsernameReturns(repository.Account{
					ID:       3,
					Username: "testuser",
					PassHash: "digest",
				}, nil)
				fakeHasher.VerifyReturns(false)
			})

			It("should return invalid credentials error", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByUsernameReturns(repository.Account{}, fakeErr)
			})

			It("should return the store error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Login", func() {
		var (
			msg    core.CredentialsMessage
			result core.LoginResult
			err    error
		)

		BeforeEach(func() {
			msg = core.CredentialsMessage{
				Username: "testuser",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			result, err = todo.Login(ctx, msg)
		})

		When("credentials are valid", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByUsernameReturns(repository.Account{
					ID:       3,
					Username: "testuser",
					PassHash: "digest",
				}, nil)
				fakeHasher.VerifyReturns(true)
				fakeSessions.CreateReturns("sessiontoken", nil)
			})

			It("should open a session for the account", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Token).To(Equal("sessiontoken"))
				Expect(result.UserID).To(Equal(uint(3)))
				Expect(result.Username).To(Equal("testuser"))

				Expect(fakeHasher.VerifyCallCount()).To(Equal(1))
				argPassword, argDigest := fakeHasher.VerifyArgsForCall(0)
				Expect(argPassword).To(Equal("testpass"))
				Expect(argDigest).To(Equal("digest"))

				Expect(fakeSessions.CreateCallCount()).To(Equal(1))
				Expect(fakeSessions.CreateArgsForCall(0)).To(Equal(uint(3)))
			})
		})

		When("credentials are incomplete", func() {
			BeforeEach(func() {
				msg.Password = ""
			})

			It("should return invalid input error", func() {
				Expect(err).To(MatchError(core.ErrInvalidInput))
				Expect(fakeRepo.GetAccountByUsernameCallCount()).To(Equal(0))
			})
		})

		When("the account does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByUsernameReturns(repository.Account{}, repository.ErrAccountNotFound)
			})

			It("should return invalid credentials error", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
				Expect(fakeSessions.CreateCallCount()).To(Equal(0))
			})
		})

		When("the password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByUsernameReturns(repository.Account{
					ID:       3,
					Username: "testuser",
					PassHash: "digest",
				}, nil)
				fakeHasher.VerifyReturns(false)
			})

			It("should return invalid credentials error", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
				Expect(fakeSessions.CreateCallCount()).To(Equal(0))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByUsernameReturns(repository.Account{}, fakeErr)
			})

			It("should return the store error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("opening the session fails", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByUsernameReturns(repository.Account{
					ID:       3,
					Username: "testuser",
					PassHash: "digest",
				}, nil)
				fakeHasher.VerifyReturns(true)
				fakeSessions.CreateReturns("", fakeErr)
			})

			It("should return the session error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Authenticate", func() {
		var (
			token  string
			userID uint
			err    error
		)

		BeforeEach(func() {
			token = "sessiontoken"
		})

		JustBeforeEach(func() {
			userID, err = todo.Authenticate(token)
		})

		When("the token maps to a session", func() {
			BeforeEach(func() {
				fakeSessions.ResolveReturns(42, true)
			})

			It("should return the session owner", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(userID).To(Equal(uint(42)))
				Expect(fakeSessions.ResolveCallCount()).To(Equal(1))
				Expect(fakeSessions.ResolveArgsForCall(0)).To(Equal("sessiontoken"))
			})
		})

		When("the token is empty", func() {
			BeforeEach(func() {
				token = ""
			})

			It("should return unauthorized without a lookup", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
				Expect(fakeSessions.ResolveCallCount()).To(Equal(0))
			})
		})

		When("the token is unknown", func() {
			BeforeEach(func() {
				fakeSessions.ResolveReturns(0, false)
			})

			It("should return unauthorized", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
			})
		})
	})

	Describe("Logout", func() {
		It("should destroy the session", func() {
			todo.Logout("sessiontoken")

			Expect(fakeSessions.DestroyCallCount()).To(Equal(1))
			Expect(fakeSessions.DestroyArgsForCall(0)).To(Equal("sessiontoken"))
		})
	})

	Describe("AccountInfo", func() {
		var (
			account core.AccountRecord
			err     error
		)

		JustBeforeEach(func() {
			account, err = todo.AccountInfo(ctx, 3)
		})

		When("the account exists", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByIDReturns(repository.Account{
					ID:       3,
					Username: "testuser",
					PassHash: "digest",
				}, nil)
			})

			It("should return the account without the digest", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(account).To(Equal(core.AccountRecord{ID: 3, Username: "testuser"}))
			})
		})

		When("the account does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByIDReturns(repository.Account{}, repository.ErrAccountNotFound)
			})

			It("should return account not found error", func() {
				Expect(err).To(MatchError(core.ErrAccountNotFound))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByIDReturns(repository.Account{}, fakeErr)
			})

			It("should return the store error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreateItem", func() {
		var (
			text   string
			itemID uint
			err    error
		)

		BeforeEach(func() {
			text = "buy milk"
		})

		JustBeforeEach(func() {
			itemID, err = todo.CreateItem(ctx, 3, text)
		})

		When("the text is present", func() {
			BeforeEach(func() {
				fakeRepo.CreateItemReturns(11, nil)
			})

			It("should create the item for the owner", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(itemID).To(Equal(uint(11)))

				Expect(fakeRepo.CreateItemCallCount()).To(Equal(1))
				_, argOwner, argText := fakeRepo.CreateItemArgsForCall(0)
				Expect(argOwner).To(Equal(uint(3)))
				Expect(argText).To(Equal("buy milk"))
			})
		})

		When("the text is empty", func() {
			BeforeEach(func() {
				text = ""
			})

			It("should return invalid text error without touching the store", func() {
				Expect(err).To(MatchError(core.ErrInvalidText))
				Expect(fakeRepo.CreateItemCallCount()).To(Equal(0))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateItemReturns(0, fakeErr)
			})

			It("should return the store error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("creating items concurrently", func() {
		const writers = 16

		var (
			storeMu sync.Mutex
			stored  []repository.Item
			nextID  uint32
		)

		BeforeEach(func() {
			storeMu = sync.Mutex{}
			stored = nil
			nextID = 0

			fakeRepo.CreateItemCalls(func(_ context.Context, userID uint, text string) (uint, error) {
				itemID := uint(atomic.AddUint32(&nextID, 1))
				storeMu.Lock()
				stored = append(stored, repository.Item{ID: itemID, Text: text, UserID: userID})
				storeMu.Unlock()
				return itemID, nil
			})
		})

		It("should hand out a distinct id to every caller", func() {
			var wg sync.WaitGroup
			ids := make([]uint, writers)

			for i := 0; i < writers; i++ {
				wg.Add(1)
				go func(i int) {
					defer GinkgoRecover()
					defer wg.Done()

					itemID, err := todo.CreateItem(ctx, 3, fmt.Sprintf("note %d", i))
					Expect(err).NotTo(HaveOccurred())
					ids[i] = itemID
				}(i)
			}
			wg.Wait()

			seen := make(map[uint]bool, writers)
			for _, itemID := range ids {
				Expect(seen[itemID]).To(BeFalse())
				seen[itemID] = true
			}

			fakeRepo.GetItemsByOwnerReturns(stored, nil)
			records, err := todo.ListItems(ctx, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(writers))

			listed := make(map[uint]bool, writers)
			for _, record := range records {
				listed[record.ID] = true
			}
			for _, itemID := range ids {
				Expect(listed[itemID]).To(BeTrue())
			}
		})
	})

	Describe("ListItems", func() {
		var (
			records []core.ItemRecord
			err     error
		)

		JustBeforeEach(func() {
			records, err = todo.ListItems(ctx, 3)
		})

		When("the owner has items", func() {
			BeforeEach(func() {
				fakeRepo.GetItemsByOwnerReturns([]repository.Item{
					{ID: 1, Text: "buy milk", UserID: 3},
					{ID: 2, Text: "walk the dog", UserID: 3},
				}, nil)
			})

			It("should return the items in store order", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(Equal([]core.ItemRecord{
					{ID: 1, Text: "buy milk"},
					{ID: 2, Text: "walk the dog"},
				}))

				Expect(fakeRepo.GetItemsByOwnerCallCount()).To(Equal(1))
				_, argOwner := fakeRepo.GetItemsByOwnerArgsForCall(0)
				Expect(argOwner).To(Equal(uint(3)))
			})
		})

		When("the owner has no items", func() {
			BeforeEach(func() {
				fakeRepo.GetItemsByOwnerReturns([]repository.Item{}, nil)
			})

			It("should return an empty list", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(BeEmpty())
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.GetItemsByOwnerReturns(nil, fakeErr)
			})

			It("should return the store error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("UpdateItem", func() {
		var (
			text string
			err  error
		)

		BeforeEach(func() {
			text = "buy oat milk"
		})

		JustBeforeEach(func() {
			err = todo.UpdateItem(ctx, 3, 11, text)
		})

		When("the item belongs to the owner", func() {
			BeforeEach(func() {
				fakeRepo.UpdateItemTextReturns(true, nil)
			})

			It("should update the item text", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.UpdateItemTextCallCount()).To(Equal(1))
				_, argOwner, argItem, argText := fakeRepo.UpdateItemTextArgsForCall(0)
				Expect(argOwner).To(Equal(uint(3)))
				Expect(argItem).To(Equal(uint(11)))
				Expect(argText).To(Equal("buy oat milk"))
			})
		})

		When("the text is empty", func() {
			BeforeEach(func() {
				text = ""
			})

			It("should return invalid text error", func() {
				Expect(err).To(MatchError(core.ErrInvalidText))
				Expect(fakeRepo.UpdateItemTextCallCount()).To(Equal(0))
			})
		})

		When("the item is missing or owned by someone else", func() {
			BeforeEach(func() {
				fakeRepo.UpdateItemTextReturns(false, nil)
			})

			It("should return item not found error", func() {
				Expect(err).To(MatchError(core.ErrItemNotFound))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.UpdateItemTextReturns(false, fakeErr)
			})

			It("should return the store error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeleteItem", func() {
		var err error

		JustBeforeEach(func() {
			err = todo.DeleteItem(ctx, 3, 11)
		})

		When("the item belongs to the owner", func() {
			BeforeEach(func() {
				fakeRepo.DeleteItemReturns(true, nil)
			})

			It("should delete the item", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.DeleteItemCallCount()).To(Equal(1))
				_, argOwner, argItem := fakeRepo.DeleteItemArgsForCall(0)
				Expect(argOwner).To(Equal(uint(3)))
				Expect(argItem).To(Equal(uint(11)))
			})
		})

		When("the item is missing or owned by someone else", func() {
			BeforeEach(func() {
				fakeRepo.DeleteItemReturns(false, nil)
			})

			It("should return item not found error", func() {
				Expect(err).To(MatchError(core.ErrItemNotFound))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.DeleteItemReturns(false, fakeErr)
			})

			It("should return the store error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
