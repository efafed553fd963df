package payload_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"todolist/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeValidator", func() {
	var dv payload.DecodeValidator

	Describe("DecodeAndValidateJSONPayload", func() {
		When("the credentials payload is well formed", func() {
			It("should decode into the request struct", func() {
				req := httptest.NewRequest("POST", "/login",
					strings.NewReader(`{"username":"testuser","password":"testpass"}`))

				var creds payload.CredentialsRequest
				err := dv.DecodeAndValidateJSONPayload(req, &creds)
				Expect(err).NotTo(HaveOccurred())
				Expect(creds.Username).To(Equal("testuser"))
				Expect(creds.Password).To(Equal("testpass"))
			})
		})

		When("a required field is missing", func() {
			It("should return a validation error", func() {
				req := httptest.NewRequest("POST", "/login",
					strings.NewReader(`{"username":"testuser"}`))

				var creds payload.CredentialsRequest
				err := dv.DecodeAndValidateJSONPayload(req, &creds)
				Expect(err).To(MatchError(ContainSubstring("validating payload")))
			})
		})

		When("a field has the wrong type", func() {
			It("should return an unmarshal type error", func() {
				req := httptest.NewRequest("POST", "/login",
					strings.NewReader(`{"username":123,"password":"testpass"}`))

				var creds payload.CredentialsRequest
				err := dv.DecodeAndValidateJSONPayload(req, &creds)

				var typeErr *json.UnmarshalTypeError
				Expect(errors.As(err, &typeErr)).To(BeTrue())
			})
		})

		When("the body is not valid json", func() {
			It("should return a decoding error", func() {
				req := httptest.NewRequest("POST", "/login",
					strings.NewReader(`not json`))

				var creds payload.CredentialsRequest
				err := dv.DecodeAndValidateJSONPayload(req, &creds)
				Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
			})
		})

		When("the payload carries unknown fields", func() {
			It("should return a decoding error", func() {
				req := httptest.NewRequest("POST", "/api/items",
					strings.NewReader(`{"text":"buy milk","owner":"bob"}`))

				var item payload.ItemRequest
				err := dv.DecodeAndValidateJSONPayload(req, &item)
				Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
			})
		})

		When("the item text is empty", func() {
			It("should return a validation error", func() {
				req := httptest.NewRequest("POST", "/api/items",
					strings.NewReader(`{"text":""}`))

				var item payload.ItemRequest
				err := dv.DecodeAndValidateJSONPayload(req, &item)
				Expect(err).To(MatchError(ContainSubstring("validating payload")))
			})
		})
	})
})
