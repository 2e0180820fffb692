package jwt_test

import (
	"time"

	tokenIssuer "txledger/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		info = tokenIssuer.TokenInfo{
			Account:    "0x00000000000000000000000000000000000000aB",
			Subject:    "0x00000000000000000000000000000000000000aB",
			Expiration: 1,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	It("signs and validates a token", func() {
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		claims, err := service.Validate(signed)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["account"]).To(Equal(info.Account))

		sub, err := tokenIssuer.Subject(claims)
		Expect(err).NotTo(HaveOccurred())
		Expect(sub).To(Equal(info.Subject))
	})

	When("the token is signed with another secret", func() {
		It("rejects it", func() {
			other := tokenIssuer.NewJWTService([]byte("other-secret"))
			signed, err := other.Sign(other.Generate(info))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})

	When("the clock moved past the expiration", func() {
		It("reports the token as expired", func() {
			signed, err := service.Sign(service.Generate(info))
			Expect(err).NotTo(HaveOccurred())

			tokenIssuer.TimeNow = func() time.Time { return time.Now().Add(2 * time.Hour) }

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
		})
	})

	When("the subject claim is missing", func() {
		It("fails", func() {
			_, err := tokenIssuer.Subject(jwt.MapClaims{})
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})
})
