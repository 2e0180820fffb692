package handler

import (
	"context"
	"net/http"

	"txledger/internal/core"
	"txledger/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	gojwt "github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name WalletSession . WalletSession
type WalletSession interface {
	CheckConnection(ctx context.Context) error
	RequestConnection(ctx context.Context) (common.Address, error)
	Account() (common.Address, bool)
	TransactionCounts(ctx context.Context) (core.TransactionCounts, error)
}

//counterfeiter:generate -o fake -fake-name FormEditor . FormEditor
type FormEditor interface {
	Data() core.FormData
	UpdateField(field string, value string) error
	Reset()
}

//counterfeiter:generate -o fake -fake-name TransactionService . TransactionService
type TransactionService interface {
	Submit(ctx context.Context) (core.Receipt, error)
	FetchAllEntries(ctx context.Context) ([]core.LedgerEntry, error)
	Entries() []core.LedgerEntry
	Loading() bool
}

//counterfeiter:generate -o fake -fake-name SubmissionHistory . SubmissionHistory
type SubmissionHistory interface {
	Reconcile(ctx context.Context, account common.Address) ([]core.SubmissionRecord, error)
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Generate(data jwt.TokenInfo) *gojwt.Token
	Sign(token *gojwt.Token) (string, error)
	Validate(token string) (gojwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, jsonPayload any) error
}
