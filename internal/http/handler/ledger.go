package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"txledger/internal/core"
	"txledger/internal/http/handler/middleware"
	"txledger/internal/http/payload"
	"txledger/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	CheckWallet         = "POST /wallet/check"
	ConnectWallet       = "POST /wallet/connect"
	GetAccount          = "GET /wallet/account"
	GetForm             = "GET /form"
	UpdateForm          = "PUT /form"
	ResetForm           = "DELETE /form"
	SubmitTransaction   = "POST /transactions"
	GetTransactions     = "GET /transactions"
	RefreshTransactions = "POST /transactions/refresh"
	GetTransactionCount = "GET /transactions/count"
	GetSubmissions      = "GET /submissions"
)

const (
	authHeader = "AUTH_TOKEN"
	// token lifetime in hours
	tokenTTL = 24
)

type LedgerHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	session          WalletSession
	form             FormEditor
	transactions     TransactionService
	history          SubmissionHistory
	tokens           TokenIssuer
}

func NewLedgerHandler(
	logger *zap.SugaredLogger,
	requestValidator RequestValidator,
	session WalletSession,
	form FormEditor,
	transactions TransactionService,
	history SubmissionHistory,
	tokens TokenIssuer,
) *LedgerHandler {
	return &LedgerHandler{
		logs:             logger,
		requestValidator: requestValidator,
		session:          session,
		form:             form,
		transactions:     transactions,
		history:          history,
		tokens:           tokens,
	}
}

// Register binds every route to mux.
func (h *LedgerHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(CheckWallet, h.HandleCheckWallet)
	mux.HandleFunc(ConnectWallet, h.HandleConnectWallet)
	mux.HandleFunc(GetAccount, h.HandleGetAccount)
	mux.HandleFunc(GetForm, h.HandleGetForm)
	mux.HandleFunc(UpdateForm, h.HandleUpdateForm)
	mux.HandleFunc(ResetForm, h.HandleResetForm)
	mux.HandleFunc(SubmitTransaction, h.HandleSubmitTransaction)
	mux.HandleFunc(GetTransactions, h.HandleGetTransactions)
	mux.HandleFunc(RefreshTransactions, h.HandleRefreshTransactions)
	mux.HandleFunc(GetTransactionCount, h.HandleGetTransactionCount)
	mux.HandleFunc(GetSubmissions, h.HandleGetSubmissions)
}

func (h *LedgerHandler) HandleCheckWallet(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if err := h.session.CheckConnection(r.Context()); err != nil {
		h.respond(w, Response{
			Message: "Could not check wallet connection",
			Error:   err.Error(),
		}, statusFor(err), requestId)
		h.logs.Errorw("wallet connection check failed",
			"error", err,
			"handler", CheckWallet,
			"request_id", requestId)
		return
	}

	h.respond(w, accountResponse(h.session.Account()), http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleConnectWallet(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	account, err := h.session.RequestConnection(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not connect wallet",
			Error:   err.Error(),
		}, statusFor(err), requestId)
		h.logs.Errorw("wallet connection failed",
			"error", err,
			"handler", ConnectWallet,
			"request_id", requestId)
		return
	}

	token := h.tokens.Generate(jwt.TokenInfo{
		Account:    account.Hex(),
		Subject:    account.Hex(),
		Expiration: tokenTTL,
	})

	signed, err := h.tokens.Sign(token)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not connect wallet",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to sign token",
			"error", err,
			"handler", ConnectWallet,
			"request_id", requestId)
		return
	}

	h.logs.Infow("wallet connected",
		"account", account.Hex(),
		"handler", ConnectWallet,
		"request_id", requestId)

	resp := map[string]string{
		"account": account.Hex(),
		"token":   signed,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	h.respond(w, accountResponse(h.session.Account()), http.StatusOK, requestID(r))
}

func (h *LedgerHandler) HandleGetForm(w http.ResponseWriter, r *http.Request) {
	h.respond(w, h.form.Data(), http.StatusOK, requestID(r))
}

func (h *LedgerHandler) HandleUpdateForm(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var field payload.FieldRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &field); err != nil {
		h.respond(w, Response{
			Message: "Could not update form",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateForm,
			"request_id", requestId)
		return
	}

	if err := h.form.UpdateField(field.Field, field.Value); err != nil {
		h.respond(w, Response{
			Message: "Could not update form",
			Error:   err.Error(),
		}, statusFor(err), requestId)
		h.logs.Errorw("failed to update form field",
			"error", err,
			"field", field.Field,
			"handler", UpdateForm,
			"request_id", requestId)
		return
	}

	h.respond(w, h.form.Data(), http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleResetForm(w http.ResponseWriter, r *http.Request) {
	h.form.Reset()
	h.respond(w, h.form.Data(), http.StatusOK, requestID(r))
}

func (h *LedgerHandler) HandleSubmitTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if _, ok := h.authorize(w, r, SubmitTransaction); !ok {
		return
	}

	receipt, err := h.transactions.Submit(r.Context())
	if err != nil {
		resp := Response{
			Message: "Transaction failed",
			Error:   err.Error(),
		}
		if receipt.AppendHash != "" {
			resp.Data = receipt
		}
		h.respond(w, resp, statusFor(err), requestId)
		h.logs.Errorw("submit failed",
			"error", err,
			"handler", SubmitTransaction,
			"request_id", requestId)
		return
	}

	h.logs.Infow("transaction submitted",
		"transfer_hash", receipt.TransferHash,
		"append_hash", receipt.AppendHash,
		"handler", SubmitTransaction,
		"request_id", requestId)

	h.respond(w, receipt, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"transactions": h.transactions.Entries(),
		"loading":      h.transactions.Loading(),
	}
	h.respond(w, resp, http.StatusOK, requestID(r))
}

func (h *LedgerHandler) HandleRefreshTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	entries, err := h.transactions.FetchAllEntries(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   err.Error(),
		}, statusFor(err), requestId)
		h.logs.Errorw("failed to refresh transactions",
			"error", err,
			"handler", RefreshTransactions,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.LedgerEntry{
		"transactions": entries,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleGetTransactionCount(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	counts, err := h.session.TransactionCounts(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not read transaction count",
			Error:   err.Error(),
		}, statusFor(err), requestId)
		h.logs.Errorw("failed to read transaction count",
			"error", err,
			"handler", GetTransactionCount,
			"request_id", requestId)
		return
	}

	h.respond(w, counts, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleGetSubmissions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	account, ok := h.authorize(w, r, GetSubmissions)
	if !ok {
		return
	}

	records, err := h.history.Reconcile(r.Context(), account)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve submissions",
			Error:   err.Error(),
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to get submissions",
			"error", err,
			"handler", GetSubmissions,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.SubmissionRecord{
		"submissions": records,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

// authorize resolves the account of the AUTH_TOKEN header and writes a 401
// when the token is missing or invalid.
func (h *LedgerHandler) authorize(w http.ResponseWriter, r *http.Request, route string) (common.Address, bool) {
	requestId := requestID(r)

	authToken := r.Header.Get(authHeader)
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized, requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", route, "request_id", requestId)
		return common.Address{}, false
	}

	claims, err := h.tokens.Validate(authToken)
	if err == nil {
		var sub string
		sub, err = jwt.Subject(claims)
		if err == nil && !common.IsHexAddress(sub) {
			err = fmt.Errorf("subject %q is not an account: %w", sub, jwt.ErrTokenNotValid)
		}
		if err == nil {
			return common.HexToAddress(sub), true
		}
	}

	h.respond(w, Response{
		Message: "Authentication failed",
		Error:   err.Error(),
	}, http.StatusUnauthorized, requestId)
	h.logs.Errorw("invalid AUTH_TOKEN header",
		"error", err,
		"handler", route,
		"request_id", requestId)
	return common.Address{}, false
}

func (h *LedgerHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	requestId, _ := r.Context().Value(middleware.RequestIDKey).(string)
	return requestId
}

func accountResponse(account common.Address, connected bool) map[string]any {
	resp := map[string]any{
		"connected": connected,
	}
	if connected {
		resp["account"] = account.Hex()
	}
	return resp
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidForm), errors.Is(err, core.ErrUnknownField):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrNotConnected):
		return http.StatusConflict
	case errors.Is(err, core.ErrWalletUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, core.ErrUserRejected):
		return http.StatusForbidden
	case errors.Is(err, core.ErrCallReverted):
		return http.StatusUnprocessableEntity
	case errors.Is(err, core.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, core.ErrCanceled):
		return http.StatusRequestTimeout
	case errors.Is(err, core.ErrNetworkFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
