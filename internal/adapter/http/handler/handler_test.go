package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wallet-identity/internal/adapter/http/dto"
	"wallet-identity/internal/core/domain"
	"wallet-identity/internal/core/ports"
	"wallet-identity/internal/core/ports/mocks"
	"wallet-identity/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	localWallet = "0x3333333333333333333333333333333333333333"
	mtwAccount  = "0x4444444444444444444444444444444444444444"
	otherWallet = "0x5555555555555555555555555555555555555555"
	testDEKPub  = "0x03c574017726e2006eb8f78ec5d6b0790c727ce586f6653af588620b769f380d02"
	testDEKPriv = "0xf0254c13fa11f1be73731dc3c2094c0547beaa7a77dbb5de3364733e8910ecc5"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext(method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data: %s", w.Body.String())
	return data
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	code, _ := resp["error_code"].(string)
	return code
}

// --- Comment Handler Tests ---

func TestEncryptComment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	comments := mocks.NewMockCommentService(ctrl)
	h := NewCommentHandler(comments, mocks.NewMockDEKService(ctrl))

	comments.EXPECT().EncryptComment(gomock.Any(), ports.EncryptCommentRequest{
		Comment:              " <3 lunch ",
		ToAddress:            otherWallet,
		FromAddress:          localWallet,
		IncludePhoneMetadata: true,
	}).Return("ciphertext==", nil)

	c, w := newContext(http.MethodPost, "/api/v1/comments/encrypt", dto.EncryptCommentRequest{
		Comment:              " <3 lunch ",
		ToAddress:            otherWallet,
		FromAddress:          localWallet,
		IncludePhoneMetadata: true,
	})
	h.Encrypt(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ciphertext==", decodeData(t, w)["comment"])
}

func TestEncryptComment_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewCommentHandler(mocks.NewMockCommentService(ctrl), mocks.NewMockDEKService(ctrl))

	c, w := newContext(http.MethodPost, "/", dto.EncryptCommentRequest{Comment: "hi", ToAddress: "nope", FromAddress: localWallet})
	h.Encrypt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "CMT_001", errorCode(t, w))
}

func TestEncryptComment_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	comments := mocks.NewMockCommentService(ctrl)
	h := NewCommentHandler(comments, mocks.NewMockDEKService(ctrl))

	comments.EXPECT().EncryptComment(gomock.Any(), gomock.Any()).
		Return("", apperror.ErrChainUnavailable(errors.New("rpc down")))

	c, w := newContext(http.MethodPost, "/", dto.EncryptCommentRequest{Comment: "hi", ToAddress: otherWallet, FromAddress: localWallet})
	h.Encrypt(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "SYS_002", errorCode(t, w))
}

func TestDecryptComment_UsesAccountDEK(t *testing.T) {
	ctrl := gomock.NewController(t)
	comments := mocks.NewMockCommentService(ctrl)
	deks := mocks.NewMockDEKService(ctrl)
	h := NewCommentHandler(comments, deks)

	deks.EXPECT().GetDataEncryptionKey(gomock.Any()).Return(testDEKPriv, nil)
	comments.EXPECT().DecryptComment(gomock.Any(), "ciphertext==", testDEKPriv, true).
		Return(domain.DecryptedComment{Comment: "hello", E164Number: "+15551234567", Salt: "abcdefghij+/0"})

	c, w := newContext(http.MethodPost, "/", dto.DecryptCommentRequest{Comment: "ciphertext==", IsSender: true})
	h.Decrypt(c)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "hello", data["comment"])
	assert.Equal(t, "+15551234567", data["e164_number"])
}

func TestDecryptComment_MissingDEK(t *testing.T) {
	ctrl := gomock.NewController(t)
	deks := mocks.NewMockDEKService(ctrl)
	h := NewCommentHandler(mocks.NewMockCommentService(ctrl), deks)

	deks.EXPECT().GetDataEncryptionKey(gomock.Any()).Return("", apperror.ErrDEKMissing())

	c, w := newContext(http.MethodPost, "/", dto.DecryptCommentRequest{Comment: "ciphertext=="})
	h.Decrypt(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "DEK_001", errorCode(t, w))
}

// --- Identity Handler Tests ---

func TestCheckTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	identity := mocks.NewMockIdentityService(ctrl)
	h := NewIdentityHandler(identity)

	identity.EXPECT().CheckTransactionsForIdentityMetadata(gomock.Any(), []domain.FeedTransaction{{
		Typename: domain.FeedItemTokenTransfer,
		Type:     domain.TokenTransactionReceived,
		Hash:     "0x01",
		Address:  otherWallet,
		Comment:  "ciphertext==",
	}}).Return(1)

	c, w := newContext(http.MethodPost, "/", dto.CheckTransactionsRequest{Transactions: []dto.FeedTransaction{{
		Typename: "TokenTransfer", Type: "RECEIVED", Hash: "0x01", Address: otherWallet, Comment: "ciphertext==",
	}}})
	h.CheckTransactions(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decodeData(t, w)["verified_claims"])
}

func TestGetNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	identity := mocks.NewMockIdentityService(ctrl)
	h := NewIdentityHandler(identity)

	identity.EXPECT().GetNumberMapping(gomock.Any(), "+15551234567").Return(&domain.NumberMapping{
		E164Number: "+15551234567",
		Salt:       "abcdefghij+/0",
		Addresses:  []string{otherWallet},
	}, nil)
	identity.EXPECT().GetNumberMapping(gomock.Any(), "+15550000000").Return(nil, apperror.ErrNotFound("Phone number"))

	c, w := newContext(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "e164", Value: "+15551234567"}}
	h.GetNumber(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abcdefghij+/0", decodeData(t, w)["salt"])

	c, w = newContext(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "e164", Value: "+15550000000"}}
	h.GetNumber(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	identity := mocks.NewMockIdentityService(ctrl)
	h := NewIdentityHandler(identity)

	identity.EXPECT().SetSelfPhoneDetails(gomock.Any(), domain.PhoneNumberHashDetails{
		E164Number: "+15551234567",
		Pepper:     "abcdefghij+/0",
	}).Return(nil)

	c, w := newContext(http.MethodPut, "/", dto.SelfPhoneDetailsRequest{E164Number: "+15551234567", Pepper: "abcdefghij+/0"})
	h.SetSelf(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newContext(http.MethodPut, "/", dto.SelfPhoneDetailsRequest{E164Number: "5551234567", Pepper: "abcdefghij+/0"})
	h.SetSelf(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "IDN_001", errorCode(t, w))
}

// --- DEK Handler Tests ---

func TestGetDEK(t *testing.T) {
	ctrl := gomock.NewController(t)
	deks := mocks.NewMockDEKService(ctrl)
	h := NewDEKHandler(deks, localWallet)

	deks.EXPECT().FetchDataEncryptionKey(gomock.Any(), otherWallet).Return([]byte{0x03, 0xc5}, nil)
	deks.EXPECT().FetchDataEncryptionKey(gomock.Any(), mtwAccount).Return(nil, nil)

	c, w := newContext(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "address", Value: otherWallet}}
	h.Get(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0x03c5", decodeData(t, w)["data_encryption_key"])

	c, w = newContext(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "address", Value: mtwAccount}}
	h.Get(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decodeData(t, w)["data_encryption_key"])

	c, w = newContext(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "address", Value: "0x12"}}
	h.Get(c)
	assert.Equal(t, "IDN_002", errorCode(t, w))
}

func TestGetDEK_ChainError(t *testing.T) {
	ctrl := gomock.NewController(t)
	deks := mocks.NewMockDEKService(ctrl)
	h := NewDEKHandler(deks, localWallet)

	deks.EXPECT().FetchDataEncryptionKey(gomock.Any(), otherWallet).Return(nil, errors.New("rpc down"))

	c, w := newContext(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "address", Value: otherWallet}}
	h.Get(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCreateDEK(t *testing.T) {
	ctrl := gomock.NewController(t)
	deks := mocks.NewMockDEKService(ctrl)
	h := NewDEKHandler(deks, localWallet)

	deks.EXPECT().CreateAccountDEK(gomock.Any(), "abandon about").Return("", apperror.ErrInvalidMnemonic(errors.New("checksum")))

	c, w := newContext(http.MethodPost, "/", dto.CreateDEKRequest{Mnemonic: "abandon about"})
	h.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "DEK_002", errorCode(t, w))

	deks.EXPECT().CreateAccountDEK(gomock.Any(), gomock.Any()).Return(testDEKPub, nil)
	c, w = newContext(http.MethodPost, "/", dto.CreateDEKRequest{Mnemonic: "valid words"})
	h.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, testDEKPub, decodeData(t, w)["public_key"])
}

func TestRegisterDEK(t *testing.T) {
	tests := []struct {
		state domain.DEKRegistrationState
		code  int
	}{
		{domain.DEKStateRegistered, http.StatusOK},
		{domain.DEKStateUnregistered, http.StatusAccepted},
		{domain.DEKStateSubmitting, http.StatusAccepted},
	}
	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			deks := mocks.NewMockDEKService(ctrl)
			h := NewDEKHandler(deks, localWallet)
			deks.EXPECT().RegisterAccountDEK(gomock.Any()).Return(tt.state)

			c, w := newContext(http.MethodPost, "/", nil)
			h.Register(c)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, string(tt.state), decodeData(t, w)["state"])
		})
	}
}

func TestRegisterRelayed(t *testing.T) {
	ctrl := gomock.NewController(t)
	deks := mocks.NewMockDEKService(ctrl)
	h := NewDEKHandler(deks, localWallet)

	deks.EXPECT().RegisterWalletAndDEKViaRelayer(gomock.Any(), mtwAccount, localWallet).
		Return(domain.DEKStateRegistered, nil)
	c, w := newContext(http.MethodPost, "/", dto.RelayedRegistrationRequest{AccountAddress: mtwAccount, WalletAddress: localWallet})
	h.RegisterRelayed(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "REGISTERED", decodeData(t, w)["state"])

	deks.EXPECT().RegisterWalletAndDEKViaRelayer(gomock.Any(), mtwAccount, localWallet).
		Return(domain.DEKStateSubmitting, apperror.ErrRelayerRegistration(errors.New("relayer 500")))
	c, w = newContext(http.MethodPost, "/", dto.RelayedRegistrationRequest{AccountAddress: mtwAccount, WalletAddress: localWallet})
	h.RegisterRelayed(c)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "DEK_003", errorCode(t, w))

	c, w = newContext(http.MethodPost, "/", dto.RelayedRegistrationRequest{AccountAddress: "bad", WalletAddress: localWallet})
	h.RegisterRelayed(c)
	assert.Equal(t, "IDN_002", errorCode(t, w))
}

func TestEstimateGas(t *testing.T) {
	ctrl := gomock.NewController(t)
	deks := mocks.NewMockDEKService(ctrl)
	h := NewDEKHandler(deks, localWallet)

	deks.EXPECT().EstimateRegisterDEKGas(gomock.Any(), localWallet).Return(uint64(120_000), nil)
	c, w := newContext(http.MethodGet, "/api/v1/dek/gas", nil)
	h.EstimateGas(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 120_000, decodeData(t, w)["gas"])

	deks.EXPECT().EstimateRegisterDEKGas(gomock.Any(), otherWallet).Return(uint64(0), apperror.ErrInsufficientBalance(errors.New("out of gas")))
	c, w = newContext(http.MethodGet, "/api/v1/dek/gas?wallet_address="+otherWallet, nil)
	h.EstimateGas(c)
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestAuthSigner(t *testing.T) {
	ctrl := gomock.NewController(t)
	deks := mocks.NewMockDEKService(ctrl)
	h := NewDEKHandler(deks, localWallet)

	deks.EXPECT().GetAuthSignerForAccount(gomock.Any(), mtwAccount, localWallet).Return(&domain.AuthSigner{
		Method: domain.AuthMethodEncryptionKey,
		RawKey: testDEKPub,
	}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/dek/auth-signer?account_address="+mtwAccount+"&wallet_address="+localWallet, nil)
	h.AuthSigner(c)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "encryption_key", data["authentication_method"])
	assert.Equal(t, testDEKPub, data["raw_key"])
}

func TestAuthSign(t *testing.T) {
	ctrl := gomock.NewController(t)
	deks := mocks.NewMockDEKService(ctrl)
	h := NewDEKHandler(deks, localWallet)

	t.Run("defaults to the local wallet", func(t *testing.T) {
		deks.EXPECT().SignForAuth(gomock.Any(), mtwAccount, localWallet, "GET /v1/profile").Return(&domain.AuthSignature{
			Method:    domain.AuthMethodEncryptionKey,
			Signer:    testDEKPub,
			Signature: "[48,69]",
		}, nil)

		c, w := newContext(http.MethodPost, "/api/v1/dek/auth-sign", map[string]string{
			"account_address": mtwAccount,
			"message":         "GET /v1/profile",
		})
		h.AuthSign(c)
		require.Equal(t, http.StatusOK, w.Code)
		data := decodeData(t, w)
		assert.Equal(t, "encryption_key", data["authentication_method"])
		assert.Equal(t, testDEKPub, data["signer"])
		assert.Equal(t, "[48,69]", data["signature"])
	})

	t.Run("missing message", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/api/v1/dek/auth-sign", map[string]string{"account_address": mtwAccount})
		h.AuthSign(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		deks.EXPECT().SignForAuth(gomock.Any(), mtwAccount, otherWallet, "hi").
			Return(nil, apperror.ErrChainUnavailable(errors.New("rpc down")))

		c, w := newContext(http.MethodPost, "/api/v1/dek/auth-sign", map[string]string{
			"account_address": mtwAccount,
			"wallet_address":  otherWallet,
			"message":         "hi",
		})
		h.AuthSign(c)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "SYS_002", errorCode(t, w))
	})
}

// --- Health, Swagger and Router ---

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(context.Context) error { return s.err }
func (s stubChecker) Name() string               { return s.name }

func TestHealthCheck(t *testing.T) {
	c, w := newContext(http.MethodGet, "/health", nil)
	HealthCheck(stubChecker{name: "postgresql"})(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])

	c, w = newContext(http.MethodGet, "/health", nil)
	HealthCheck(stubChecker{name: "postgresql"}, stubChecker{name: "chain", err: errors.New("dial tcp")})(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
}

func TestSwaggerUI(t *testing.T) {
	c, w := newContext(http.MethodGet, "/swagger", nil)
	SwaggerUI(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "/swagger/spec")
}

func TestSwaggerSpec(t *testing.T) {
	SetSwaggerSpec(nil)
	c, w := newContext(http.MethodGet, "/swagger/spec", nil)
	SwaggerSpec(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	SetSwaggerSpec([]byte("openapi: 3.0.3\n"))
	defer SetSwaggerSpec(nil)
	c, w = newContext(http.MethodGet, "/swagger/spec", nil)
	SwaggerSpec(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi")
}

func TestRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokenSvc := mocks.NewMockTokenService(ctrl)
	deks := mocks.NewMockDEKService(ctrl)
	limiter := mocks.NewMockRateLimitStore(ctrl)

	router := SetupRouter(RouterDeps{
		CommentSvc:     mocks.NewMockCommentService(ctrl),
		IdentitySvc:    mocks.NewMockIdentityService(ctrl),
		DEKSvc:         deks,
		TokenSvc:       tokenSvc,
		WalletAddress:  localWallet,
		RateLimitStore: limiter,
		HealthCheckers: []ports.HealthChecker{stubChecker{name: "chain"}},
		Registry:       prometheus.NewRegistry(),
		Mode:           gin.TestMode,
		Logger:         zerolog.Nop(),
	})

	t.Run("health is public", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("api requires token", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/dek/register", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("authorized and rate limited", func(t *testing.T) {
		tokenSvc.EXPECT().Validate("tok").Return(&ports.TokenClaims{WalletAddress: localWallet}, nil).Times(2)
		limiter.EXPECT().Allow(gomock.Any(), localWallet+":dek_register", int64(5), gomock.Any()).
			Return(&ports.RateLimitResult{Allowed: true, Limit: 5, Remaining: 4}, nil)
		limiter.EXPECT().Allow(gomock.Any(), localWallet+":dek_register", int64(5), gomock.Any()).
			Return(&ports.RateLimitResult{Allowed: false, Limit: 5}, nil)
		deks.EXPECT().RegisterAccountDEK(gomock.Any()).Return(domain.DEKStateRegistered)

		for _, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/dek/register", nil)
			req.Header.Set("Authorization", "Bearer tok")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, want, w.Code)
		}
	})

	t.Run("metrics exposed", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "wallet_identity_http_requests_total")
	})
}
