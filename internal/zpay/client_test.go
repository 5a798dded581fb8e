package zpay

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"herhzzz/pkg/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_MockModeWithoutCredentials(t *testing.T) {
	client := NewClient(Config{})
	assert.True(t, client.Mock())

	artifact, err := client.CreatePayment(context.Background(), CreatePaymentRequest{
		OutTradeNo: "20250101-120000-AAAAAA",
		Name:       "HerHzzz 1-Year Membership",
		Amount:     decimal.RequireFromString("99.99"),
	})
	require.NoError(t, err)
	assert.Equal(t, ArtifactQRCode, artifact.Kind)
	assert.True(t, artifact.Mock)
	assert.Contains(t, artifact.QRCode, "mock://pay/20250101-120000-AAAAAA")
}

func TestMockClient_NeverVerifiesNotifications(t *testing.T) {
	client := NewClient(Config{})

	params := map[string]string{
		"pid":          "1001",
		"out_trade_no": "20250101-120000-AAAAAA",
		"trade_status": "TRADE_SUCCESS",
		"money":        "99.99",
	}
	params["sign"] = Sign(params, "")

	_, err := client.VerifyNotification(params)
	assert.ErrorIs(t, err, utils.ErrSignatureInvalid)
}

func TestCreatePayment_QRCodeResponse(t *testing.T) {
	var gotForm map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{}
		for k, v := range r.PostForm {
			gotForm[k] = v[0]
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":1,"msg":"ok","qrcode":"https://qr.example/abc","trade_no":"zp-777"}`))
	}))
	defer server.Close()

	client := NewClient(Config{
		MerchantID:  "1001",
		MerchantKey: "testkey123",
		APIURL:      server.URL,
		NotifyURL:   "https://app.example/notify_url",
	})
	require.False(t, client.Mock())

	artifact, err := client.CreatePayment(context.Background(), CreatePaymentRequest{
		OutTradeNo:  "20250101-143022-ABC123",
		PaymentType: "alipay",
		Name:        "yearly-member",
		Amount:      decimal.RequireFromString("99.99"),
		ClientIP:    "203.0.113.9",
		Device:      "pc",
	})
	require.NoError(t, err)
	assert.Equal(t, ArtifactQRCode, artifact.Kind)
	assert.Equal(t, "https://qr.example/abc", artifact.QRCode)
	assert.Equal(t, "zp-777", artifact.TradeNo)
	assert.False(t, artifact.Mock)

	// the outgoing request is signed over its own fields
	assert.Equal(t, "MD5", gotForm["sign_type"])
	assert.Equal(t, "99.99", gotForm["money"])
	assert.True(t, VerifySign(gotForm, "testkey123"))
}

func TestCreatePayment_RedirectAndLegacyImgFields(t *testing.T) {
	responses := []string{
		`{"code":1,"msg":"ok","payurl":"https://pay.example/redirect"}`,
		`{"code":1,"msg":"ok","img":"https://qr.example/legacy"}`,
	}
	idx := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(responses[idx]))
		idx++
	}))
	defer server.Close()

	client := NewClient(Config{MerchantID: "1001", MerchantKey: "k", APIURL: server.URL})
	req := CreatePaymentRequest{OutTradeNo: "X", Name: "n", Amount: decimal.New(1, 0)}

	artifact, err := client.CreatePayment(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, ArtifactRedirect, artifact.Kind)
	assert.Equal(t, "https://pay.example/redirect", artifact.PayURL)

	artifact, err = client.CreatePayment(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, ArtifactQRCode, artifact.Kind)
	assert.Equal(t, "https://qr.example/legacy", artifact.QRCode)
}

func TestCreatePayment_GatewayRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":0,"msg":"insufficient merchant balance"}`))
	}))
	defer server.Close()

	client := NewClient(Config{MerchantID: "1001", MerchantKey: "k", APIURL: server.URL})
	_, err := client.CreatePayment(context.Background(), CreatePaymentRequest{
		OutTradeNo: "X", Name: "n", Amount: decimal.New(1, 0),
	})
	assert.ErrorIs(t, err, utils.ErrGatewayRejected)
	assert.Contains(t, err.Error(), "insufficient merchant balance")
}

func TestCreatePayment_NetworkFailureIsRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient(Config{MerchantID: "1001", MerchantKey: "k", APIURL: server.URL})
	_, err := client.CreatePayment(context.Background(), CreatePaymentRequest{
		OutTradeNo: "X", Name: "n", Amount: decimal.New(1, 0),
	})
	assert.True(t, errors.Is(err, utils.ErrGatewayUnavailable))
}

func TestVerifyNotification(t *testing.T) {
	client := NewClient(Config{MerchantID: "1001", MerchantKey: "testkey123", APIURL: "http://unused"})

	params := map[string]string{
		"pid":          "1001",
		"out_trade_no": "20250101-143022-ABC123",
		"trade_no":     "zp-1",
		"trade_status": "TRADE_SUCCESS",
		"type":         "alipay",
		"money":        "29.99",
	}
	params["sign"] = Sign(params, "testkey123")

	n, err := client.VerifyNotification(params)
	require.NoError(t, err)
	assert.Equal(t, "20250101-143022-ABC123", n.OutTradeNo)
	assert.Equal(t, "TRADE_SUCCESS", n.TradeStatus)
	assert.True(t, n.Amount.Equal(decimal.RequireFromString("29.99")))

	params["sign"] = "bogus"
	_, err = client.VerifyNotification(params)
	assert.ErrorIs(t, err, utils.ErrSignatureInvalid)

	delete(params, "money")
	_, err = client.VerifyNotification(params)
	assert.ErrorIs(t, err, utils.ErrNotificationInvalid)
}
