package zpay

import (
	"context"
	"fmt"
	"log"
	"time"

	"herhzzz/pkg/utils"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const defaultAPIURL = "https://zpayz.cn/mapi.php"

type Config struct {
	MerchantID  string // pid
	MerchantKey string // signing key
	APIURL      string
	NotifyURL   string
	ReturnURL   string
}

// Client talks to the ZPay scan-to-pay API. When merchant credentials are
// absent it runs in mock mode: order creation returns a demo artifact and
// notification verification always fails, so a misconfigured deployment can
// still be clicked through locally without ever marking orders paid.
type Client struct {
	cfg  Config
	http *resty.Client
	mock bool
}

func NewClient(cfg Config) *Client {
	mock := cfg.MerchantID == "" || cfg.MerchantKey == ""
	if mock {
		log.Println("zpay: merchant credentials missing, running in mock payment mode")
	}
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}

	httpClient := resty.New().
		SetTimeout(30 * time.Second).
		SetHeader("User-Agent", "herhzzz-payment/1.0")

	return &Client{cfg: cfg, http: httpClient, mock: mock}
}

func (c *Client) Mock() bool { return c.mock }

type CreatePaymentRequest struct {
	OutTradeNo  string
	PaymentType string // alipay | wechat | union
	Name        string
	Amount      decimal.Decimal
	ClientIP    string
	Device      string // pc | mobile
}

// PaymentArtifact is the tagged result of order creation: either a QR
// payload to render client-side or a redirect URL, depending on what the
// provider returned.
type PaymentArtifact struct {
	Kind    ArtifactKind
	QRCode  string
	PayURL  string
	TradeNo string
	Mock    bool
}

type ArtifactKind string

const (
	ArtifactQRCode   ArtifactKind = "qr_code"
	ArtifactRedirect ArtifactKind = "redirect"
)

type gatewayResponse struct {
	Code    int    `json:"code"`
	Msg     string `json:"msg"`
	PayURL  string `json:"payurl"`
	QRCode  string `json:"qrcode"`
	Img     string `json:"img"`
	TradeNo string `json:"trade_no"`
}

// CreatePayment sends a signed form request asking for a payment artifact
// for the given order. Transport failures surface as ErrGatewayUnavailable
// and are retryable; a non-1 business code is ErrGatewayRejected.
func (c *Client) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*PaymentArtifact, error) {
	if c.mock {
		return &PaymentArtifact{
			Kind:   ArtifactQRCode,
			QRCode: fmt.Sprintf("mock://pay/%s?amount=%s", req.OutTradeNo, req.Amount.StringFixed(2)),
			Mock:   true,
		}, nil
	}

	params := map[string]string{
		"pid":          c.cfg.MerchantID,
		"type":         normalizePaymentType(req.PaymentType),
		"out_trade_no": req.OutTradeNo,
		"notify_url":   c.cfg.NotifyURL,
		"return_url":   c.cfg.ReturnURL,
		"name":         req.Name,
		"money":        req.Amount.StringFixed(2),
		"clientip":     req.ClientIP,
		"device":       req.Device,
		"param":        "",
		"sign_type":    "MD5",
	}
	params["sign"] = Sign(params, c.cfg.MerchantKey)

	var out gatewayResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(params).
		SetResult(&out).
		Post(c.cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGatewayUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: http %d", utils.ErrGatewayUnavailable, resp.StatusCode())
	}
	if out.Code != 1 {
		return nil, fmt.Errorf("%w: %s", utils.ErrGatewayRejected, out.Msg)
	}

	artifact := &PaymentArtifact{TradeNo: out.TradeNo}
	switch {
	case out.QRCode != "":
		artifact.Kind = ArtifactQRCode
		artifact.QRCode = out.QRCode
	case out.Img != "":
		// older gateway revisions return the QR payload under "img"
		artifact.Kind = ArtifactQRCode
		artifact.QRCode = out.Img
	case out.PayURL != "":
		artifact.Kind = ArtifactRedirect
		artifact.PayURL = out.PayURL
	default:
		return nil, fmt.Errorf("%w: no payment artifact in response", utils.ErrGatewayRejected)
	}
	return artifact, nil
}

// Notification is the parsed, signature-checked content of an asynchronous
// gateway callback.
type Notification struct {
	OutTradeNo  string
	TradeNo     string
	TradeStatus string
	Amount      decimal.Decimal
	PaymentType string
}

var requiredNotifyFields = []string{"pid", "out_trade_no", "trade_status", "sign", "money"}

// VerifyNotification validates field presence and the MD5 signature of an
// inbound callback. It never mutates anything; the caller owns the
// idempotent order transition.
func (c *Client) VerifyNotification(params map[string]string) (*Notification, error) {
	for _, f := range requiredNotifyFields {
		if params[f] == "" {
			return nil, fmt.Errorf("%w: missing %s", utils.ErrNotificationInvalid, f)
		}
	}
	if c.mock || !VerifySign(params, c.cfg.MerchantKey) {
		return nil, utils.ErrSignatureInvalid
	}

	amount, err := decimal.NewFromString(params["money"])
	if err != nil {
		return nil, fmt.Errorf("%w: bad money value %q", utils.ErrNotificationInvalid, params["money"])
	}

	return &Notification{
		OutTradeNo:  params["out_trade_no"],
		TradeNo:     params["trade_no"],
		TradeStatus: params["trade_status"],
		Amount:      amount,
		PaymentType: params["type"],
	}, nil
}

func normalizePaymentType(t string) string {
	switch t {
	case "wechat", "wxpay":
		return "wxpay"
	case "union":
		return "union"
	default:
		return "alipay"
	}
}
